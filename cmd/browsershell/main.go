package main

import "browser-shell/internal/cli"

func main() {
	cli.Execute()
}
