package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"browser-shell/internal/config"
	"browser-shell/internal/logging"
)

// swapped in tests
var loadConfig = config.LoadConfig

// the running host, opened before any subcommand runs
var app *shell

var rootCmd = &cobra.Command{
	Use:   "browsershell",
	Short: "aboutbrowser shell - themes and bookmarks for the browser chrome",
	Long: `browsershell hosts the aboutbrowser chrome: it keeps the imported color
themes and the bookmark bar, and restyles the shell document and its
embedded frames whenever the theme changes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a failed RunE skips the post-run hook
		if app != nil {
			app.Close()
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Init(cfg.LogLevel, cmd.ErrOrStderr())

		app, err = openShell(cmd.Context(), cfg, cmd.OutOrStdout())
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		err := app.Close()
		app = nil
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		displayWelcome()
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func displayWelcome() {
	styles := app.styles()
	out := app.out

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Title.Render("  a b o u t b r o w s e r  "))
	fmt.Fprintln(out, styles.Subtitle.Render(fmt.Sprintf("Theme: %s  •  %d bookmark(s)",
		app.themes.Current().Name(), app.bookmarks.Len())))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'browsershell --help' to see available commands.")
	fmt.Fprintln(out)
}
