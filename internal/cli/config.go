package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"browser-shell/internal/config"
	"browser-shell/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings in the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(app.out, "config file:   %s\n", config.GetConfigFile())
		fmt.Fprintf(app.out, "db_path:       %s\n", app.cfg.DBPath)
		fmt.Fprintf(app.out, "bookmarks_key: %s\n", app.cfg.BookmarksKey)
		fmt.Fprintf(app.out, "log_level:     %s\n", app.cfg.LogLevel)

		keys, err := app.localStorage.Keys(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list local storage: %w", err)
		}
		fmt.Fprintf(app.out, "local storage: %s\n", strings.Join(keys, ", "))
		return nil
	},
}

var configLogLevelCmd = &cobra.Command{
	Use:   "log-level [level]",
	Short: "Set the log level (debug, info, warn, error)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := logging.ParseLevel(args[0]).String()
		if err := config.UpdateLogLevel(level); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Log level set to '%s'", level)))
		return nil
	},
}

var configBookmarksKeyCmd = &cobra.Command{
	Use:   "bookmarks-key [key]",
	Short: "Set the local-storage key the bookmark bar is saved under",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.UpdateBookmarksKey(args[0]); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Bookmarks key set to '%s'", args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configLogLevelCmd)
	configCmd.AddCommand(configBookmarksKeyCmd)
}
