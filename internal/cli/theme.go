package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"browser-shell/internal/domain"
	"browser-shell/internal/theme"
	"browser-shell/internal/tui"
)

var (
	themeImportApply bool
	themeCSSContext  string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage the chrome color themes.

Run without arguments to launch the interactive theme picker.
Use subcommands for direct theme management.

Examples:
  browsershell theme                         # Launch interactive picker
  browsershell theme import ocean.json       # Import a scheme document
  browsershell theme set "Ocean"             # Make it current
  browsershell theme css --context ntp       # Show the CSS for the new tab page`,
	Args: cobra.NoArgs,
	RunE: runThemeTUI,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported themes and the built-in default",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a color scheme document",
	Long: `Import a JSON color scheme.

Both the native layout ({"formatVersion","name","colors","isExtendedScheme"})
and Chrome manifest themes ({"version","name","theme":{"colors"}}) are accepted.
Extended schemes must also define ui_sidebar_active_background.

Examples:
  browsershell theme import ocean.json
  browsershell theme import ocean.json --apply`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeImport,
}

var themeRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an imported theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeRemove,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Set the current theme",
	Long: `Set the current theme by name. Unknown names select the built-in default.

Examples:
  browsershell theme set "Ocean"
  browsershell theme set "Chrome Dark"`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme's resolved colors",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeShow,
}

var themeCSSCmd = &cobra.Command{
	Use:   "css [name]",
	Short: "Print the CSS custom properties a theme projects",
	Long: `Print the custom properties a theme applies in a rendering context.

Contexts:
  main   the top-level shell document (default)
  frame  an embedded internal page; base themes get the built-in
         theme's --aboutbrowser-ui* variables filled in
  ntp    the new tab page`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeCSS,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeImportCmd)
	themeCmd.AddCommand(themeRemoveCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeCSSCmd)

	themeImportCmd.Flags().BoolVar(&themeImportApply, "apply", false, "Make the imported theme current")
	themeCSSCmd.Flags().StringVarP(&themeCSSContext, "context", "c", "main", "Rendering context (main, frame, ntp)")
}

func runThemeTUI(cmd *cobra.Command, args []string) error {
	titles := make([]string, 0, app.bookmarks.Len())
	for _, b := range app.bookmarks.Entries() {
		titles = append(titles, b.Title)
	}

	model := tui.NewPickerModel(cmd.Context(), app.themes, titles)
	p := tea.NewProgram(model, tea.WithAltScreen())

	var final tea.Model
	err := app.silently(func() error {
		var err error
		final, err = p.Run()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to run theme picker: %w", err)
	}

	if picked, ok := final.(tui.PickerModel); ok && picked.Applied() != "" {
		fmt.Fprintln(app.out)
		fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Theme set to '%s'", picked.Applied())))
		fmt.Fprintf(app.out, "  Restyled shell and %d frames\n", len(app.frames))
		fmt.Fprintln(app.out)
	}

	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	styles := app.styles()
	current := app.themes.Current().Name()

	fmt.Fprintln(app.out)
	fmt.Fprintln(app.out, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(app.out)

	for _, t := range append(app.themes.Themes(), app.themes.Default()) {
		name := t.Name()
		prefix := "  "
		if name == current {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}

		kind := "base"
		if t.IsExtended() {
			kind = "extended"
		}
		if t == app.themes.Default() {
			kind += ", built-in"
		}

		fmt.Fprintf(app.out, "%s%s %s\n", prefix, name, styles.Muted.Render("("+kind+")"))
	}

	for _, err := range app.themes.LoadErrors() {
		fmt.Fprintln(app.out, styles.Error.Render("  ✗ skipped: "+err.Error()))
	}

	fmt.Fprintln(app.out)
	return nil
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	styles := app.styles()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	t, err := app.themes.ImportTheme(cmd.Context(), data)
	if err != nil {
		fmt.Fprintln(app.out, styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		if role, ok := domain.MissingRole(err); ok {
			fmt.Fprintln(app.out, styles.Info.Render(fmt.Sprintf("  Add a \"%s\" color to the scheme and try again", role)))
			// projected by extended schemes but has no fallback, so it is required
			if role == theme.RoleUISidebarActiveBackground {
				fmt.Fprintln(app.out, styles.Muted.Render(
					"  Extended schemes must set ui_sidebar_active_background; it has no fallback"))
			}
		}
		return err
	}

	fmt.Fprintln(app.out, styles.Success.Render(fmt.Sprintf("✓ Imported theme '%s'", t.Name())))

	if themeImportApply {
		if err := app.themes.SetCurrentTheme(cmd.Context(), t); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
	}
	return nil
}

func runThemeRemove(cmd *cobra.Command, args []string) error {
	styles := app.styles()

	t, ok := app.themes.Lookup(args[0])
	if !ok || t == app.themes.Default() {
		return fmt.Errorf("no imported theme named '%s'", args[0])
	}

	if err := app.themes.RemoveTheme(cmd.Context(), t); err != nil {
		return fmt.Errorf("failed to remove theme: %w", err)
	}

	fmt.Fprintln(app.out, styles.Success.Render(fmt.Sprintf("✓ Removed theme '%s'", t.Name())))
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	t := app.themes.FindByName(args[0])
	if t.Name() != args[0] {
		fmt.Fprintln(app.out, app.styles().Muted.Render(
			fmt.Sprintf("  '%s' not found, using '%s'", args[0], t.Name())))
	}

	if err := app.themes.SetCurrentTheme(cmd.Context(), t); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Theme set to '%s'", t.Name())))
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	t := selectedTheme(args)
	styles := theme.NewStyles(t, app.themes.Palette())

	fmt.Fprintln(app.out)
	fmt.Fprintln(app.out, styles.Title.Render(t.Name()))
	fmt.Fprintf(app.out, "  format version: %s\n", t.FormatVersion())
	fmt.Fprintf(app.out, "  extended:       %t\n", t.IsExtended())
	if flags := t.Flags(); len(flags) > 0 {
		fmt.Fprintf(app.out, "  flags:          %s\n", strings.Join(flags, ", "))
	}
	fmt.Fprintln(app.out)

	roles := theme.BaseRoles()
	if t.IsExtended() {
		roles = append(theme.ExtendedRoles(), roles...)
	}

	seen := make(map[string]bool)
	for _, role := range roles {
		if seen[role] {
			continue
		}
		seen[role] = true

		col, ok := t.Color(role)
		if !ok {
			continue
		}
		fmt.Fprintf(app.out, "%s %-30s %s\n", theme.Swatch(col), role, styles.Muted.Render(col.Hex()))
	}

	fmt.Fprintln(app.out)
	return nil
}

func runThemeCSS(cmd *cobra.Command, args []string) error {
	ctx, err := parseContext(themeCSSContext)
	if err != nil {
		return err
	}

	t := selectedTheme(args)

	// frames also get the default theme's UI back-fill
	decls := t.Projection(ctx)
	if ctx.Frame {
		decls = t.FrameDeclarations(ctx.NTP, app.themes.Default())
	}

	fmt.Fprintf(app.out, "/* %s, %s context */\n", t.Name(), ctx)
	fmt.Fprintln(app.out, ":root {")
	for _, d := range decls {
		fmt.Fprintf(app.out, "  %s: %s;\n", d.Property, d.Value)
	}
	fmt.Fprintln(app.out, "}")

	for _, flag := range t.Flags() {
		fmt.Fprintf(app.out, "/* root attribute: %s */\n", theme.FlagAttribute(flag))
	}
	return nil
}

// selectedTheme is the named theme, or the current one when no name is given.
func selectedTheme(args []string) *theme.Theme {
	if len(args) == 0 {
		return app.themes.Current()
	}
	return app.themes.FindByName(args[0])
}

var errUnknownContext = errors.New("unknown context")

func parseContext(s string) (theme.Context, error) {
	switch strings.ToLower(s) {
	case "", "main":
		return theme.MainDocument, nil
	case "frame":
		return theme.EmbeddedFrame(false), nil
	case "ntp":
		return theme.EmbeddedFrame(true), nil
	}
	return theme.Context{}, fmt.Errorf("%w %q (want main, frame or ntp)", errUnknownContext, s)
}
