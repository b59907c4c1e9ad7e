package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"browser-shell/internal/bookmarks"
	"browser-shell/internal/domain"
	"browser-shell/internal/export"
)

var (
	bookmarkExportFormat  string
	bookmarkExportOutput  string
	bookmarkImportMode    string
	bookmarkFindThreshold int
)

var bookmarkCmd = &cobra.Command{
	Use:     "bookmark",
	Aliases: []string{"bookmarks", "bm"},
	Short:   "Manage the bookmark bar",
	Long: `Manage the bookmark bar. Bookmarks are addressed by their position on
the bar, starting at 0.

Examples:
  browsershell bookmark add "Go" https://go.dev
  browsershell bookmark rename 0 "Go docs"
  browsershell bookmark open 0
  browsershell bookmark export --format csv --output bookmarks.csv`,
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [title] [url]",
	Short: "Append a bookmark",
	Long:  `Append a bookmark. Missing title or url fall back to "A" and https://google.com.`,
	Args:  cobra.MaximumNArgs(2),
	RunE:  runBookmarkAdd,
}

var bookmarkDeleteCmd = &cobra.Command{
	Use:     "delete [index]",
	Aliases: []string{"rm"},
	Short:   "Delete a bookmark",
	Args:    cobra.ExactArgs(1),
	RunE:    runBookmarkDelete,
}

var bookmarkRenameCmd = &cobra.Command{
	Use:   "rename [index] [title]",
	Short: "Rename a bookmark",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookmarkRename,
}

var bookmarkSetURLCmd = &cobra.Command{
	Use:   "set-url [index] [url]",
	Short: "Change a bookmark's url",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookmarkSetURL,
}

var bookmarkListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookmarks in bar order",
	Args:    cobra.NoArgs,
	RunE:    runBookmarkList,
}

var bookmarkOpenCmd = &cobra.Command{
	Use:   "open [index]",
	Short: "Open a bookmark in the content frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkOpen,
}

var bookmarkFindCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "Fuzzy-find bookmarks by title or url",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBookmarkFind,
}

var bookmarkExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookmarks",
	Long: `Export the bookmark bar.

Supported formats:
  - json: archive that 'bookmark import' reads back (default)
  - csv: comma-separated values for spreadsheets
  - markdown: a link list`,
	Args: cobra.NoArgs,
	RunE: runBookmarkExport,
}

var bookmarkImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import bookmarks from a JSON archive",
	Long: `Import bookmarks from a JSON archive or a bare [{"name","url"}] array.

Conflict modes:
  - merge: append everything (default)
  - skip: drop entries whose url is already on the bar
  - overwrite: replace the bar`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmarkImport,
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkDeleteCmd)
	bookmarkCmd.AddCommand(bookmarkRenameCmd)
	bookmarkCmd.AddCommand(bookmarkSetURLCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkOpenCmd)
	bookmarkCmd.AddCommand(bookmarkFindCmd)
	bookmarkCmd.AddCommand(bookmarkExportCmd)
	bookmarkCmd.AddCommand(bookmarkImportCmd)

	bookmarkExportCmd.Flags().StringVarP(&bookmarkExportFormat, "format", "f", "json", "Output format (json, csv, markdown)")
	bookmarkExportCmd.Flags().StringVarP(&bookmarkExportOutput, "output", "o", "", "Output file (default: stdout)")
	bookmarkImportCmd.Flags().StringVarP(&bookmarkImportMode, "mode", "m", "merge", "Conflict mode (merge, skip, overwrite)")
	bookmarkFindCmd.Flags().IntVarP(&bookmarkFindThreshold, "threshold", "t", bookmarks.DefaultFindThreshold, "Minimum match score (0-100)")
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	var title, url string
	if len(args) > 0 {
		title = args[0]
	}
	if len(args) > 1 {
		url = args[1]
	}

	b := app.bookmarks.Add(title, url)
	if err := app.persistBookmarks(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(app.out, app.styles().Success.Render(
		fmt.Sprintf("✓ Added bookmark #%d: %s (%s)", app.bookmarks.Len()-1, b.Title, b.URL)))
	return nil
}

func runBookmarkDelete(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	b, err := app.bookmarks.Get(index)
	if err != nil {
		return err
	}
	if err := app.bookmarks.Delete(index); err != nil {
		return err
	}
	if err := app.persistBookmarks(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Deleted bookmark '%s'", b.Title)))
	return nil
}

func runBookmarkRename(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	if err := app.bookmarks.Rename(index, args[1]); err != nil {
		return err
	}
	if err := app.persistBookmarks(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Renamed bookmark #%d to '%s'", index, args[1])))
	return nil
}

func runBookmarkSetURL(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	if err := app.bookmarks.SetURL(index, args[1]); err != nil {
		return err
	}
	if err := app.persistBookmarks(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(app.out, app.styles().Success.Render(fmt.Sprintf("✓ Bookmark #%d now points to %s", index, args[1])))
	return nil
}

func runBookmarkList(cmd *cobra.Command, args []string) error {
	styles := app.styles()
	entries := app.bookmarks.Entries()

	if len(entries) == 0 {
		fmt.Fprintln(app.out, styles.Muted.Render("No bookmarks yet. Add one with 'browsershell bookmark add'."))
		return nil
	}

	fmt.Fprintln(app.out)
	headers := []string{
		styles.Header.Render(fmt.Sprintf("%-4s", "#")),
		styles.Header.Render(fmt.Sprintf("%-30s", "Title")),
		styles.Header.Render(fmt.Sprintf("%-50s", "URL")),
	}
	fmt.Fprintln(app.out, strings.Join(headers, " "))

	for i, b := range entries {
		cells := []string{
			styles.Cell.Render(fmt.Sprintf("%-4d", i)),
			styles.Bookmark.Render(styles.Cell.Render(fmt.Sprintf("%-30s", truncate(b.Title, 30)))),
			styles.Cell.Render(fmt.Sprintf("%-50s", truncate(b.URL, 50))),
		}
		fmt.Fprintln(app.out, strings.Join(cells, " "))
	}

	fmt.Fprintln(app.out)
	fmt.Fprintf(app.out, "Total: %d bookmark(s)\n", len(entries))
	return nil
}

func runBookmarkOpen(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	if err := app.bookmarks.Click(index); err != nil {
		return err
	}

	fmt.Fprintln(app.out, app.styles().Info.Render("→ "+app.content.URL))
	return nil
}

func runBookmarkFind(cmd *cobra.Command, args []string) error {
	styles := app.styles()
	pattern := strings.Join(args, " ")

	matches := app.bookmarks.Find(pattern, bookmarkFindThreshold)
	if len(matches) == 0 {
		fmt.Fprintln(app.out, styles.Muted.Render(fmt.Sprintf("No bookmarks match '%s'", pattern)))
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(app.out, "%-4d %s %s %s\n",
			m.Index,
			styles.Bookmark.Render(m.Bookmark.Title),
			m.Bookmark.URL,
			styles.Muted.Render(fmt.Sprintf("(%s %d)", m.Field, m.Score)))
	}
	return nil
}

func runBookmarkExport(cmd *cobra.Command, args []string) error {
	format := export.ExportFormat(bookmarkExportFormat)
	if !format.IsValid() {
		return fmt.Errorf("unknown format '%s' (want json, csv or markdown)", bookmarkExportFormat)
	}

	var w io.Writer = app.out
	if bookmarkExportOutput != "" {
		f, err := os.Create(bookmarkExportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch format {
	case export.FormatJSON:
		err = export.NewJSONExporter(app.bookmarks).ExportToWriter(w)
	case export.FormatCSV:
		err = export.NewCSVExporter(app.bookmarks).ExportToCSV(w)
	case export.FormatMarkdown:
		err = export.NewMarkdownExporter(app.bookmarks).ExportToMarkdown(w)
	}
	if err != nil {
		return fmt.Errorf("failed to export bookmarks: %w", err)
	}

	if bookmarkExportOutput != "" {
		fmt.Fprintln(app.out, app.styles().Success.Render(
			fmt.Sprintf("✓ Exported %d bookmark(s) to %s", app.bookmarks.Len(), bookmarkExportOutput)))
	}
	return nil
}

func runBookmarkImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	result, err := export.NewImporter(app.bookmarks).Import(f, export.ConflictStrategy(bookmarkImportMode))
	if err != nil {
		return fmt.Errorf("failed to import bookmarks: %w", err)
	}

	if err := app.persistBookmarks(cmd.Context()); err != nil {
		return err
	}

	msg := fmt.Sprintf("✓ Imported %d bookmark(s)", result.Imported)
	if result.Skipped > 0 {
		msg += fmt.Sprintf(", skipped %d", result.Skipped)
	}
	fmt.Fprintln(app.out, app.styles().Success.Render(msg))
	return nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a bookmark index", domain.ErrIndexOutOfRange, s)
	}
	return index, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
