package export

import (
	"fmt"
	"io"
	"strings"
)

type MarkdownExporter struct {
	source Source
}

func NewMarkdownExporter(source Source) *MarkdownExporter {
	return &MarkdownExporter{source: source}
}

func (e *MarkdownExporter) ExportToMarkdown(w io.Writer) error {
	entries := e.source.Entries()

	if _, err := fmt.Fprintf(w, "# Bookmarks (%d)\n\n", len(entries)); err != nil {
		return err
	}

	for _, b := range entries {
		title := b.Title
		if strings.TrimSpace(title) == "" {
			title = b.URL
		}
		if _, err := fmt.Fprintf(w, "- [%s](%s)\n", escapeLabel(title), b.URL); err != nil {
			return err
		}
	}

	return nil
}

func escapeLabel(s string) string {
	r := strings.NewReplacer(`[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
