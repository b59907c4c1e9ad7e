package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type JSONExporter struct {
	source Source
	now    func() time.Time
}

func NewJSONExporter(source Source) *JSONExporter {
	return &JSONExporter{
		source: source,
		now:    time.Now,
	}
}

func (e *JSONExporter) Export() *Archive {
	return &Archive{
		Version:    ArchiveVersion,
		ExportedAt: e.now().UTC(),
		Bookmarks:  e.source.Entries(),
	}
}

func (e *JSONExporter) ExportToWriter(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(e.Export()); err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	return nil
}
