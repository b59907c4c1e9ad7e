package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

type CSVExporter struct {
	source Source
}

func NewCSVExporter(source Source) *CSVExporter {
	return &CSVExporter{source: source}
}

func (e *CSVExporter) ExportToCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Index", "Name", "URL"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, b := range e.source.Entries() {
		row := []string{strconv.Itoa(i), b.Title, b.URL}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
