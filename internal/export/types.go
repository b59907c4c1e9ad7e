package export

import (
	"time"

	"browser-shell/internal/domain"
)

const ArchiveVersion = "1.0"

// Source is anything that can list bookmarks in bar order.
type Source interface {
	Entries() []domain.Bookmark
}

// Target receives imported bookmarks.
type Target interface {
	Source
	Clear()
	LoadFromArchive(entries []domain.Bookmark)
}

type Archive struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Bookmarks  []domain.Bookmark `json:"bookmarks"`
}

type ConflictStrategy string

const (
	// append everything, duplicates included
	ConflictStrategyMerge ConflictStrategy = "merge"
	// drop incoming entries whose url is already on the bar
	ConflictStrategySkip ConflictStrategy = "skip"
	// clear the bar first
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

func (s ConflictStrategy) IsValid() bool {
	switch s {
	case ConflictStrategyMerge, ConflictStrategySkip, ConflictStrategyOverwrite:
		return true
	}
	return false
}

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return true
	}
	return false
}

type ImportResult struct {
	Imported int
	Skipped  int
}
