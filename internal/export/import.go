package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"browser-shell/internal/domain"
)

type Importer struct {
	target Target
}

func NewImporter(target Target) *Importer {
	return &Importer{target: target}
}

// Import accepts either an Archive document or the bare [{"name","url"}]
// array the bar persists to local storage.
func (i *Importer) Import(r io.Reader, strategy ConflictStrategy) (*ImportResult, error) {
	if !strategy.IsValid() {
		return nil, fmt.Errorf("unknown conflict strategy %q", strategy)
	}

	incoming, err := decode(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	if strategy == ConflictStrategyOverwrite {
		i.target.Clear()
	}

	existing := make(map[string]bool)
	if strategy == ConflictStrategySkip {
		for _, b := range i.target.Entries() {
			existing[b.URL] = true
		}
	}

	accepted := make([]domain.Bookmark, 0, len(incoming))
	for _, b := range incoming {
		if err := b.Validate(); err != nil {
			result.Skipped++
			continue
		}
		if strategy == ConflictStrategySkip && existing[b.URL] {
			result.Skipped++
			continue
		}
		existing[b.URL] = true
		accepted = append(accepted, b)
	}

	i.target.LoadFromArchive(accepted)
	result.Imported = len(accepted)
	return result, nil
}

func decode(r io.Reader) ([]domain.Bookmark, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []domain.Bookmark
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPersistedData, err)
		}
		return entries, nil
	}

	var archive Archive
	if err := json.Unmarshal(trimmed, &archive); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPersistedData, err)
	}
	return archive.Bookmarks, nil
}
