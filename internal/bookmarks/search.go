package bookmarks

import (
	"browser-shell/internal/domain"
	"browser-shell/internal/fuzzy"
)

const DefaultFindThreshold = 40

type Match struct {
	Index    int
	Bookmark domain.Bookmark
	Score    int
	// "title" or "url"
	Field string
}

// Find ranks bookmarks by fuzzy match of pattern against title and url.
func (l *List) Find(pattern string, threshold int) []Match {
	entries := l.Entries()

	records := make([][]string, len(entries))
	for i, b := range entries {
		records[i] = []string{b.Title, b.URL}
	}

	ranked := fuzzy.Rank(pattern, records, threshold)
	matches := make([]Match, 0, len(ranked))
	for _, r := range ranked {
		field := "title"
		if r.Field == 1 {
			field = "url"
		}
		matches = append(matches, Match{
			Index:    r.Index,
			Bookmark: entries[r.Index],
			Score:    r.Score,
			Field:    field,
		})
	}
	return matches
}
