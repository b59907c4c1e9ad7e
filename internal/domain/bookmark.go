package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultBookmarkTitle = "A"
	DefaultBookmarkURL   = "https://google.com"
)

// Bookmark is one entry of the bookmark bar. ID is process-local and never
// persisted; the stored form is {"name", "url"}.
type Bookmark struct {
	ID    string `json:"-"`
	Title string `json:"name"`
	URL   string `json:"url"`
}

// NewBookmark assigns a fresh id and applies the bar's defaults for empty
// title or url.
func NewBookmark(title, url string) *Bookmark {
	if title == "" {
		title = DefaultBookmarkTitle
	}
	if url == "" {
		url = DefaultBookmarkURL
	}

	return &Bookmark{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
	}
}

func (b *Bookmark) Validate() error {
	if strings.TrimSpace(b.URL) == "" {
		return errors.New("bookmark url cannot be empty")
	}
	return nil
}
