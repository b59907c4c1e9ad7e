package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookmark(t *testing.T) {
	b := NewBookmark("News", "https://news.example")

	assert.Equal(t, "News", b.Title)
	assert.Equal(t, "https://news.example", b.URL)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, b.ID, NewBookmark("News", "https://news.example").ID)
}

func TestNewBookmark_Defaults(t *testing.T) {
	b := NewBookmark("", "")

	assert.Equal(t, DefaultBookmarkTitle, b.Title)
	assert.Equal(t, DefaultBookmarkURL, b.URL)
	assert.NoError(t, b.Validate())
}

func TestBookmark_JSONOmitsID(t *testing.T) {
	b := NewBookmark("A", "u1")

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "A", "url": "u1"}`, string(data))
}

func TestBookmark_Validate(t *testing.T) {
	assert.Error(t, (&Bookmark{Title: "x", URL: "  "}).Validate())
	assert.NoError(t, (&Bookmark{Title: "", URL: "u"}).Validate())
}
