// Package bookmarks implements the bookmark bar: an ordered list of
// (title, url) entries rendered as buttons in a container element and
// persisted as a JSON array in local storage.
package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"browser-shell/internal/dom"
	"browser-shell/internal/domain"
	"browser-shell/internal/logging"
	"browser-shell/internal/repository"
)

const DefaultStorageKey = "bookmarks"

const (
	bookmarkClass = "bookmark"
	attrClass     = "class"
	attrURL       = "data-url"
	attrID        = "data-bookmark-id"
)

// ClickEvent is delivered to listeners when a rendered bookmark is activated.
type ClickEvent struct {
	Element *dom.Element
	ID      string
	Title   string
	URL     string
}

type Listener func(ClickEvent)

type subscription struct {
	id int
	fn Listener
}

// List addresses entries by position, like the bar itself, and also by a
// stable id that survives deletions before it.
type List struct {
	container *dom.Element
	storage   repository.KeyValueStore
	logger    zerolog.Logger

	entries   []*dom.Element
	listeners []subscription
	nextSub   int
}

// NewList renders into container and persists through storage. The
// container's existing children are left alone.
func NewList(container *dom.Element, storage repository.KeyValueStore) *List {
	return &List{
		container: container,
		storage:   storage,
		logger:    logging.Component("bookmarks"),
	}
}

func (l *List) Container() *dom.Element {
	return l.container
}

func (l *List) Len() int {
	return len(l.entries)
}

// Add appends a bookmark at the end of the bar and returns it with its id.
// Empty title or url take the bar defaults.
func (l *List) Add(title, url string) domain.Bookmark {
	return l.render(domain.NewBookmark(title, url))
}

func (l *List) render(b *domain.Bookmark) domain.Bookmark {
	el := dom.NewElement("button")
	el.SetAttribute(attrClass, bookmarkClass)
	el.SetAttribute(attrID, b.ID)
	el.SetAttribute(attrURL, b.URL)
	el.SetText(b.Title)
	el.OnClick(l.handleClick)

	l.container.AppendChild(el)
	l.entries = append(l.entries, el)

	return *b
}

func (l *List) handleClick(el *dom.Element) {
	event := ClickEvent{
		Element: el,
		ID:      attr(el, attrID),
		Title:   el.Text(),
		URL:     attr(el, attrURL),
	}

	subs := make([]subscription, len(l.listeners))
	copy(subs, l.listeners)
	for _, s := range subs {
		s.fn(event)
	}
}

// Subscribe registers fn for click events and returns its cancel func.
func (l *List) Subscribe(fn Listener) func() {
	l.nextSub++
	id := l.nextSub
	l.listeners = append(l.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, s := range l.listeners {
			if s.id == id {
				l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *List) at(index int) (*dom.Element, error) {
	if index < 0 || index >= len(l.entries) {
		return nil, fmt.Errorf("%w: %d (have %d)", domain.ErrIndexOutOfRange, index, len(l.entries))
	}
	return l.entries[index], nil
}

func (l *List) Delete(index int) error {
	el, err := l.at(index)
	if err != nil {
		return err
	}

	el.Remove()
	l.entries = append(l.entries[:index:index], l.entries[index+1:]...)
	return nil
}

func (l *List) DeleteByID(id string) error {
	index, ok := l.IndexOf(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBookmarkNotFound, id)
	}
	return l.Delete(index)
}

// IndexOf returns the current position of the bookmark with the given id.
func (l *List) IndexOf(id string) (int, bool) {
	for i, el := range l.entries {
		if attr(el, attrID) == id {
			return i, true
		}
	}
	return -1, false
}

func (l *List) Rename(index int, title string) error {
	el, err := l.at(index)
	if err != nil {
		return err
	}
	el.SetText(title)
	return nil
}

func (l *List) SetURL(index int, url string) error {
	el, err := l.at(index)
	if err != nil {
		return err
	}
	el.SetAttribute(attrURL, url)
	return nil
}

func (l *List) Name(index int) (string, error) {
	el, err := l.at(index)
	if err != nil {
		return "", err
	}
	return el.Text(), nil
}

func (l *List) URL(index int) (string, error) {
	el, err := l.at(index)
	if err != nil {
		return "", err
	}
	return attr(el, attrURL), nil
}

func (l *List) Get(index int) (domain.Bookmark, error) {
	el, err := l.at(index)
	if err != nil {
		return domain.Bookmark{}, err
	}
	return toBookmark(el), nil
}

// Click activates the bookmark at index as if the user clicked it.
func (l *List) Click(index int) error {
	el, err := l.at(index)
	if err != nil {
		return err
	}
	el.Click()
	return nil
}

// Entries returns the bookmarks in bar order.
func (l *List) Entries() []domain.Bookmark {
	out := make([]domain.Bookmark, len(l.entries))
	for i, el := range l.entries {
		out[i] = toBookmark(el)
	}
	return out
}

// Clear removes every rendered bookmark.
func (l *List) Clear() {
	for _, el := range l.entries {
		el.Remove()
	}
	l.entries = nil
}

// Persist writes the whole bar under key (DefaultStorageKey when empty).
func (l *List) Persist(ctx context.Context, key string) error {
	data, err := json.Marshal(l.Entries())
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}

	if err := l.storage.Set(ctx, storageKey(key), string(data)); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	return nil
}

// Load appends the stored bookmarks to whatever is already rendered; calling
// it twice duplicates entries. Use Reload to replace the bar instead.
func (l *List) Load(ctx context.Context, key string) error {
	stored, err := l.Archive(ctx, key)
	if err != nil {
		return err
	}
	l.LoadFromArchive(stored)
	return nil
}

// Reload clears the bar, then loads.
func (l *List) Reload(ctx context.Context, key string) error {
	stored, err := l.Archive(ctx, key)
	if err != nil {
		return err
	}
	l.Clear()
	l.LoadFromArchive(stored)
	return nil
}

// Archive reads the stored bookmarks without rendering them. A missing key
// reads as an empty list.
func (l *List) Archive(ctx context.Context, key string) ([]domain.Bookmark, error) {
	key = storageKey(key)

	raw, found, err := l.storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	stored, err := DecodeArchive([]byte(raw))
	if err != nil {
		l.logger.Warn().Err(err).Str("key", key).Msg("stored bookmarks are unreadable")
		return nil, err
	}
	return stored, nil
}

// LoadFromArchive appends entries in order, keeping titles and urls exactly
// as stored. Each entry gets a fresh id.
func (l *List) LoadFromArchive(entries []domain.Bookmark) {
	for _, b := range entries {
		l.render(&domain.Bookmark{ID: uuid.NewString(), Title: b.Title, URL: b.URL})
	}
}

// DecodeArchive parses a JSON array of {"name", "url"} objects.
func DecodeArchive(data []byte) ([]domain.Bookmark, error) {
	var stored []domain.Bookmark
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: bookmarks: %v", domain.ErrMalformedPersistedData, err)
	}
	return stored, nil
}

func storageKey(key string) string {
	if key == "" {
		return DefaultStorageKey
	}
	return key
}

func toBookmark(el *dom.Element) domain.Bookmark {
	return domain.Bookmark{
		ID:    attr(el, attrID),
		Title: el.Text(),
		URL:   attr(el, attrURL),
	}
}

func attr(el *dom.Element, name string) string {
	v, _ := el.Attribute(name)
	return v
}
