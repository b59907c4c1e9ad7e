package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"browser-shell/internal/bookmarks"
	"browser-shell/internal/config"
	"browser-shell/internal/dom"
	"browser-shell/internal/logging"
	"browser-shell/internal/repository"
	"browser-shell/internal/repository/sqlite"
	"browser-shell/internal/theme"
)

const (
	newTabURL   = "aboutbrowser://newtab"
	settingsURL = "aboutbrowser://settings"
)

// shell is the host application: the top-level document with its bookmark
// bar, the embedded frames, and the stores behind them.
type shell struct {
	cfg    *config.Config
	db     *sqlite.DB
	out    io.Writer
	logger zerolog.Logger

	themes       *theme.Controller
	bookmarks    *bookmarks.List
	localStorage repository.KeyValueStore

	document *dom.Document
	frames   []*dom.Frame
	// content is the frame bookmarks navigate
	content *dom.Frame

	// quiet suppresses the re-render report while the shell is starting
	// or a full-screen program owns the terminal
	quiet bool
}

func openShell(ctx context.Context, cfg *config.Config, out io.Writer) (*shell, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &shell{
		cfg:      cfg,
		db:       db,
		out:      out,
		logger:   logging.Component("shell"),
		document: dom.NewDocument(),
		quiet:    true,
	}

	bar := dom.NewElement("nav")
	bar.SetAttribute("id", "bookmarks-bar")
	s.document.Root().AppendChild(bar)

	s.content = dom.NewFrame(newTabURL)
	s.frames = []*dom.Frame{s.content, dom.NewFrame(settingsURL)}

	s.themes, err = theme.NewController(ctx, theme.ControllerOptions{
		Settings: sqlite.NewSettingsRepository(db),
		Palette:  theme.GooglePalette(),
		Reapply:  s.rerender,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load themes: %w", err)
	}

	s.localStorage = sqlite.NewLocalStorageRepository(db)
	s.bookmarks = bookmarks.NewList(bar, s.localStorage)
	s.bookmarks.Subscribe(s.navigate)
	if err := s.bookmarks.Load(ctx, cfg.BookmarksKey); err != nil {
		s.logger.Warn().Err(err).Msg("starting with an empty bookmark bar")
	}

	s.rerender()
	s.quiet = false
	return s, nil
}

// silently runs fn with re-render reports suppressed.
func (s *shell) silently(fn func() error) error {
	prev := s.quiet
	s.quiet = true
	defer func() { s.quiet = prev }()
	return fn()
}

func (s *shell) Close() error {
	return s.db.Close()
}

// rerender restyles the shell document and every frame with the current theme.
func (s *shell) rerender() {
	s.themes.ApplyTheme(s.document)
	for _, f := range s.frames {
		s.themes.ApplyThemeToFrame(f, f.URL == newTabURL)
	}

	s.logger.Debug().
		Str("theme", s.themes.Current().Name()).
		Int("frames", len(s.frames)).
		Msg("re-rendered")

	if !s.quiet {
		styles := s.styles()
		fmt.Fprintln(s.out, styles.Info.Render(fmt.Sprintf(
			"  Restyled shell and %d frames with '%s'", len(s.frames), s.themes.Current().Name())))
	}
}

// navigate loads a clicked bookmark into the content frame.
func (s *shell) navigate(e bookmarks.ClickEvent) {
	s.content.URL = e.URL
	s.themes.ApplyThemeToFrame(s.content, e.URL == newTabURL)
	s.logger.Debug().Str("url", e.URL).Str("id", e.ID).Msg("navigate")
}

func (s *shell) persistBookmarks(ctx context.Context) error {
	return s.bookmarks.Persist(ctx, s.cfg.BookmarksKey)
}

func (s *shell) styles() *theme.Styles {
	return theme.NewStyles(s.themes.Current(), s.themes.Palette())
}
