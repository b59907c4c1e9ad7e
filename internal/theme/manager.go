package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"browser-shell/internal/dom"
	"browser-shell/internal/domain"
	"browser-shell/internal/logging"
	"browser-shell/internal/repository"
)

// settings keys
const (
	SettingImportedThemes = "importedThemes"
	SettingCurrentTheme   = "currentTheme"
)

type ControllerOptions struct {
	Settings repository.KeyValueStore
	// Palette defaults to GooglePalette() when zero.
	Palette  Palette

	// Default is the built-in theme; it is never persisted or mutated.
	// Defaults to Default(Palette).
	Default *Theme

	// Reapply is called after the current theme changes so the host can
	// restyle every open document and frame.
	Reapply func()

	Logger *zerolog.Logger
}

// Controller owns the imported themes and the current selection, and
// persists both to the settings store.
type Controller struct {
	settings     repository.KeyValueStore
	palette      Palette
	defaultTheme *Theme
	reapply      func()
	logger       zerolog.Logger

	themes     []*Theme
	current    *Theme
	loadErrors []error
}

// NewController loads persisted themes and resolves the current one by name.
// Corrupt entries are skipped and reported by LoadErrors; only an unreadable
// store or an undecodable list fails.
func NewController(ctx context.Context, opts ControllerOptions) (*Controller, error) {
	if opts.Settings == nil {
		return nil, fmt.Errorf("settings store is required")
	}

	if opts.Palette == (Palette{}) {
		opts.Palette = GooglePalette()
	}

	c := &Controller{
		settings:     opts.Settings,
		palette:      opts.Palette,
		defaultTheme: opts.Default,
		reapply:      opts.Reapply,
	}

	if c.defaultTheme == nil {
		c.defaultTheme = Default(c.palette)
	}

	if opts.Logger != nil {
		c.logger = *opts.Logger
	} else {
		c.logger = logging.Component("themes")
	}

	if err := c.load(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Controller) load(ctx context.Context) error {
	raw, found, err := c.settings.Get(ctx, SettingImportedThemes)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", SettingImportedThemes, err)
	}

	if found && strings.TrimSpace(raw) != "" {
		var docs []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &docs); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrMalformedPersistedData, SettingImportedThemes, err)
		}

		for i, doc := range docs {
			t, err := Parse(doc, c.palette)
			if err != nil {
				c.loadErrors = append(c.loadErrors, fmt.Errorf("%s[%d]: %w", SettingImportedThemes, i, err))
				c.logger.Warn().Err(err).Int("index", i).Msg("skipping persisted theme")
				continue
			}
			c.themes = append(c.themes, t)
		}
	}

	name, _, err := c.settings.Get(ctx, SettingCurrentTheme)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", SettingCurrentTheme, err)
	}
	c.current = c.FindByName(name)

	return nil
}

func (c *Controller) save(ctx context.Context) error {
	themes := c.themes
	if themes == nil {
		themes = []*Theme{}
	}

	data, err := json.Marshal(themes)
	if err != nil {
		return fmt.Errorf("failed to encode themes: %w", err)
	}

	// two independent writes; the store offers no transaction across keys
	if err := c.settings.Set(ctx, SettingImportedThemes, string(data)); err != nil {
		return fmt.Errorf("failed to save themes: %w", err)
	}

	if err := c.settings.Set(ctx, SettingCurrentTheme, c.current.Name()); err != nil {
		return fmt.Errorf("failed to save current theme: %w", err)
	}

	return nil
}

// ThemeNames returns the imported theme names in insertion order followed by
// the built-in default.
func (c *Controller) ThemeNames() []string {
	names := make([]string, 0, len(c.themes)+1)
	for _, t := range c.themes {
		names = append(names, t.Name())
	}
	return append(names, c.defaultTheme.Name())
}

// FindByName returns the first imported theme called name, or the default.
func (c *Controller) FindByName(name string) *Theme {
	for _, t := range c.themes {
		if t.Name() == name {
			return t
		}
	}
	return c.defaultTheme
}

// Lookup is FindByName that also reports whether name matched anything,
// including the default's own name.
func (c *Controller) Lookup(name string) (*Theme, bool) {
	t := c.FindByName(name)
	if t == c.defaultTheme && name != c.defaultTheme.Name() {
		return t, false
	}
	return t, true
}

// ImportTheme builds a theme from a scheme document and appends it. An
// invalid document is returned as an error wrapping domain.ErrInvalidScheme;
// nothing is stored in that case.
func (c *Controller) ImportTheme(ctx context.Context, doc []byte) (*Theme, error) {
	t, err := Parse(doc, c.palette)
	if err != nil {
		return nil, err
	}

	c.themes = append(c.themes, t)
	if err := c.save(ctx); err != nil {
		c.themes = c.themes[:len(c.themes)-1]
		return nil, err
	}

	c.logger.Debug().Str("theme", t.Name()).Msg("theme imported")
	return t, nil
}

// RemoveTheme drops t by identity. Unknown themes are ignored. Removing the
// current theme switches back to the default.
func (c *Controller) RemoveTheme(ctx context.Context, t *Theme) error {
	idx := -1
	for i, existing := range c.themes {
		if existing == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	prevThemes, prevCurrent := c.themes, c.current
	c.themes = append(c.themes[:idx:idx], c.themes[idx+1:]...)

	wasCurrent := c.current == t
	if wasCurrent {
		c.current = c.defaultTheme
	}

	if err := c.save(ctx); err != nil {
		c.themes, c.current = prevThemes, prevCurrent
		return err
	}

	if wasCurrent && c.reapply != nil {
		c.reapply()
	}
	return nil
}

// SetCurrentTheme selects t (nil means the default), persists the choice and
// asks the host to restyle.
func (c *Controller) SetCurrentTheme(ctx context.Context, t *Theme) error {
	if t == nil {
		t = c.defaultTheme
	}
	prev := c.current
	c.current = t

	if err := c.save(ctx); err != nil {
		c.current = prev
		return err
	}

	c.logger.Debug().Str("theme", t.Name()).Msg("current theme changed")

	if c.reapply != nil {
		c.reapply()
	}
	return nil
}

func (c *Controller) Current() *Theme {
	return c.current
}

func (c *Controller) Default() *Theme {
	return c.defaultTheme
}

func (c *Controller) Palette() Palette {
	return c.palette
}

// Themes returns the imported themes in insertion order.
func (c *Controller) Themes() []*Theme {
	out := make([]*Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// LoadErrors lists persisted entries that were skipped during load.
func (c *Controller) LoadErrors() []error {
	return c.loadErrors
}

// ApplyTheme styles the shell document with the current theme.
func (c *Controller) ApplyTheme(doc *dom.Document) {
	c.current.Inject(doc)
}

// ApplyThemeToFrame styles an embedded frame with the current theme.
func (c *Controller) ApplyThemeToFrame(frame *dom.Frame, isNTP bool) {
	c.current.InjectIntoFrame(frame, isNTP, c.defaultTheme)
}
