package theme

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser-shell/internal/dom"
	"browser-shell/internal/domain"
	"browser-shell/internal/repository"
	"browser-shell/internal/repository/sqlite"
)

func setupSettings(t *testing.T) repository.KeyValueStore {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.NewSettingsRepository(db)
}

func newTestController(t *testing.T, settings repository.KeyValueStore, reapply func()) *Controller {
	t.Helper()
	logger := zerolog.Nop()
	c, err := NewController(context.Background(), ControllerOptions{
		Settings: settings,
		Palette:  GooglePalette(),
		Reapply:  reapply,
		Logger:   &logger,
	})
	require.NoError(t, err)
	return c
}

func TestController_FreshStore(t *testing.T) {
	c := newTestController(t, setupSettings(t), nil)

	assert.Equal(t, []string{DefaultThemeName}, c.ThemeNames())
	assert.Same(t, c.Default(), c.Current())
	assert.Empty(t, c.Themes())
	assert.Empty(t, c.LoadErrors())
}

func TestController_RequiresSettings(t *testing.T) {
	_, err := NewController(context.Background(), ControllerOptions{})
	assert.Error(t, err)
}

func TestController_ImportTheme(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)
	c := newTestController(t, settings, nil)

	th, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.NoError(t, err)
	assert.Equal(t, "Ocean", th.Name())
	assert.Equal(t, []string{"Ocean", DefaultThemeName}, c.ThemeNames())

	raw, found, err := settings.Get(ctx, SettingImportedThemes)
	require.NoError(t, err)
	require.True(t, found)

	var docs []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &docs))
	assert.Len(t, docs, 1)

	name, _, err := settings.Get(ctx, SettingCurrentTheme)
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, name)
}

func TestController_ImportInvalidTheme(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)
	c := newTestController(t, settings, nil)

	th, err := c.ImportTheme(ctx, schemeDoc(t, "Broken", without(requiredColors(), RoleTabText), false))
	require.Error(t, err)
	assert.Nil(t, th)
	assert.True(t, errors.Is(err, domain.ErrInvalidScheme))
	assert.Contains(t, err.Error(), RoleTabText)

	assert.Equal(t, []string{DefaultThemeName}, c.ThemeNames())
	_, found, err := settings.Get(ctx, SettingImportedThemes)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestController_FindByName(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, setupSettings(t), nil)

	ocean, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.NoError(t, err)

	assert.Same(t, ocean, c.FindByName("Ocean"))
	assert.Same(t, c.Default(), c.FindByName("missing"))
	assert.Same(t, c.Default(), c.FindByName(""))

	_, ok := c.Lookup("missing")
	assert.False(t, ok)
	_, ok = c.Lookup(DefaultThemeName)
	assert.True(t, ok)
	found, ok := c.Lookup("Ocean")
	assert.True(t, ok)
	assert.Same(t, ocean, found)
}

func TestController_SetCurrentTheme(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)

	reapplied := 0
	c := newTestController(t, settings, func() { reapplied++ })

	ocean, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.NoError(t, err)
	assert.Equal(t, 0, reapplied)

	require.NoError(t, c.SetCurrentTheme(ctx, ocean))
	assert.Same(t, ocean, c.Current())
	assert.Equal(t, 1, reapplied)

	name, _, err := settings.Get(ctx, SettingCurrentTheme)
	require.NoError(t, err)
	assert.Equal(t, "Ocean", name)

	require.NoError(t, c.SetCurrentTheme(ctx, nil))
	assert.Same(t, c.Default(), c.Current())
	assert.Equal(t, 2, reapplied)
}

func TestController_RemoveTheme(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)

	reapplied := 0
	c := newTestController(t, settings, func() { reapplied++ })

	ocean, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.NoError(t, err)
	forest, err := c.ImportTheme(ctx, schemeDoc(t, "Forest", requiredColors(), false))
	require.NoError(t, err)

	require.NoError(t, c.RemoveTheme(ctx, ocean))
	assert.Equal(t, []string{"Forest", DefaultThemeName}, c.ThemeNames())
	assert.Equal(t, 0, reapplied)

	// unknown theme is a no-op
	require.NoError(t, c.RemoveTheme(ctx, ocean))
	require.NoError(t, c.RemoveTheme(ctx, c.Default()))
	assert.Equal(t, []string{"Forest", DefaultThemeName}, c.ThemeNames())

	require.NoError(t, c.SetCurrentTheme(ctx, forest))
	require.NoError(t, c.RemoveTheme(ctx, forest))
	assert.Same(t, c.Default(), c.Current())
	assert.Equal(t, 2, reapplied)

	reloaded := newTestController(t, settings, nil)
	assert.Equal(t, []string{DefaultThemeName}, reloaded.ThemeNames())
}

func TestController_RoundTrip(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)
	c := newTestController(t, settings, nil)

	names := []string{"Ocean", "Forest", "Desert"}
	for i, name := range names {
		extended := i == 1
		colors := requiredColors()
		if extended {
			colors = extendedColors()
		}
		_, err := c.ImportTheme(ctx, schemeDoc(t, name, colors, extended))
		require.NoError(t, err)
	}
	require.NoError(t, c.SetCurrentTheme(ctx, c.FindByName("Forest")))

	reloaded := newTestController(t, settings, nil)

	assert.Equal(t, c.ThemeNames(), reloaded.ThemeNames())
	assert.Equal(t, "Forest", reloaded.Current().Name())
	assert.True(t, reloaded.Current().IsExtended())

	original := c.Themes()
	restored := reloaded.Themes()
	require.Len(t, restored, len(original))
	for i := range original {
		assert.Equal(t, original[i].Colors(), restored[i].Colors())
		assert.Equal(t, original[i].Flags(), restored[i].Flags())
	}
}

func TestController_SkipsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)

	good := schemeDoc(t, "Ocean", requiredColors(), false)
	bad := schemeDoc(t, "Broken", without(requiredColors(), RoleFrame), false)
	raw := "[" + string(bad) + "," + string(good) + `,{"nonsense": true}]`
	require.NoError(t, settings.Set(ctx, SettingImportedThemes, raw))
	require.NoError(t, settings.Set(ctx, SettingCurrentTheme, "Ocean"))

	c := newTestController(t, settings, nil)

	assert.Equal(t, []string{"Ocean", DefaultThemeName}, c.ThemeNames())
	assert.Equal(t, "Ocean", c.Current().Name())
	require.Len(t, c.LoadErrors(), 2)
	for _, err := range c.LoadErrors() {
		assert.True(t, errors.Is(err, domain.ErrInvalidScheme))
	}
}

func TestController_MalformedList(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)
	require.NoError(t, settings.Set(ctx, SettingImportedThemes, "{not json"))

	logger := zerolog.Nop()
	_, err := NewController(ctx, ControllerOptions{Settings: settings, Palette: GooglePalette(), Logger: &logger})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedPersistedData))
}

func TestController_UnknownCurrentFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	settings := setupSettings(t)
	require.NoError(t, settings.Set(ctx, SettingCurrentTheme, "Vanished"))

	c := newTestController(t, settings, nil)
	assert.Same(t, c.Default(), c.Current())
}

type failingStore struct {
	repository.KeyValueStore
	failSet bool
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errors.New("disk full")
	}
	return s.KeyValueStore.Set(ctx, key, value)
}

func TestController_ImportRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{KeyValueStore: setupSettings(t), failSet: true}
	c := newTestController(t, store, nil)

	_, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.Error(t, err)
	assert.Equal(t, []string{DefaultThemeName}, c.ThemeNames())
}

func TestController_SetCurrentRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{KeyValueStore: setupSettings(t)}
	calls := 0
	c := newTestController(t, store, func() { calls++ })

	ocean, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.NoError(t, err)

	store.failSet = true
	require.Error(t, c.SetCurrentTheme(ctx, ocean))
	assert.Same(t, c.Default(), c.Current())
	assert.Equal(t, 0, calls)

	name, _, err := store.Get(ctx, SettingCurrentTheme)
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, name)
}

func TestController_RemoveRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{KeyValueStore: setupSettings(t)}
	calls := 0
	c := newTestController(t, store, func() { calls++ })

	ocean, err := c.ImportTheme(ctx, schemeDoc(t, "Ocean", requiredColors(), false))
	require.NoError(t, err)
	_, err = c.ImportTheme(ctx, schemeDoc(t, "Forest", requiredColors(), false))
	require.NoError(t, err)
	require.NoError(t, c.SetCurrentTheme(ctx, ocean))
	calls = 0

	store.failSet = true
	require.Error(t, c.RemoveTheme(ctx, ocean))
	assert.Equal(t, []string{"Ocean", "Forest", DefaultThemeName}, c.ThemeNames())
	assert.Same(t, ocean, c.Current())
	assert.Equal(t, 0, calls)
}

func TestController_ZeroPaletteUsesGooglePalette(t *testing.T) {
	c, err := NewController(context.Background(), ControllerOptions{Settings: setupSettings(t)})
	require.NoError(t, err)

	assert.Equal(t, GooglePalette(), c.Palette())
	assert.False(t, c.Default().HasFlag(FlagNeedTabContrast))
	frame, _ := c.Default().Color(RoleFrame)
	assert.NotEqual(t, domain.Color{}, frame)
}

func TestController_ApplyTheme(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, setupSettings(t), nil)

	doc := dom.NewDocument()
	c.ApplyTheme(doc)
	v, ok := doc.Root().Property("--aboutbrowser-ui-accent")
	require.True(t, ok)
	assert.Equal(t, GooglePalette().Blue700.CSS(), v)

	plain, err := c.ImportTheme(ctx, schemeDoc(t, "Plain", requiredColors(), false))
	require.NoError(t, err)
	require.NoError(t, c.SetCurrentTheme(ctx, plain))

	frame := dom.NewFrame("about://history")
	c.ApplyThemeToFrame(frame, false)
	root := frame.ContentDocument().Root()

	v, _ = root.Property("--aboutbrowser-frame-bg")
	assert.Equal(t, testFrame.CSS(), v)
	v, _ = root.Property("--aboutbrowser-ui-bg")
	assert.Equal(t, GooglePalette().Grey800.CSS(), v)
}
