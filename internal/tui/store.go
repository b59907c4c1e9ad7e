package tui

import (
	"context"

	"browser-shell/internal/theme"
)

// ThemeStore is the part of the theme controller the picker drives. The
// picker calls it only from Update, on the program's event loop.
type ThemeStore interface {
	ThemeNames() []string
	FindByName(name string) *theme.Theme
	Current() *theme.Theme
	Default() *theme.Theme
	Palette() theme.Palette
	SetCurrentTheme(ctx context.Context, t *theme.Theme) error
	RemoveTheme(ctx context.Context, t *theme.Theme) error
}
