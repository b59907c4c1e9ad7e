package theme

import (
	"github.com/charmbracelet/lipgloss"

	"browser-shell/internal/domain"
)

// Styles renders a theme's chrome in the terminal: CLI output, the picker
// and previews all draw from it.
type Styles struct {
	// cli
	Success  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Muted    lipgloss.Style

	// chrome preview
	Frame       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Toolbar     lipgloss.Style
	Omnibox     lipgloss.Style
	Bookmark    lipgloss.Style
	NTP         lipgloss.Style
	NTPLink     lipgloss.Style
	Accent      lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	Selected    lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme, p Palette) *Styles {
	c := func(role string) lipgloss.Color {
		col, _ := t.Color(role)
		return lipgloss.Color(col.Hex())
	}

	accent := c(RoleToolbarButtonIcon)
	if t.IsExtended() {
		accent = c(RoleAccent)
	}

	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Green600.Hex())).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Red600.Hex())).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(accent),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(RoleTabText)).
			Background(c(RoleFrame)).
			PaddingLeft(1).
			PaddingRight(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(c(RoleTabBackgroundText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(RoleToolbarText)).
			Background(c(RoleToolbar)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Grey500.Hex())),

		// chrome preview
		Frame: lipgloss.NewStyle().
			Background(c(RoleFrame)),

		ActiveTab: lipgloss.NewStyle().
			Foreground(c(RoleTabText)).
			Background(c(RoleToolbar)).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),

		InactiveTab: lipgloss.NewStyle().
			Foreground(c(RoleTabBackgroundText)).
			Background(c(RoleBackgroundTab)).
			PaddingLeft(1).
			PaddingRight(1),

		Toolbar: lipgloss.NewStyle().
			Foreground(c(RoleToolbarButtonIcon)).
			Background(c(RoleToolbar)),

		Omnibox: lipgloss.NewStyle().
			Foreground(c(RoleOmniboxText)).
			Background(c(RoleOmniboxBackground)).
			PaddingLeft(1).
			PaddingRight(1),

		Bookmark: lipgloss.NewStyle().
			Foreground(c(RoleBookmarkText)).
			Background(c(RoleToolbar)),

		NTP: lipgloss.NewStyle().
			Foreground(c(RoleNTPText)).
			Background(c(RoleNTPBackground)),

		NTPLink: lipgloss.NewStyle().
			Foreground(c(RoleNTPLink)).
			Background(c(RoleNTPBackground)).
			Underline(true),

		Accent: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(RoleTabText)).
			Background(c(RoleFrame)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(c(RoleTabBackgroundText)).
			Italic(true),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Grey500.Hex())),

		Selected: lipgloss.NewStyle().
			Foreground(c(RoleTabText)).
			Background(c(RoleToolbar)).
			Bold(true),
	}
}

// Swatch renders a small block filled with col.
func Swatch(col domain.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(col.Hex())).
		Foreground(lipgloss.Color(col.Hex())).
		Render("  ████  ")
}
