package theme

import "browser-shell/internal/domain"

const (
	DefaultThemeName    = "Chrome Dark"
	DefaultThemeVersion = "0.2_alpha"
)

// Palette is the Google color palette used for fixed fallbacks and the
// built-in theme. Construct it with GooglePalette and pass it explicitly.
type Palette struct {
	Grey050 domain.Color
	Grey100 domain.Color
	Grey200 domain.Color
	Grey300 domain.Color
	Grey400 domain.Color
	Grey500 domain.Color
	Grey600 domain.Color
	Grey700 domain.Color
	Grey800 domain.Color
	Grey900 domain.Color

	Blue050 domain.Color
	Blue300 domain.Color
	Blue400 domain.Color
	Blue500 domain.Color
	Blue600 domain.Color
	Blue700 domain.Color
	Blue800 domain.Color
	Blue900 domain.Color

	Red600    domain.Color
	Green600  domain.Color
	Yellow600 domain.Color
}

func GooglePalette() Palette {
	return Palette{
		Grey050: domain.RGB(0xF8, 0xF9, 0xFA),
		Grey100: domain.RGB(0xF1, 0xF3, 0xF4),
		Grey200: domain.RGB(0xE8, 0xEA, 0xED),
		Grey300: domain.RGB(0xDA, 0xDC, 0xE0),
		Grey400: domain.RGB(0xBD, 0xC1, 0xC6),
		Grey500: domain.RGB(0x9A, 0xA0, 0xA6),
		Grey600: domain.RGB(0x80, 0x86, 0x8B),
		Grey700: domain.RGB(0x5F, 0x63, 0x68),
		Grey800: domain.RGB(0x3C, 0x40, 0x43),
		Grey900: domain.RGB(0x20, 0x21, 0x24),

		Blue050: domain.RGB(0xE8, 0xF0, 0xFE),
		Blue300: domain.RGB(0x8A, 0xB4, 0xF8),
		Blue400: domain.RGB(0x66, 0x9D, 0xF6),
		Blue500: domain.RGB(0x42, 0x85, 0xF4),
		Blue600: domain.RGB(0x1A, 0x73, 0xE8),
		Blue700: domain.RGB(0x19, 0x67, 0xD2),
		Blue800: domain.RGB(0x18, 0x5A, 0xBC),
		Blue900: domain.RGB(0x17, 0x4E, 0xA6),

		Red600:    domain.RGB(0xD9, 0x30, 0x25),
		Green600:  domain.RGB(0x1E, 0x8E, 0x3E),
		Yellow600: domain.RGB(0xF9, 0xAB, 0x00),
	}
}

// DefaultScheme is the scheme of the built-in "Chrome Dark" theme.
func DefaultScheme(p Palette) *domain.ColorScheme {
	return domain.NewColorScheme(DefaultThemeName, DefaultThemeVersion, map[string]domain.Color{
		RoleFrame:             p.Grey900,
		RoleToolbar:           p.Grey800,
		RoleTabText:           p.Grey050,
		RoleTabBackgroundText: p.Grey300,
		RoleButtonBackground:  p.Grey800,
		RoleNTPBackground:     p.Grey800,
		RoleNTPLink:           p.Blue800,
		RoleNTPText:           p.Grey050,
		RoleOmniboxBackground: p.Grey900,
		RoleOmniboxText:       p.Grey050,
		RoleToolbarButtonIcon: p.Grey050,
		RoleToolbarText:       p.Grey050,
		RoleBookmarkText:      p.Grey050,

		RoleAccent:                    p.Blue700,
		RoleUISearchBackground:        p.Grey900,
		RoleUISearchForeground:        p.Grey050,
		RoleUISidebarBackground:       p.Grey800,
		RoleUISidebarForeground:       p.Grey050,
		RoleUIToolbarBackground:       p.Grey800,
		RoleUIToolbarForeground:       p.Grey050,
		RoleUISidebarActiveBackground: p.Grey900,
		RoleUISidebarActiveForeground: p.Blue700,
		RoleUILayer1Background:        p.Grey800,
		RoleUILayer1Foreground:        p.Grey050,
	}, true)
}

// Default builds the built-in theme. It is never persisted.
func Default(p Palette) *Theme {
	return MustNew(DefaultScheme(p), p)
}
