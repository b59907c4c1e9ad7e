package theme

import (
	"encoding/json"

	"browser-shell/internal/domain"
)

// Theme is a color scheme with its required roles verified and every
// projected role resolved. A Theme never changes after New returns.
type Theme struct {
	scheme *domain.ColorScheme
	colors map[string]domain.Color
	flags  []string
}

// Parse decodes a scheme document and builds a Theme from it.
func Parse(data []byte, palette Palette) (*Theme, error) {
	scheme, err := domain.ParseColorScheme(data)
	if err != nil {
		return nil, err
	}
	return New(scheme, palette)
}

// New validates scheme and resolves its fallbacks into a fresh color map.
// The scheme's own Colors map is never written to.
func New(scheme *domain.ColorScheme, palette Palette) (*Theme, error) {
	if scheme == nil || scheme.FormatVersion == "" || scheme.Name == "" || scheme.Colors == nil {
		name := ""
		if scheme != nil {
			name = scheme.Name
		}
		return nil, &domain.InvalidSchemeError{
			Scheme: name,
			Reason: "did not contain any of formatVersion, name, or colors",
		}
	}

	for _, role := range requiredRoles {
		if !scheme.Has(role) {
			return nil, &domain.InvalidSchemeError{Scheme: scheme.Name, Role: role}
		}
	}

	if scheme.Extended {
		for _, role := range extendedRequiredRoles {
			if !scheme.Has(role) {
				return nil, &domain.InvalidSchemeError{Scheme: scheme.Name, Role: role}
			}
		}
	}

	colors := domain.CopyColors(scheme.Colors)
	applyFallbacks(colors, scheme, fallbackRoles, palette)
	if scheme.Extended {
		applyFallbacks(colors, scheme, extendedFallbackRoles, palette)
	}

	var flags []string
	if colors[RoleFrame] == colors[RoleToolbar] {
		flags = append(flags, FlagNeedTabContrast)
	}

	return &Theme{
		scheme: scheme,
		colors: colors,
		flags:  flags,
	}, nil
}

// MustNew is New for schemes known to be valid, such as the built-in default.
func MustNew(scheme *domain.ColorScheme, palette Palette) *Theme {
	t, err := New(scheme, palette)
	if err != nil {
		panic(err)
	}
	return t
}

// only roles absent from the input are filled
func applyFallbacks(colors map[string]domain.Color, scheme *domain.ColorScheme, table []fallback, palette Palette) {
	for _, fb := range table {
		if scheme.Has(fb.role) {
			continue
		}
		if fb.fixed != nil {
			colors[fb.role] = fb.fixed(palette)
			continue
		}
		colors[fb.role] = colors[fb.from]
	}
}

func (t *Theme) Name() string {
	return t.scheme.Name
}

func (t *Theme) FormatVersion() string {
	return t.scheme.FormatVersion
}

// IsExtended reports whether the theme also styles in-app pages.
func (t *Theme) IsExtended() bool {
	return t.scheme.Extended
}

func (t *Theme) Color(role string) (domain.Color, bool) {
	c, ok := t.colors[role]
	return c, ok
}

// Colors returns a copy of the resolved color map.
func (t *Theme) Colors() map[string]domain.Color {
	return domain.CopyColors(t.colors)
}

func (t *Theme) Flags() []string {
	out := make([]string, len(t.flags))
	copy(out, t.flags)
	return out
}

func (t *Theme) HasFlag(flag string) bool {
	for _, f := range t.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// MarshalJSON writes the scheme document the theme was built from.
func (t *Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.scheme)
}
