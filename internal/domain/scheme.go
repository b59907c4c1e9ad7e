package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// ColorScheme is the external theme document after top-level validation.
// Colors holds only what the document supplied; fallbacks are applied by the
// theme package into a separate map.
type ColorScheme struct {
	FormatVersion string
	Name          string
	Colors        map[string]Color
	Extended      bool

	raw []byte
}

// schemeDocument accepts both the canonical layout and the Chrome manifest
// layout ("version", "theme.colors", "aboutbrowser").
type schemeDocument struct {
	FormatVersion string                     `json:"formatVersion"`
	Version       string                     `json:"version"`
	Name          string                     `json:"name"`
	Colors        map[string]json.RawMessage `json:"colors"`
	Theme         *struct {
		Colors map[string]json.RawMessage `json:"colors"`
	} `json:"theme"`
	IsExtendedScheme truthy `json:"isExtendedScheme"`
	AboutBrowser     truthy `json:"aboutbrowser"`
}

type canonicalDocument struct {
	FormatVersion    string           `json:"formatVersion"`
	Name             string           `json:"name"`
	Colors           map[string]Color `json:"colors"`
	IsExtendedScheme bool             `json:"isExtendedScheme,omitempty"`
}

// ParseColorScheme validates the top-level fields of a scheme document and
// decodes its colors. Role-level requirements are checked by the theme package.
func ParseColorScheme(data []byte) (*ColorScheme, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &InvalidSchemeError{Reason: "document is not a JSON object"}
	}

	var doc schemeDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &InvalidSchemeError{Reason: fmt.Sprintf("failed to decode document: %v", err)}
	}

	version := doc.FormatVersion
	if version == "" {
		version = doc.Version
	}

	rawColors := doc.Colors
	if rawColors == nil && doc.Theme != nil {
		rawColors = doc.Theme.Colors
	}

	if version == "" || doc.Name == "" || rawColors == nil {
		return nil, &InvalidSchemeError{
			Scheme: doc.Name,
			Reason: "did not contain any of formatVersion, name, or colors",
		}
	}

	colors := make(map[string]Color, len(rawColors))
	for _, role := range sortedKeys(rawColors) {
		var c Color
		if err := json.Unmarshal(rawColors[role], &c); err != nil {
			return nil, &InvalidSchemeError{Scheme: doc.Name, Role: role, Reason: err.Error()}
		}
		colors[role] = c
	}

	raw := make([]byte, len(trimmed))
	copy(raw, trimmed)

	return &ColorScheme{
		FormatVersion: version,
		Name:          doc.Name,
		Colors:        colors,
		Extended:      bool(doc.IsExtendedScheme) || bool(doc.AboutBrowser),
		raw:           raw,
	}, nil
}

// NewColorScheme builds a scheme in code. The colors map is copied.
func NewColorScheme(name, formatVersion string, colors map[string]Color, extended bool) *ColorScheme {
	return &ColorScheme{
		FormatVersion: formatVersion,
		Name:          name,
		Colors:        CopyColors(colors),
		Extended:      extended,
	}
}

// MarshalJSON returns the document the scheme was parsed from, byte for byte,
// or the canonical layout for schemes built in code.
func (s *ColorScheme) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		out := make([]byte, len(s.raw))
		copy(out, s.raw)
		return out, nil
	}

	return json.Marshal(canonicalDocument{
		FormatVersion:    s.FormatVersion,
		Name:             s.Name,
		Colors:           s.Colors,
		IsExtendedScheme: s.Extended,
	})
}

func (s *ColorScheme) Has(role string) bool {
	_, ok := s.Colors[role]
	return ok
}

func CopyColors(colors map[string]Color) map[string]Color {
	out := make(map[string]Color, len(colors))
	for k, v := range colors {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truthy decodes a loosely typed marker the way a script would test it:
// true, a non-empty string, a non-zero number, or any object/array.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = truthy(x)
	case string:
		*t = x != ""
	case float64:
		*t = x != 0
	default:
		*t = true
	}
	return nil
}
