package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"browser-shell/internal/domain"
)

var (
	testFrame       = domain.RGB(10, 20, 30)
	testToolbar     = domain.RGB(40, 50, 60)
	testTabText     = domain.RGB(200, 210, 220)
	testTabBgText   = domain.RGB(150, 160, 170)
	testAccent      = domain.RGB(1, 2, 3)
	testSidebarBg   = domain.RGB(4, 5, 6)
	testSidebarAcBg = domain.RGB(7, 8, 9)
)

func requiredColors() map[string]domain.Color {
	return map[string]domain.Color{
		RoleFrame:             testFrame,
		RoleToolbar:           testToolbar,
		RoleTabText:           testTabText,
		RoleTabBackgroundText: testTabBgText,
	}
}

func extendedColors() map[string]domain.Color {
	colors := requiredColors()
	colors[RoleAccent] = testAccent
	colors[RoleUISearchBackground] = domain.RGB(11, 11, 11)
	colors[RoleUIToolbarBackground] = domain.RGB(12, 12, 12)
	colors[RoleUISidebarBackground] = testSidebarBg
	colors[RoleUISidebarActiveBackground] = testSidebarAcBg
	colors[RoleUISidebarActiveForeground] = domain.RGB(13, 13, 13)
	colors[RoleUILayer1Background] = domain.RGB(14, 14, 14)
	colors[RoleUILayer1Foreground] = domain.RGB(15, 15, 15)
	return colors
}

// schemeDoc renders a canonical scheme document.
func schemeDoc(t *testing.T, name string, colors map[string]domain.Color, extended bool) []byte {
	t.Helper()
	doc := map[string]interface{}{
		"formatVersion": "1",
		"name":          name,
		"colors":        colors,
	}
	if extended {
		doc["isExtendedScheme"] = true
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func mustParse(t *testing.T, data []byte) *Theme {
	t.Helper()
	th, err := Parse(data, GooglePalette())
	require.NoError(t, err)
	return th
}

func without(colors map[string]domain.Color, role string) map[string]domain.Color {
	out := domain.CopyColors(colors)
	delete(out, role)
	return out
}
