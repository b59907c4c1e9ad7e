package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"browser-shell/internal/domain"
)

func TestNewStyles(t *testing.T) {
	p := GooglePalette()

	ext := NewStyles(Default(p), p)
	assert.NotNil(t, ext)
	assert.Contains(t, ext.ActiveTab.Render("tab"), "tab")

	plain := NewStyles(mustParse(t, schemeDoc(t, "Plain", requiredColors(), false)), p)
	assert.Contains(t, plain.Omnibox.Render("search"), "search")
}

func TestSwatch(t *testing.T) {
	assert.Contains(t, Swatch(domain.RGB(1, 2, 3)), "████")
}
