package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB triple. Equality is component-wise, so == works.
type Color struct {
	R uint8
	G uint8
	B uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// CSS renders the color as a CSS rgb() literal, e.g. "rgb(32, 33, 36)".
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// relative luminance in [0, 1]
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func (c Color) IsLight() bool {
	return c.Luminance() > 0.5
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.R), int(c.G), int(c.B)})
}

// UnmarshalJSON accepts only [r, g, b] with integer components in 0..255.
func (c *Color) UnmarshalJSON(data []byte) error {
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.New("color must be an array of three numbers")
	}

	if len(parts) != 3 {
		return fmt.Errorf("color must have exactly 3 components, got %d", len(parts))
	}

	var out [3]uint8
	for i, p := range parts {
		if p != math.Trunc(p) || p < 0 || p > 255 {
			return fmt.Errorf("color component %v is not an integer in 0-255", p)
		}
		out[i] = uint8(p)
	}

	*c = Color{R: out[0], G: out[1], B: out[2]}
	return nil
}
