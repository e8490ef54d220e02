package diagram

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a hex color string without the leading '#'.
// Supported lengths: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// The empty Color selects a primitive's default.
type Color string

// Default colors used by the drawing primitives.
const (
	DefaultClearColor    Color = "111"
	DefaultLineColor     Color = "ccc"
	DefaultRectStroke    Color = "ce9"
	DefaultRectFill      Color = "563"
	DefaultPixelColor    Color = "ddd"
	DefaultCircleStroke  Color = "8bd"
	DefaultCircleFill    Color = "578"
	DefaultEllipseStroke Color = "ddd"
	DefaultEllipseFill   Color = "777"
	DefaultPolyStroke    Color = "f9e"
	DefaultPolyFill      Color = "857"
	DefaultTextColor     Color = "ddd"
	DefaultTextOutline   Color = "fff"
	DefaultGridColor     Color = "444"
)

// Or returns c, or def when c is empty.
func (c Color) Or(def Color) Color {
	if c == "" {
		return def
	}
	return c
}

// CSS returns the color as a CSS hex color ("#ccc").
func (c Color) CSS() string {
	return "#" + strings.TrimPrefix(string(c), "#")
}

// NRGBA parses the color. A leading '#' is tolerated.
func (c Color) NRGBA() (color.NRGBA, error) {
	hex := strings.TrimPrefix(string(c), "#")

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, ok := hexDigit(hex[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}

	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so unquoted YAML
// scalars such as 111 decode as colors.
func (c *Color) UnmarshalText(text []byte) error {
	*c = Color(strings.TrimPrefix(strings.TrimSpace(string(text)), "#"))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
