package diagram

import (
	"strconv"
	"strings"
)

// Font describes a text face the way a canvas does: family name,
// pixel height and style.
type Font struct {
	Name   string
	Height float64
	// Style is "normal", "bold", "italic" or "bold italic".
	Style string
}

// DefaultFont is installed by New.
var DefaultFont = Font{Name: "Courier New", Height: 14, Style: "normal"}

// CSS returns the font in CSS shorthand, e.g. "normal 14px Courier New".
func (f Font) CSS() string {
	style := f.Style
	if style == "" {
		style = "normal"
	}
	var b strings.Builder
	b.WriteString(style)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(f.Height, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Name)
	return b.String()
}

// Bold reports whether the style requests a bold face.
func (f Font) Bold() bool {
	return strings.Contains(strings.ToLower(f.Style), "bold")
}

// Italic reports whether the style requests an italic or oblique face.
func (f Font) Italic() bool {
	s := strings.ToLower(f.Style)
	return strings.Contains(s, "italic") || strings.Contains(s, "oblique")
}
