package raster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/antixdev/diagram"
)

// ErrFontNotFound is returned when neither the requested family nor the
// fallback family is registered.
var ErrFontNotFound = errors.New("raster: font not found")

// Style selects a face within a family.
type Style uint8

const (
	StyleRegular Style = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "Regular"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	case StyleBoldItalic:
		return "BoldItalic"
	default:
		return "Unknown"
	}
}

// styleOf maps a CSS font style string onto a Style.
func styleOf(f diagram.Font) Style {
	switch {
	case f.Bold() && f.Italic():
		return StyleBoldItalic
	case f.Bold():
		return StyleBold
	case f.Italic():
		return StyleItalic
	default:
		return StyleRegular
	}
}

type fontKey struct {
	family string
	style  Style
}

// FontRegistry maps font family names to TrueType data.
//
// Family names are case-insensitive. A diagram.Font name may be a CSS
// family list such as "Courier New, monospace"; the first registered
// family wins. Unknown families resolve to the fallback family.
//
// FontRegistry is safe for concurrent use.
type FontRegistry struct {
	mu       sync.Mutex
	data     map[fontKey][]byte
	sources  map[fontKey]*text.FontSource
	aliases  map[string]string
	fallback string
}

// NewFontRegistry returns an empty registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		data:    make(map[fontKey][]byte),
		sources: make(map[fontKey]*text.FontSource),
		aliases: make(map[string]string),
	}
}

// Go font family names registered by DefaultFonts.
const (
	FamilyGo     = "go"
	FamilyGoMono = "go mono"
)

var (
	defaultFontsOnce sync.Once
	defaultFonts     *FontRegistry
)

// DefaultFonts returns the shared registry holding the Go fonts.
// Monospace family names (Courier New, monospace, Consolas, Menlo and
// similar) are aliased to Go Mono; everything else falls back to Go.
func DefaultFonts() *FontRegistry {
	defaultFontsOnce.Do(func() {
		r := NewFontRegistry()
		r.Register(FamilyGo, StyleRegular, goregular.TTF)
		r.Register(FamilyGo, StyleBold, gobold.TTF)
		r.Register(FamilyGo, StyleItalic, goitalic.TTF)
		r.Register(FamilyGo, StyleBoldItalic, gobolditalic.TTF)
		r.Register(FamilyGoMono, StyleRegular, gomono.TTF)
		r.Register(FamilyGoMono, StyleBold, gomonobold.TTF)
		r.Register(FamilyGoMono, StyleItalic, gomonoitalic.TTF)
		r.Register(FamilyGoMono, StyleBoldItalic, gomonobolditalic.TTF)
		for _, name := range []string{"courier new", "courier", "monospace", "consolas", "menlo", "monaco"} {
			r.Alias(name, FamilyGoMono)
		}
		r.Alias("sans-serif", FamilyGo)
		r.SetFallback(FamilyGo)
		defaultFonts = r
	})
	return defaultFonts
}

// Register adds TrueType data for a family and style, replacing any
// earlier registration.
func (r *FontRegistry) Register(family string, style Style, ttf []byte) {
	key := fontKey{normalizeFamily(family), style}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = ttf
	delete(r.sources, key)
}

// Alias makes name resolve to family.
func (r *FontRegistry) Alias(name, family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[normalizeFamily(name)] = normalizeFamily(family)
}

// SetFallback sets the family used when no requested family is known.
func (r *FontRegistry) SetFallback(family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = normalizeFamily(family)
}

// Face returns a face for f. A style missing from the family falls back
// to its regular face. A non-positive height uses the default font
// height.
func (r *FontRegistry) Face(f diagram.Font) (text.Face, error) {
	size := f.Height
	if size <= 0 {
		size = diagram.DefaultFont.Height
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	family := r.family(f.Name)
	if family == "" {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, f.Name)
	}
	src, err := r.source(family, styleOf(f))
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// Family returns the registered family that a font name resolves to, or
// "" when neither the name nor the fallback is registered.
func (r *FontRegistry) Family(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.family(name)
}

// Families returns the registered family names.
func (r *FontRegistry) Families() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for k := range r.data {
		if !seen[k.family] {
			seen[k.family] = true
			out = append(out, k.family)
		}
	}
	return out
}

func (r *FontRegistry) family(name string) string {
	for _, n := range strings.Split(name, ",") {
		n = normalizeFamily(n)
		if alias, ok := r.aliases[n]; ok {
			n = alias
		}
		if r.has(n) {
			return n
		}
	}
	if r.has(r.fallback) {
		return r.fallback
	}
	return ""
}

func (r *FontRegistry) has(family string) bool {
	for k := range r.data {
		if k.family == family {
			return true
		}
	}
	return false
}

// source returns the parsed source for family in style, or in the first
// style the family has when style is missing. r.mu must be held.
func (r *FontRegistry) source(family string, style Style) (*text.FontSource, error) {
	key := fontKey{family, style}
	if _, ok := r.data[key]; !ok {
		for _, alt := range []Style{StyleRegular, StyleBold, StyleItalic, StyleBoldItalic} {
			key.style = alt
			if _, ok := r.data[key]; ok {
				break
			}
		}
	}
	if src, ok := r.sources[key]; ok {
		return src, nil
	}
	data, ok := r.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font %s %s: %w", family, key.style, err)
	}
	r.sources[key] = src
	return src, nil
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(name), `"'`))
}
