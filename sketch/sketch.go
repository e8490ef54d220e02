// Package sketch reads diagram scenes from YAML and draws them.
//
// A sketch file lists the canvas size, a background colour, an optional
// font and an ordered list of shapes:
//
//	width: 320
//	height: 200
//	background: "222"
//	font: {name: Courier New, height: 14}
//	shapes:
//	  - {kind: rect, mode: outline, x: 10, y: 10, width: 100, height: 60}
//	  - {kind: circle, x: 200, y: 80, radius: 30, stroke: f80, lineWidth: 2}
//	  - {kind: text, mode: fill, x: 10, y: 90, text: hello}
//
// Colours are hex digits without the leading '#', or quoted with it.
// Missing colours use the diagram defaults.
package sketch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/antixdev/diagram"
)

// Validation errors. Validate wraps one of these for every problem found.
var (
	ErrInvalidSketch = errors.New("sketch: invalid sketch")
	ErrUnknownShape  = errors.New("sketch: unknown shape kind")
	ErrInvalidShape  = errors.New("sketch: invalid shape")
)

// Sketch is a complete scene.
type Sketch struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Background diagram.Color `yaml:"background,omitempty"`
	Font       *FontSpec     `yaml:"font,omitempty"`
	Shapes     []Shape       `yaml:"shapes"`
}

// FontSpec selects the diagram font. An empty style means "normal".
type FontSpec struct {
	Name   string  `yaml:"name"`
	Height float64 `yaml:"height"`
	Style  string  `yaml:"style,omitempty"`
}

// Load decodes a sketch from r and validates it. Unknown fields are an
// error.
func Load(r io.Reader) (*Sketch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Sketch
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSketch)
		}
		return nil, fmt.Errorf("sketch: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads a sketch from the named file.
func LoadFile(path string) (*Sketch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s to w as YAML.
func (s *Sketch) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("sketch: encode: %w", err)
	}
	return enc.Close()
}

// Validate reports every problem in s, joined into one error.
func (s *Sketch) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidSketch, s.Width, s.Height))
	}
	if err := checkColor("background", s.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidSketch, err))
	}
	if s.Font != nil && s.Font.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: font height %v must be positive", ErrInvalidSketch, s.Font.Height))
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Render validates s and draws it on d: the font first, then the
// background, then every shape in order.
func (s *Sketch) Render(d *diagram.Diagram) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Font != nil {
		d.SetFont(s.Font.Name, s.Font.Height, s.Font.Style)
	}
	d.Clear(s.Background)
	for i := range s.Shapes {
		s.Shapes[i].Draw(d)
	}
	diagram.Logger().Debug("sketch: rendered", "shapes", len(s.Shapes))
	return nil
}

func checkColor(field string, c diagram.Color) error {
	if c == "" {
		return nil
	}
	if _, err := c.NRGBA(); err != nil {
		return fmt.Errorf("%s %q: %w", field, string(c), err)
	}
	return nil
}
