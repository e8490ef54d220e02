package diagram

import "github.com/antixdev/diagram/input"

// Option configures a Diagram during creation.
//
// Example:
//
//	d := diagram.New(s, 0, 0, 800, 600, diagram.WithFont(diagram.Font{
//	    Name:   "monospace",
//	    Height: 16,
//	}))
type Option func(*options)

type options struct {
	font  Font
	input *input.State
}

func defaultOptions() options {
	return options{
		font: DefaultFont,
	}
}

// WithFont replaces the initial font. The default is Courier New, 14px.
func WithFont(f Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithInput makes the Diagram track input in an existing State instead of
// a fresh one. The State's bounds are reset to the Diagram's size.
func WithInput(s *input.State) Option {
	return func(o *options) {
		o.input = s
	}
}
