package raster

import "github.com/gogpu/gg"

// Option configures a Surface.
type Option func(*options)

type options struct {
	fonts   *FontRegistry
	context *gg.Context
}

func defaultOptions() options {
	return options{}
}

// WithFonts sets the font registry. The default is DefaultFonts().
func WithFonts(r *FontRegistry) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithContext draws onto an existing gg context instead of allocating a
// new one. The width and height passed to NewSurface are then ignored.
// The caller keeps ownership of dc; Surface.Close does not close it.
func WithContext(dc *gg.Context) Option {
	return func(o *options) {
		o.context = dc
	}
}
