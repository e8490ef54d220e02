package recording

import (
	"io"

	"github.com/antixdev/diagram"
)

// Backend is a diagram.Surface that produces an output artefact: an
// image, a listing, a document.
//
// Backends are created through the registry with NewBackend and register
// themselves from init, following the database/sql driver pattern:
//
//	func init() {
//		recording.Register("png", func(width, height int) recording.Backend {
//			return NewSurface(width, height)
//		})
//	}
type Backend interface {
	diagram.Surface

	// WriteTo writes the rendered result to w.
	WriteTo(w io.Writer) (int64, error)

	// Close releases the backend's resources.
	Close() error
}

// FileBackend is a Backend that writes files directly.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered result to path.
	SaveToFile(path string) error
}

// ErrorBackend is a Backend that keeps the first error met while drawing.
type ErrorBackend interface {
	Backend

	// Err returns the first drawing error, or nil.
	Err() error
}
