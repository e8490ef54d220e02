package diagram

import "errors"

// ErrInvalidColor is returned when a Color is not a valid hex color.
var ErrInvalidColor = errors.New("diagram: invalid color")
