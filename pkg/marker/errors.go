package marker

import "errors"

// ErrInvalidWindowSize is returned when a marker window is smaller than one character.
var ErrInvalidWindowSize = errors.New("marker: window size must be at least 1")
