package window

import "errors"

// ErrInvalidCapacity is returned when a window is created with a capacity below one.
var ErrInvalidCapacity = errors.New("window: capacity must be at least 1")
