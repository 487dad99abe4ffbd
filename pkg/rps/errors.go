package rps

import "errors"

// Sentinel errors for the rps package.
var (
	ErrInvalidSymbol = errors.New("rps: invalid symbol")
	ErrMalformedLine = errors.New("rps: malformed strategy line")
	ErrOutOfDomain   = errors.New("rps: value out of domain")
)
