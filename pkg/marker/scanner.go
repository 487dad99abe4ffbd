package marker

import "github.com/SeamusWaldron/aoc2022/internal/window"

// Scanner walks a datastream one character at a time, exposing the window
// state after each step. It finds the same marker as Detect.
type Scanner struct {
	symbols  []rune
	window   *window.Distinct[rune]
	last     rune
	evicted  rune
	didEvict bool
	found    int
}

// NewScanner creates a scanner over datastream with the given window size.
func NewScanner(datastream string, windowSize int) (*Scanner, error) {
	if windowSize < 1 {
		return nil, ErrInvalidWindowSize
	}
	w, err := window.New[rune](windowSize)
	if err != nil {
		return nil, err
	}
	return &Scanner{symbols: []rune(datastream), window: w}, nil
}

// Step consumes the next character. It returns false once the marker has
// been found or the datastream is exhausted.
func (s *Scanner) Step() bool {
	if s.Done() {
		return false
	}

	s.last = s.symbols[s.window.Pushed()]
	s.evicted, s.didEvict = s.window.Push(s.last)
	if s.window.Distinct() == s.window.Cap() {
		s.found = s.window.Pushed()
	}
	return true
}

// Run steps until done and returns the marker, or NotFound.
func (s *Scanner) Run() int {
	for s.Step() {
	}
	return s.found
}

// Done reports whether scanning has finished.
func (s *Scanner) Done() bool {
	return s.found != NotFound || s.window.Pushed() >= len(s.symbols)
}

// Found returns the marker position and whether one has been found.
func (s *Scanner) Found() (int, bool) {
	return s.found, s.found != NotFound
}

// Position returns the number of characters consumed.
func (s *Scanner) Position() int {
	return s.window.Pushed()
}

// Len returns the datastream length in characters.
func (s *Scanner) Len() int {
	return len(s.symbols)
}

// Text returns the datastream being scanned.
func (s *Scanner) Text() string {
	return string(s.symbols)
}

// WindowSize returns the marker window size.
func (s *Scanner) WindowSize() int {
	return s.window.Cap()
}

// Window returns the characters currently in the window, oldest first.
func (s *Scanner) Window() []rune {
	return s.window.Contents()
}

// Distinct returns the number of different characters in the window.
func (s *Scanner) Distinct() int {
	return s.window.Distinct()
}

// Count returns how often r occurs in the window.
func (s *Scanner) Count(r rune) int {
	return s.window.Count(r)
}

// Last returns the most recently consumed character and the one it evicted, if any.
func (s *Scanner) Last() (pushed, evicted rune, didEvict bool) {
	return s.last, s.evicted, s.didEvict
}

// Reset rewinds the scanner to the start of the datastream.
func (s *Scanner) Reset() {
	s.window.Reset()
	s.last, s.evicted, s.didEvict = 0, 0, false
	s.found = NotFound
}
