// Package marker finds start-of-packet and start-of-message markers in a
// communication device datastream.
//
// A marker ends at the first position where the last N characters received
// are all different. Detection runs in a single pass using a sliding window
// that keeps a running count of distinct characters.
package marker

import (
	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/aoc2022/internal/window"
)

// Marker window sizes used by the device protocol.
const (
	StartOfPacket  = 4
	StartOfMessage = 14
)

// NotFound is returned by Detect when the datastream ends before any window
// of the requested size is fully distinct.
const NotFound = 0

// Detect returns the number of characters consumed when the most recent
// windowSize characters are first pairwise distinct, or NotFound.
func Detect(datastream string, windowSize int) (int, error) {
	return DetectSymbols([]rune(datastream), windowSize)
}

// DetectSymbols is Detect over an arbitrary symbol sequence.
func DetectSymbols[T comparable](symbols []T, windowSize int) (int, error) {
	if windowSize < 1 {
		return NotFound, ErrInvalidWindowSize
	}

	w, err := window.New[T](windowSize)
	if err != nil {
		return NotFound, err
	}

	for idx, sym := range symbols {
		w.Push(sym)
		if w.Distinct() == windowSize {
			log.Debug().Int("window", windowSize).Int("marker", idx+1).Msg("marker found")
			return idx + 1, nil
		}
	}

	log.Debug().Int("window", windowSize).Int("length", len(symbols)).Msg("no marker in datastream")
	return NotFound, nil
}

// Answers holds the two puzzle results for a datastream.
type Answers struct {
	StartOfPacket  int `json:"start_of_packet" yaml:"start_of_packet"`
	StartOfMessage int `json:"start_of_message" yaml:"start_of_message"`
}

// Solve detects both the start-of-packet and start-of-message markers. A
// datastream too short to hold a marker, including an empty one, yields
// NotFound for that marker.
func Solve(datastream string) (Answers, error) {
	symbols := []rune(datastream)
	packet, err := DetectSymbols(symbols, StartOfPacket)
	if err != nil {
		return Answers{}, err
	}
	message, err := DetectSymbols(symbols, StartOfMessage)
	if err != nil {
		return Answers{}, err
	}

	return Answers{StartOfPacket: packet, StartOfMessage: message}, nil
}
