// Package rps scores a Rock Paper Scissors tournament strategy guide.
package rps

import "fmt"

// Move is a hand shape.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// String returns the move name.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Points returns the shape score: 1 for rock, 2 for paper, 3 for scissors.
func (m Move) Points() int {
	return int(m) + 1
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// Beats reports whether a defeats b. Each move beats the one before it in
// the cycle rock, paper, scissors.
func Beats(a, b Move) bool {
	return a == (b+1)%3
}

// Play returns the outcome of self against opponent from self's point of view.
func Play(self, opponent Move) Outcome {
	switch {
	case self == opponent:
		return Draw
	case Beats(self, opponent):
		return Win
	default:
		return Loss
	}
}

// opponentMoves maps the first strategy column to a move.
var opponentMoves = map[byte]Move{
	'A': Rock,
	'B': Paper,
	'C': Scissors,
}

// responseMoves maps the second strategy column, read as a move.
var responseMoves = map[byte]Move{
	'X': Rock,
	'Y': Paper,
	'Z': Scissors,
}

// ParseOpponent parses A, B or C.
func ParseOpponent(s string) (Move, error) {
	return lookup(opponentMoves, s)
}

// ParseResponse parses X, Y or Z as a move.
func ParseResponse(s string) (Move, error) {
	return lookup(responseMoves, s)
}

func lookup[V any](table map[byte]V, s string) (V, error) {
	var zero V
	if len(s) != 1 {
		return zero, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	v, ok := table[s[0]]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	return v, nil
}
