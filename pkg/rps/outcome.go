package rps

import "fmt"

// Outcome is the result of a round.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Points returns 0 for a loss, 3 for a draw and 6 for a win.
func (o Outcome) Points() int {
	return int(o) * 3
}

// Valid reports whether o is one of the three outcomes.
func (o Outcome) Valid() bool {
	return o >= Loss && o <= Win
}

// desiredOutcomes maps the second strategy column, read as an outcome.
var desiredOutcomes = map[byte]Outcome{
	'X': Loss,
	'Y': Draw,
	'Z': Win,
}

// ParseOutcome parses X, Y or Z as an outcome.
func ParseOutcome(s string) (Outcome, error) {
	return lookup(desiredOutcomes, s)
}

// responses[opponent][outcome] is the move that produces outcome against opponent.
var responses = [3][3]Move{
	Rock:     {Loss: Scissors, Draw: Rock, Win: Paper},
	Paper:    {Loss: Rock, Draw: Paper, Win: Scissors},
	Scissors: {Loss: Paper, Draw: Scissors, Win: Rock},
}

// MoveFor returns the move to play against opponent to reach desired.
func MoveFor(opponent Move, desired Outcome) (Move, error) {
	if !opponent.Valid() {
		return 0, fmt.Errorf("%w: opponent %s", ErrOutOfDomain, opponent)
	}
	if !desired.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrOutOfDomain, desired)
	}
	return responses[opponent][desired], nil
}
