package rps

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// ScoreByMoves scores a round where both moves are known.
func ScoreByMoves(opponent, self Move) (int, error) {
	if !opponent.Valid() {
		return 0, fmt.Errorf("%w: opponent %s", ErrOutOfDomain, opponent)
	}
	if !self.Valid() {
		return 0, fmt.Errorf("%w: response %s", ErrOutOfDomain, self)
	}
	return Play(self, opponent).Points() + self.Points(), nil
}

// ScoreByDesiredOutcome scores a round played to reach the desired outcome.
func ScoreByDesiredOutcome(opponent Move, desired Outcome) (int, error) {
	self, err := MoveFor(opponent, desired)
	if err != nil {
		return 0, err
	}
	return ScoreByMoves(opponent, self)
}

// Round is one line of the strategy guide. The second column is decoded both
// ways because its meaning depends on which problem is being solved.
type Round struct {
	Opponent Move
	Response Move
	Desired  Outcome
}

// ScoreByMoves scores the round reading the second column as a move.
func (r Round) ScoreByMoves() (int, error) {
	return ScoreByMoves(r.Opponent, r.Response)
}

// ScoreByDesiredOutcome scores the round reading the second column as an outcome.
func (r Round) ScoreByDesiredOutcome() (int, error) {
	return ScoreByDesiredOutcome(r.Opponent, r.Desired)
}

// ParseRound parses a line such as "A Y".
func ParseRound(line string) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Round{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	opponent, err := ParseOpponent(fields[0])
	if err != nil {
		return Round{}, err
	}
	response, err := ParseResponse(fields[1])
	if err != nil {
		return Round{}, err
	}
	desired, err := ParseOutcome(fields[1])
	if err != nil {
		return Round{}, err
	}

	return Round{Opponent: opponent, Response: response, Desired: desired}, nil
}

// ParseGuide reads a strategy guide, one round per line. Blank lines are skipped.
func ParseGuide(r io.Reader) ([]Round, error) {
	var rounds []Round
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		round, err := ParseRound(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rounds = append(rounds, round)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read strategy guide: %w", err)
	}

	log.Debug().Int("rounds", len(rounds)).Msg("parsed strategy guide")
	return rounds, nil
}

// TotalByMoves sums ScoreByMoves over all rounds.
func TotalByMoves(rounds []Round) (int, error) {
	return total(rounds, Round.ScoreByMoves)
}

// TotalByDesiredOutcome sums ScoreByDesiredOutcome over all rounds.
func TotalByDesiredOutcome(rounds []Round) (int, error) {
	return total(rounds, Round.ScoreByDesiredOutcome)
}

// total sums score over rounds, failing on the first round that cannot be scored.
func total(rounds []Round, score func(Round) (int, error)) (int, error) {
	sum := 0
	for i, r := range rounds {
		s, err := score(r)
		if err != nil {
			return 0, fmt.Errorf("round %d: %w", i+1, err)
		}
		sum += s
	}
	return sum, nil
}

// Answers holds the two puzzle results for a strategy guide.
type Answers struct {
	ByMoves   int `json:"by_moves" yaml:"by_moves"`
	ByOutcome int `json:"by_outcome" yaml:"by_outcome"`
}

// Solve parses a strategy guide and scores it both ways.
func Solve(r io.Reader) (Answers, error) {
	rounds, err := ParseGuide(r)
	if err != nil {
		return Answers{}, err
	}
	byMoves, err := TotalByMoves(rounds)
	if err != nil {
		return Answers{}, err
	}
	byOutcome, err := TotalByDesiredOutcome(rounds)
	if err != nil {
		return Answers{}, err
	}
	return Answers{ByMoves: byMoves, ByOutcome: byOutcome}, nil
}
