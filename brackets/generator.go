// Package brackets builds and advances tournament brackets. Generators
// are pure: they turn an ordered participant list into a Bracket and
// never touch shared state. Progression over a live tournament lives in
// progress.go.
package brackets

import (
	"errors"

	"github.com/Dosada05/debate-arena/models"
)

var (
	ErrMatchNotFound        = errors.New("match not found in bracket")
	ErrMatchNotReady        = errors.New("match is still waiting for participants")
	ErrMatchAlreadyComplete = errors.New("match result already recorded")
	ErrUnknownWinner        = errors.New("winner is not a participant of this match")
	ErrNoBracket            = errors.New("tournament has no bracket")
)

type Generator interface {
	Kind() models.BracketKind
	Generate(participants []string) *models.Bracket
}

// Build constructs a bracket of the requested kind. Double elimination
// degenerates to single elimination; the kind tag on the result records
// what the caller asked for. Fewer than two participants yields an empty
// bracket that callers must treat as "not ready".
func Build(kind models.BracketKind, participants []string) *models.Bracket {
	var g Generator
	switch kind {
	case models.BracketRoundRobin:
		g = NewRoundRobinGenerator()
	case models.BracketDoubleElimination:
		g = NewSingleEliminationGenerator(models.BracketDoubleElimination)
	default:
		g = NewSingleEliminationGenerator(models.BracketSingleElimination)
	}
	return g.Generate(participants)
}

// CountableMatches returns the number of real contests in the bracket,
// excluding matches decided by byes. Bye matches occupy scheduling slots
// but never count toward played-match totals.
func CountableMatches(b *models.Bracket) int {
	if b == nil {
		return 0
	}
	n := 0
	for _, r := range b.Rounds {
		for _, m := range r.Matches {
			if !m.IsBye() {
				n++
			}
		}
	}
	return n
}
