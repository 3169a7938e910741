package brackets

import (
	"fmt"

	"github.com/Dosada05/debate-arena/models"
)

type SingleEliminationGenerator struct {
	kind models.BracketKind
}

// NewSingleEliminationGenerator builds single-elimination brackets.
// kind is recorded on the result so a double-elimination request keeps
// its tag even though the structure is identical.
func NewSingleEliminationGenerator(kind models.BracketKind) *SingleEliminationGenerator {
	return &SingleEliminationGenerator{kind: kind}
}

func (g *SingleEliminationGenerator) Kind() models.BracketKind {
	return g.kind
}

// Generate pads the participant list with BYE sentinels up to the next
// power of two, pairs sequentially, and stubs every later round with
// placeholder slots. Bye matches are created already completed and their
// winners are pushed forward immediately, cascading through rounds that
// resolve entirely by byes.
func (g *SingleEliminationGenerator) Generate(participants []string) *models.Bracket {
	bracket := &models.Bracket{Kind: g.kind, Rounds: []*models.Round{}}

	n := len(participants)
	if n < 2 {
		return bracket
	}

	size := 1
	numRounds := 0
	for size < n {
		size <<= 1
		numRounds++
	}

	padded := make([]string, 0, size)
	padded = append(padded, participants...)
	for len(padded) < size {
		padded = append(padded, models.Bye)
	}

	for r := 1; r <= numRounds; r++ {
		remaining := size >> (r - 1)
		matches := make([]*models.Match, remaining/2)
		for i := range matches {
			matches[i] = &models.Match{
				ID:     fmt.Sprintf("r%d_m%d", r, i+1),
				Status: models.MatchWaiting,
			}
		}
		status := models.RoundWaiting
		if r == 1 {
			status = models.RoundPending
		}
		bracket.Rounds = append(bracket.Rounds, &models.Round{
			RoundNumber: r,
			Name:        roundName(remaining, r),
			Matches:     matches,
			Status:      status,
		})
	}

	for i, m := range bracket.Rounds[0].Matches {
		m.Participant1 = padded[2*i]
		m.Participant2 = padded[2*i+1]
		m.Status = models.MatchPending
	}

	settleByes(bracket, 0)
	return bracket
}

// roundName derives the display name from the participant count remaining
// when the round was created.
func roundName(remaining, roundNumber int) string {
	switch remaining {
	case 2:
		return "Final"
	case 4:
		return "Semi-Final"
	default:
		return fmt.Sprintf("Round %d", roundNumber)
	}
}

// settleByes completes every bye match in round idx, advances known
// winners into the following round's slots, and recurses while byes keep
// resolving. A BYE-vs-BYE pairing completes with the sentinel itself as
// winner so the hole keeps propagating until it meets a real participant.
func settleByes(b *models.Bracket, idx int) {
	if idx >= len(b.Rounds) {
		return
	}
	round := b.Rounds[idx]

	for _, m := range round.Matches {
		if m.Status == models.MatchCompleted || m.Participant1 == "" || m.Participant2 == "" {
			continue
		}
		if m.IsBye() {
			m.Winner = byeWinner(m)
			m.Status = models.MatchCompleted
		}
	}

	if idx+1 < len(b.Rounds) {
		next := b.Rounds[idx+1]
		for i, m := range round.Matches {
			if m.Status != models.MatchCompleted {
				continue
			}
			placeWinner(next, i, m.Winner)
		}
		refreshSlots(next)
		settleByes(b, idx+1)
	}

	if allCompleted(round) {
		round.Status = models.RoundCompleted
	}
}

func byeWinner(m *models.Match) string {
	if m.Participant1 != models.Bye {
		return m.Participant1
	}
	if m.Participant2 != models.Bye {
		return m.Participant2
	}
	return models.Bye
}

// placeWinner puts the winner of source match i into its slot in the
// next round: match i/2, slot 1 for even i, slot 2 for odd.
func placeWinner(next *models.Round, sourceIndex int, winner string) {
	target := next.Matches[sourceIndex/2]
	if sourceIndex%2 == 0 {
		target.Participant1 = winner
	} else {
		target.Participant2 = winner
	}
}

// refreshSlots promotes waiting matches to pending once both slots are
// occupied by real participants.
func refreshSlots(round *models.Round) {
	for _, m := range round.Matches {
		if m.Status != models.MatchWaiting {
			continue
		}
		if m.Participant1 != "" && m.Participant2 != "" && !m.IsBye() {
			m.Status = models.MatchPending
		}
	}
}

func allCompleted(round *models.Round) bool {
	for _, m := range round.Matches {
		if m.Status != models.MatchCompleted {
			return false
		}
	}
	return true
}
