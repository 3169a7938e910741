package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/debate-arena/models"
)

// MatchResult carries everything needed to settle one match.
// Scores are keyed by participant name.
type MatchResult struct {
	MatchID       string
	Winner        string
	Scores        map[string]int
	Motion        string
	JudgeFeedback string

	// Override permits overwriting an already-completed match. The
	// previous result's contribution to participant stats is rewound
	// first, and the overwrite is refused once a dependent match in the
	// next round has itself completed.
	Override bool
}

// ErrResultLocked is returned when an override would invalidate a
// next-round match that already has a recorded result.
var ErrResultLocked = fmt.Errorf("%w: a dependent match has already completed", ErrMatchAlreadyComplete)

// RecordMatchResult settles a match, updates both participants' records,
// and advances the bracket: when every match of a round is completed the
// winners are placed into the next round's slots, and completing the
// final match completes the tournament. The tournament is either fully
// updated or left untouched; no partial mutation on error.
func RecordMatchResult(t *models.Tournament, res MatchResult) error {
	if t.Bracket == nil || len(t.Bracket.Rounds) == 0 {
		return ErrNoBracket
	}

	match, round := t.Bracket.FindMatch(res.MatchID)
	if match == nil {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, res.MatchID)
	}
	if match.Participant1 == "" || match.Participant2 == "" {
		return fmt.Errorf("%w: %s", ErrMatchNotReady, res.MatchID)
	}
	if !match.HasParticipant(res.Winner) {
		return fmt.Errorf("%w: %q", ErrUnknownWinner, res.Winner)
	}

	wasCompleted := match.Status == models.MatchCompleted
	if wasCompleted {
		if match.IsBye() || !res.Override {
			return fmt.Errorf("%w: %s", ErrMatchAlreadyComplete, res.MatchID)
		}
		if dependentCompleted(t.Bracket, round, match) {
			return ErrResultLocked
		}
		rewindResult(t, match)
	}

	winner := canonicalWinner(match, res.Winner)
	match.Winner = winner
	match.Status = models.MatchCompleted
	match.Scores = res.Scores
	if res.Motion != "" {
		match.Motion = res.Motion
	}
	if res.JudgeFeedback != "" {
		match.JudgeFeedback = res.JudgeFeedback
	}

	if !wasCompleted {
		t.CompletedMatches++
	}
	applyResult(t, match)

	advance(t, roundIndex(t.Bracket, round))
	return nil
}

// applyResult credits the completed match to both participants.
func applyResult(t *models.Tournament, m *models.Match) {
	for _, name := range []string{m.Participant1, m.Participant2} {
		p := t.FindParticipant(name)
		if p == nil {
			continue
		}
		p.MatchesPlayed++
		p.TotalPoints += scoreFor(m.Scores, name)
		if strings.EqualFold(m.Winner, name) {
			p.MatchesWon++
		}
	}
}

// rewindResult removes a previously recorded result's contribution so an
// override does not double-count. The match stays completed throughout,
// so CompletedMatches is untouched.
func rewindResult(t *models.Tournament, m *models.Match) {
	for _, name := range []string{m.Participant1, m.Participant2} {
		p := t.FindParticipant(name)
		if p == nil {
			continue
		}
		p.MatchesPlayed--
		p.TotalPoints -= scoreFor(m.Scores, name)
		if strings.EqualFold(m.Winner, name) {
			p.MatchesWon--
		}
	}
}

func scoreFor(scores map[string]int, name string) int {
	for k, v := range scores {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return 0
}

// canonicalWinner normalizes the submitted winner to the exact slot
// spelling so downstream name comparisons stay consistent.
func canonicalWinner(m *models.Match, winner string) string {
	if strings.EqualFold(m.Participant1, winner) {
		return m.Participant1
	}
	return m.Participant2
}

func roundIndex(b *models.Bracket, round *models.Round) int {
	for i, r := range b.Rounds {
		if r == round {
			return i
		}
	}
	return 0
}

// dependentCompleted reports whether the next-round match fed by m has
// already recorded a result.
func dependentCompleted(b *models.Bracket, round *models.Round, m *models.Match) bool {
	idx := roundIndex(b, round)
	if idx+1 >= len(b.Rounds) {
		return false
	}
	for i, src := range round.Matches {
		if src == m {
			next := b.Rounds[idx+1].Matches[i/2]
			return next.Status == models.MatchCompleted && !next.IsBye()
		}
	}
	return false
}

// advance walks forward from roundIdx, completing rounds whose matches
// have all settled and seeding the following round. Byes introduced by
// propagated sentinels resolve in cascade, so a round that settles
// entirely by byes advances without caller involvement.
func advance(t *models.Tournament, roundIdx int) {
	b := t.Bracket
	for idx := roundIdx; idx < len(b.Rounds); idx++ {
		round := b.Rounds[idx]
		if !allCompleted(round) {
			return
		}
		round.Status = models.RoundCompleted

		if idx == len(b.Rounds)-1 {
			finishTournament(t, round)
			return
		}

		next := b.Rounds[idx+1]
		for i, m := range round.Matches {
			placeWinner(next, i, m.Winner)
		}
		refreshSlots(next)
		settleByes(b, idx+1)
		if next.Status != models.RoundCompleted {
			next.Status = nextRoundStatus(next)
		}
		t.CurrentRound = next.RoundNumber
	}
}

// nextRoundStatus: a round with any unresolved slot remains waiting.
func nextRoundStatus(round *models.Round) models.RoundStatus {
	for _, m := range round.Matches {
		if m.Status == models.MatchWaiting {
			return models.RoundWaiting
		}
	}
	return models.RoundPending
}

func finishTournament(t *models.Tournament, finalRound *models.Round) {
	t.Status = models.TournamentCompleted

	if t.Bracket.Kind == models.BracketRoundRobin {
		t.Winner = roundRobinWinner(t)
		return
	}
	if len(finalRound.Matches) > 0 {
		t.Winner = finalRound.Matches[len(finalRound.Matches)-1].Winner
	}
}

// roundRobinWinner ranks by wins, then total points; ties keep join order.
func roundRobinWinner(t *models.Tournament) string {
	var best *models.Participant
	for _, p := range t.Participants {
		if best == nil ||
			p.MatchesWon > best.MatchesWon ||
			(p.MatchesWon == best.MatchesWon && p.TotalPoints > best.TotalPoints) {
			best = p
		}
	}
	if best == nil {
		return ""
	}
	return best.Name
}
