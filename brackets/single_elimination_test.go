package brackets

import (
	"testing"

	"github.com/Dosada05/debate-arena/models"
)

func TestSingleEliminationPowerOfTwo(t *testing.T) {
	b := Build(models.BracketSingleElimination, []string{"A", "B", "C", "D"})

	if len(b.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(b.Rounds))
	}
	if b.Rounds[0].Name != "Semi-Final" {
		t.Errorf("round 1 name = %q, want Semi-Final", b.Rounds[0].Name)
	}
	if b.Rounds[1].Name != "Final" {
		t.Errorf("round 2 name = %q, want Final", b.Rounds[1].Name)
	}
	if len(b.Rounds[0].Matches) != 2 || len(b.Rounds[1].Matches) != 1 {
		t.Fatalf("unexpected match counts: %d, %d", len(b.Rounds[0].Matches), len(b.Rounds[1].Matches))
	}

	m1 := b.Rounds[0].Matches[0]
	if m1.Participant1 != "A" || m1.Participant2 != "B" {
		t.Errorf("match 1 pairing = %s vs %s, want A vs B", m1.Participant1, m1.Participant2)
	}
	if m1.Status != models.MatchPending {
		t.Errorf("match 1 status = %s, want pending", m1.Status)
	}
	if b.Rounds[1].Matches[0].Status != models.MatchWaiting {
		t.Errorf("final status = %s, want waiting", b.Rounds[1].Matches[0].Status)
	}
	if got := CountableMatches(b); got != 3 {
		t.Errorf("CountableMatches = %d, want 3", got)
	}
}

func TestSingleEliminationByesCascade(t *testing.T) {
	b := Build(models.BracketSingleElimination, []string{"A", "B", "C", "D", "E"})

	if len(b.Rounds) != 3 {
		t.Fatalf("expected 3 rounds for 5 participants, got %d", len(b.Rounds))
	}
	if len(b.Rounds[0].Matches) != 4 {
		t.Fatalf("expected 4 first-round matches, got %d", len(b.Rounds[0].Matches))
	}

	// E drew a bye, and the BYE-vs-BYE pairing propagates the sentinel.
	m3 := b.Rounds[0].Matches[2]
	if m3.Status != models.MatchCompleted || m3.Winner != "E" {
		t.Errorf("bye match: status=%s winner=%q, want completed/E", m3.Status, m3.Winner)
	}
	m4 := b.Rounds[0].Matches[3]
	if m4.Status != models.MatchCompleted || m4.Winner != models.Bye {
		t.Errorf("BYE-vs-BYE match: status=%s winner=%q, want completed/BYE", m4.Status, m4.Winner)
	}

	// The cascade carries E through the semi-final into the final slot.
	semi2 := b.Rounds[1].Matches[1]
	if semi2.Status != models.MatchCompleted || semi2.Winner != "E" {
		t.Errorf("cascaded semi: status=%s winner=%q, want completed/E", semi2.Status, semi2.Winner)
	}
	final := b.Rounds[2].Matches[0]
	if final.Participant2 != "E" {
		t.Errorf("final slot 2 = %q, want E", final.Participant2)
	}
	if final.Participant1 != "" {
		t.Errorf("final slot 1 = %q, want placeholder", final.Participant1)
	}

	// Bye matches are excluded from the countable total.
	if got := CountableMatches(b); got != 4 {
		t.Errorf("CountableMatches = %d, want 4", got)
	}
}

func TestSingleEliminationTooFewParticipants(t *testing.T) {
	for _, participants := range [][]string{nil, {"Solo"}} {
		b := Build(models.BracketSingleElimination, participants)
		if len(b.Rounds) != 0 {
			t.Errorf("participants=%v: expected empty bracket, got %d rounds", participants, len(b.Rounds))
		}
	}
}

func TestDoubleEliminationKeepsKindTag(t *testing.T) {
	b := Build(models.BracketDoubleElimination, []string{"A", "B"})
	if b.Kind != models.BracketDoubleElimination {
		t.Errorf("kind = %s, want double_elimination", b.Kind)
	}
	if len(b.Rounds) != 1 || b.Rounds[0].Name != "Final" {
		t.Errorf("expected single Final round, got %+v", b.Rounds)
	}
}
