package brackets

import (
	"errors"
	"testing"

	"github.com/Dosada05/debate-arena/models"
)

func newTestTournament(kind models.BracketKind, names []string) *models.Tournament {
	t := &models.Tournament{
		ID:          "T1",
		Name:        "Test Cup",
		BracketKind: kind,
		Status:      models.TournamentActive,
	}
	for _, n := range names {
		t.Participants = append(t.Participants, &models.Participant{Name: n})
	}
	t.Bracket = Build(kind, names)
	t.TotalMatches = CountableMatches(t.Bracket)
	t.CurrentRound = 1
	return t
}

func TestRecordMatchResultAdvancesBracket(t *testing.T) {
	tournament := newTestTournament(models.BracketSingleElimination, []string{"A", "B", "C", "D"})

	err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m1",
		Winner:  "A",
		Scores:  map[string]int{"A": 78, "B": 70},
	})
	if err != nil {
		t.Fatalf("first result: %v", err)
	}

	a := tournament.FindParticipant("A")
	if a.MatchesPlayed != 1 || a.MatchesWon != 1 || a.TotalPoints != 78 {
		t.Errorf("A stats = played %d won %d points %d", a.MatchesPlayed, a.MatchesWon, a.TotalPoints)
	}
	b := tournament.FindParticipant("B")
	if b.MatchesPlayed != 1 || b.MatchesWon != 0 || b.TotalPoints != 70 {
		t.Errorf("B stats = played %d won %d points %d", b.MatchesPlayed, b.MatchesWon, b.TotalPoints)
	}

	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m2",
		Winner:  "C",
		Scores:  map[string]int{"C": 81, "D": 74},
	}); err != nil {
		t.Fatalf("second result: %v", err)
	}

	final := tournament.Bracket.Rounds[1].Matches[0]
	if final.Participant1 != "A" || final.Participant2 != "C" {
		t.Fatalf("final pairing = %s vs %s, want A vs C", final.Participant1, final.Participant2)
	}
	if final.Status != models.MatchPending {
		t.Errorf("final status = %s, want pending", final.Status)
	}
	if tournament.CurrentRound != 2 {
		t.Errorf("current round = %d, want 2", tournament.CurrentRound)
	}

	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: final.ID,
		Winner:  "C",
		Scores:  map[string]int{"A": 72, "C": 84},
	}); err != nil {
		t.Fatalf("final result: %v", err)
	}

	if tournament.Status != models.TournamentCompleted {
		t.Errorf("status = %s, want completed", tournament.Status)
	}
	if tournament.Winner != "C" {
		t.Errorf("winner = %q, want C", tournament.Winner)
	}
	if tournament.CompletedMatches != 3 {
		t.Errorf("completed matches = %d, want 3", tournament.CompletedMatches)
	}
}

func TestRecordMatchResultValidation(t *testing.T) {
	tournament := newTestTournament(models.BracketSingleElimination, []string{"A", "B", "C", "D"})

	if err := RecordMatchResult(tournament, MatchResult{MatchID: "nope", Winner: "A"}); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("unknown match: got %v", err)
	}
	// The final has only placeholders until round 1 settles.
	if err := RecordMatchResult(tournament, MatchResult{MatchID: "r2_m1", Winner: "A"}); !errors.Is(err, ErrMatchNotReady) {
		t.Errorf("unready match: got %v", err)
	}
	if err := RecordMatchResult(tournament, MatchResult{MatchID: "r1_m1", Winner: "Z"}); !errors.Is(err, ErrUnknownWinner) {
		t.Errorf("unknown winner: got %v", err)
	}

	if err := RecordMatchResult(tournament, MatchResult{MatchID: "r1_m1", Winner: "A"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := RecordMatchResult(tournament, MatchResult{MatchID: "r1_m1", Winner: "B"}); !errors.Is(err, ErrMatchAlreadyComplete) {
		t.Errorf("resubmission without override: got %v", err)
	}
	// Winner casing is normalized to the slot spelling.
	m, _ := tournament.Bracket.FindMatch("r1_m1")
	if m.Winner != "A" {
		t.Errorf("winner = %q, want A", m.Winner)
	}
}

func TestOverrideRewindsStats(t *testing.T) {
	tournament := newTestTournament(models.BracketSingleElimination, []string{"A", "B", "C", "D"})

	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m1", Winner: "A", Scores: map[string]int{"A": 78, "B": 70},
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m2", Winner: "C", Scores: map[string]int{"C": 81, "D": 74},
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m1", Winner: "B", Scores: map[string]int{"A": 70, "B": 79}, Override: true,
	}); err != nil {
		t.Fatalf("override: %v", err)
	}

	a := tournament.FindParticipant("A")
	if a.MatchesPlayed != 1 || a.MatchesWon != 0 || a.TotalPoints != 70 {
		t.Errorf("A after override = played %d won %d points %d", a.MatchesPlayed, a.MatchesWon, a.TotalPoints)
	}
	b := tournament.FindParticipant("B")
	if b.MatchesPlayed != 1 || b.MatchesWon != 1 || b.TotalPoints != 79 {
		t.Errorf("B after override = played %d won %d points %d", b.MatchesPlayed, b.MatchesWon, b.TotalPoints)
	}
	// An override replaces a result rather than adding one.
	if tournament.CompletedMatches != 2 {
		t.Errorf("completed matches = %d, want 2", tournament.CompletedMatches)
	}

	// Round 1 is fully settled, so the new winner replaces the old one in
	// the final's slot.
	final := tournament.Bracket.Rounds[1].Matches[0]
	if final.Participant1 != "B" || final.Participant2 != "C" {
		t.Errorf("final pairing = %s vs %s, want B vs C", final.Participant1, final.Participant2)
	}
	if final.Status != models.MatchPending {
		t.Errorf("final status = %s, want pending", final.Status)
	}
}

func TestOverrideBeforeRoundSettlesKeepsPlaceholder(t *testing.T) {
	tournament := newTestTournament(models.BracketSingleElimination, []string{"A", "B", "C", "D"})

	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m1", Winner: "A", Scores: map[string]int{"A": 78, "B": 70},
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := RecordMatchResult(tournament, MatchResult{
		MatchID: "r1_m1", Winner: "B", Scores: map[string]int{"A": 70, "B": 79}, Override: true,
	}); err != nil {
		t.Fatalf("override: %v", err)
	}

	if tournament.CompletedMatches != 1 {
		t.Errorf("completed matches = %d, want 1", tournament.CompletedMatches)
	}
	// r1_m2 is still open, so no winner has been placed yet.
	final := tournament.Bracket.Rounds[1].Matches[0]
	if final.Status != models.MatchWaiting {
		t.Errorf("final status = %s, want waiting", final.Status)
	}
}

func TestOverrideRefusedOnceDependentCompleted(t *testing.T) {
	tournament := newTestTournament(models.BracketSingleElimination, []string{"A", "B", "C", "D"})

	for _, res := range []MatchResult{
		{MatchID: "r1_m1", Winner: "A"},
		{MatchID: "r1_m2", Winner: "C"},
		{MatchID: "r2_m1", Winner: "A"},
	} {
		if err := RecordMatchResult(tournament, res); err != nil {
			t.Fatalf("record %s: %v", res.MatchID, err)
		}
	}

	err := RecordMatchResult(tournament, MatchResult{MatchID: "r1_m1", Winner: "B", Override: true})
	if !errors.Is(err, ErrResultLocked) {
		t.Errorf("locked override: got %v", err)
	}
}

func TestByeMatchesCannotBeOverridden(t *testing.T) {
	tournament := newTestTournament(models.BracketSingleElimination, []string{"A", "B", "C", "D", "E"})

	// r1_m3 is E vs BYE, completed at creation.
	err := RecordMatchResult(tournament, MatchResult{MatchID: "r1_m3", Winner: "E", Override: true})
	if !errors.Is(err, ErrMatchAlreadyComplete) {
		t.Errorf("bye override: got %v", err)
	}
}

func TestRoundRobinWinnerByWinsThenPoints(t *testing.T) {
	tournament := newTestTournament(models.BracketRoundRobin, []string{"A", "B", "C"})

	// Every participant ends on one win; points break the tie.
	for _, res := range []MatchResult{
		{MatchID: "rr_m1", Winner: "A", Scores: map[string]int{"A": 80, "B": 70}},
		{MatchID: "rr_m2", Winner: "C", Scores: map[string]int{"A": 75, "C": 85}},
		{MatchID: "rr_m3", Winner: "B", Scores: map[string]int{"B": 90, "C": 60}},
	} {
		if err := RecordMatchResult(tournament, res); err != nil {
			t.Fatalf("record %s: %v", res.MatchID, err)
		}
	}

	if tournament.Status != models.TournamentCompleted {
		t.Fatalf("status = %s, want completed", tournament.Status)
	}
	// A 155, B 160, C 145 points, all on one win.
	if tournament.Winner != "B" {
		t.Errorf("winner = %q, want B", tournament.Winner)
	}
}
