package brackets

import (
	"testing"

	"github.com/Dosada05/debate-arena/models"
)

func TestRoundRobinAllPairs(t *testing.T) {
	b := Build(models.BracketRoundRobin, []string{"A", "B", "C", "D"})

	if len(b.Rounds) != 1 {
		t.Fatalf("expected a single round, got %d", len(b.Rounds))
	}
	round := b.Rounds[0]
	if round.Name != "Round Robin" {
		t.Errorf("round name = %q", round.Name)
	}
	if len(round.Matches) != 6 {
		t.Fatalf("expected 6 matches for 4 participants, got %d", len(round.Matches))
	}

	seen := make(map[string]bool)
	for _, m := range round.Matches {
		if m.Status != models.MatchPending {
			t.Errorf("match %s status = %s, want pending", m.ID, m.Status)
		}
		key := m.Participant1 + "|" + m.Participant2
		if seen[key] {
			t.Errorf("duplicate pairing %s", key)
		}
		seen[key] = true
	}
	if got := CountableMatches(b); got != 6 {
		t.Errorf("CountableMatches = %d, want 6", got)
	}
}
