package brackets

import (
	"fmt"

	"github.com/Dosada05/debate-arena/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() *RoundRobinGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Kind() models.BracketKind {
	return models.BracketRoundRobin
}

// Generate pairs every participant against every other exactly once.
// All n*(n-1)/2 matches live in a single round named "Round Robin";
// there is no elimination and no byes.
func (g *RoundRobinGenerator) Generate(participants []string) *models.Bracket {
	bracket := &models.Bracket{Kind: models.BracketRoundRobin, Rounds: []*models.Round{}}

	if len(participants) < 2 {
		return bracket
	}

	var matches []*models.Match
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			matches = append(matches, &models.Match{
				ID:           fmt.Sprintf("rr_m%d", len(matches)+1),
				Participant1: participants[i],
				Participant2: participants[j],
				Status:       models.MatchPending,
			})
		}
	}

	bracket.Rounds = append(bracket.Rounds, &models.Round{
		RoundNumber: 1,
		Name:        "Round Robin",
		Matches:     matches,
		Status:      models.RoundPending,
	})
	return bracket
}
