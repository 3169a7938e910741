package models

import "time"

// TournamentStatus transitions are one-directional:
// registration -> active -> completed.
type TournamentStatus string

const (
	TournamentRegistration TournamentStatus = "registration"
	TournamentActive       TournamentStatus = "active"
	TournamentCompleted    TournamentStatus = "completed"
)

type Tournament struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Format           string           `json:"format"`
	BracketKind      BracketKind      `json:"tournament_type"`
	Description      string           `json:"description,omitempty"`
	SkillLevel       string           `json:"skill_level,omitempty"`
	MaxParticipants  int              `json:"max_participants"`
	PrizePool        int              `json:"prize_pool"`
	Status           TournamentStatus `json:"status"`
	Participants     []*Participant   `json:"participants"`
	Bracket          *Bracket         `json:"bracket,omitempty"`
	CurrentRound     int              `json:"current_round"`
	CompletedMatches int              `json:"completed_matches"`
	TotalMatches     int              `json:"total_matches"`
	Winner           string           `json:"winner,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// FindParticipant returns the participant with the given name, matched
// case-insensitively. Nil if absent.
func (t *Tournament) FindParticipant(name string) *Participant {
	for _, p := range t.Participants {
		if equalFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Judgment is one entry of the recent-judgments feed.
type Judgment struct {
	ID             string    `json:"id"`
	TournamentID   string    `json:"tournament_id"`
	TournamentName string    `json:"tournament_name"`
	MatchID        string    `json:"match_id"`
	JudgeName      string    `json:"judge_name"`
	Participant1   string    `json:"participant1"`
	Participant2   string    `json:"participant2"`
	Winner         string    `json:"winner"`
	Score          string    `json:"score"`
	Timestamp      time.Time `json:"timestamp"`
}

// TournamentStats is the platform-wide rollup shown on the tournament page.
type TournamentStats struct {
	ActiveTournaments int `json:"active_tournaments"`
	TotalParticipants int `json:"total_participants"`
	CompletedMatches  int `json:"completed_matches"`
	TotalPrizes       int `json:"total_prizes"`
}
