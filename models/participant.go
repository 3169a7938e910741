package models

import "time"

// Bye is the sentinel opponent for padded single-elimination slots.
// A match against Bye is created already completed.
const Bye = "BYE"

// Participant is a tournament entrant. Records are owned by their
// containing Tournament; leaderboard views copy, never alias.
type Participant struct {
	Name          string    `json:"name"`
	SkillLevel    string    `json:"skill_level"`
	JoinedAt      time.Time `json:"joined_at"`
	MatchesPlayed int       `json:"matches_played"`
	MatchesWon    int       `json:"matches_won"`
	TotalPoints   int       `json:"total_points"`
	WinRate       float64   `json:"win_rate"`
}

// LeaderboardEntry is a Participant view enriched with cross-tournament
// aggregates. WinRate is recomputed on every aggregation, never trusted
// from the stored record.
type LeaderboardEntry struct {
	Name                    string  `json:"name"`
	SkillLevel              string  `json:"skill_level"`
	MatchesPlayed           int     `json:"matches_played"`
	MatchesWon              int     `json:"matches_won"`
	TotalPoints             int     `json:"total_points"`
	WinRate                 float64 `json:"win_rate"`
	TournamentsParticipated int     `json:"tournaments_participated"`
	TournamentsWon          int     `json:"tournaments_won"`
}
