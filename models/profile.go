package models

import "time"

// UserProfile is owned by the calling session. The achievement engine
// reads it but never mutates it; appending unlocked achievements and
// their points is the caller's job.
type UserProfile struct {
	UserID           string          `json:"user_id"`
	Level            string          `json:"level"`
	Points           int             `json:"points"`
	Achievements     []Achievement   `json:"achievements"`
	CompletedLessons []string        `json:"completed_lessons"`
	DebateHistory    []DebateSummary `json:"debate_history"`
	TournamentName   string          `json:"tournament_name,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DebateSummary is what the caller persists once a session ends; the
// registry itself drops completed sessions.
type DebateSummary struct {
	DebateID     string       `json:"debate_id"`
	Motion       string       `json:"motion"`
	Format       string       `json:"format"`
	UserPosition string       `json:"user_position"`
	Result       FinalVerdict `json:"result"`
	POICount     int          `json:"poi_count"`
	CompletedAt  time.Time    `json:"completed_at"`
}

// HasAchievement reports whether the profile already holds id.
func (p *UserProfile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Analytics is the derived progress view for the analytics page.
type Analytics struct {
	TotalDebates      int           `json:"total_debates"`
	TotalPoints       int           `json:"total_points"`
	CompletedLessons  int           `json:"completed_lessons"`
	CurrentLevel      string        `json:"current_level"`
	AchievementsCount int           `json:"achievements_count"`
	AverageScore      float64       `json:"average_score"`
	LevelProgress     LevelProgress `json:"level_progress"`
}

type LevelProgress struct {
	CurrentLevel       string  `json:"current_level"`
	PointsInLevel      int     `json:"points_in_level"`
	PointsToNext       int     `json:"points_to_next"`
	ProgressPercentage float64 `json:"progress_percentage"`
}
