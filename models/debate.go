package models

import "time"

type DebateStatus string

const (
	DebateInProgress DebateStatus = "in_progress"
	DebateCompleted  DebateStatus = "completed"
)

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerAI   Speaker = "ai"
)

type SpeechType string

const (
	SpeechConstructive SpeechType = "constructive"
	SpeechRebuttal     SpeechType = "rebuttal"
	SpeechReply        SpeechType = "reply"
)

// DebateSession is the state of one human-vs-AI debate. Round counts the
// speeches appended so far; it never exceeds len(SpeechOrder), and Status
// flips to completed exactly when it reaches that length.
type DebateSession struct {
	ID             string         `json:"id"`
	Motion         string         `json:"motion"`
	Format         string         `json:"format"`
	Difficulty     string         `json:"difficulty"`
	UserPosition   string         `json:"user_position"`
	AIPosition     string         `json:"ai_position"`
	CurrentSpeaker Speaker        `json:"current_speaker"`
	Round          int            `json:"round"`
	Speeches       []Speech       `json:"speeches"`
	POIs           []POIRecord    `json:"pois"`
	Status         DebateStatus   `json:"status"`
	SpeechOrder    []string       `json:"speech_order"`
	TimeLimits     map[string]int `json:"time_limits"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        time.Time      `json:"end_time,omitempty"`
}

// Speech entries are append-only.
type Speech struct {
	Speaker   Speaker    `json:"speaker"`
	Type      SpeechType `json:"type"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
}

type POIDecision string

const (
	POIAccept  POIDecision = "ACCEPT"
	POIDecline POIDecision = "DECLINE"
)

// POIRecord is independent of the speech turn counter.
type POIRecord struct {
	UserPOI    string      `json:"user_poi"`
	AIDecision POIDecision `json:"ai_decision"`
	AIResponse string      `json:"ai_response"`
	Timestamp  time.Time   `json:"timestamp"`
}

// UserSpeeches returns the human speeches in submission order.
func (s *DebateSession) UserSpeeches() []Speech {
	var out []Speech
	for _, sp := range s.Speeches {
		if sp.Speaker == SpeakerUser {
			out = append(out, sp)
		}
	}
	return out
}

// LastAISpeech returns the most recent AI speech content, or "".
func (s *DebateSession) LastAISpeech() string {
	for i := len(s.Speeches) - 1; i >= 0; i-- {
		if s.Speeches[i].Speaker == SpeakerAI {
			return s.Speeches[i].Content
		}
	}
	return ""
}

// FinalVerdict is the aggregate returned when a session ends.
type FinalVerdict struct {
	OverallScore     float64 `json:"overall_score"`
	DetailedFeedback string  `json:"detailed_feedback"`
	Points           int     `json:"points"`
	SpeechCount      int     `json:"speech_count"`
	POICount         int     `json:"poi_count"`
	DurationMinutes  int     `json:"duration_minutes"`
	NothingToScore   bool    `json:"nothing_to_score,omitempty"`
}
