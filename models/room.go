package models

import "time"

type RoomStatus string

const (
	RoomWaiting    RoomStatus = "waiting"
	RoomFull       RoomStatus = "full"
	RoomInProgress RoomStatus = "in_progress"
)

// Room is a multi-user practice room addressed by a 6-character code.
type Room struct {
	Code            string        `json:"code"`
	Name            string        `json:"name"`
	Format          string        `json:"format"`
	SkillLevel      string        `json:"skill_level"`
	MaxParticipants int           `json:"max_participants"`
	Creator         string        `json:"creator"`
	Participants    []RoomMember  `json:"participants"`
	Status          RoomStatus    `json:"status"`
	DebateStarted   bool          `json:"debate_started"`
	CurrentMotion   string        `json:"current_motion,omitempty"`
	ChatMessages    []ChatMessage `json:"chat_messages"`
	Timer           TimerState    `json:"timer_state"`
	CreatedAt       time.Time     `json:"created_at"`
}

type RoomMember struct {
	Name     string    `json:"name"`
	Role     string    `json:"role"` // host or participant
	JoinedAt time.Time `json:"joined_at"`
}

type ChatMessage struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type TimerState struct {
	CurrentSpeaker string `json:"current_speaker,omitempty"`
	TimeRemaining  int    `json:"time_remaining"`
	IsRunning      bool   `json:"is_running"`
}

// RefreshStatus derives the room status from occupancy and debate state.
func (r *Room) RefreshStatus() {
	switch {
	case r.DebateStarted:
		r.Status = RoomInProgress
	case len(r.Participants) >= r.MaxParticipants:
		r.Status = RoomFull
	default:
		r.Status = RoomWaiting
	}
}

// HasMember reports whether name is already in the room, matched
// case-insensitively.
func (r *Room) HasMember(name string) bool {
	for _, m := range r.Participants {
		if equalFold(m.Name, name) {
			return true
		}
	}
	return false
}
