package models

// DebateFormat describes a competitive format's fixed speaking structure.
// SpeechOrder length fixes the total number of turns in a session.
type DebateFormat struct {
	Key             string            `json:"key"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Teams           int               `json:"teams"`
	SpeakersPerTeam int               `json:"speakers_per_team"`
	SpeechOrder     []string          `json:"speech_order"`
	TimeLimits      map[string]int    `json:"time_limits"`
	FirstSpeaker    string            `json:"first_speaker"`
	POIAllowed      bool              `json:"poi_allowed"`
	POITimeWindow   [2]int            `json:"poi_time_window,omitempty"`
	Roles           map[string]string `json:"roles"`
}
