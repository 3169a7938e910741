package models

import "strings"

// BracketKind is immutable after creation. Double elimination is aliased
// to single elimination (known simplification, no loser's bracket).
type BracketKind string

const (
	BracketSingleElimination BracketKind = "single_elimination"
	BracketDoubleElimination BracketKind = "double_elimination"
	BracketRoundRobin        BracketKind = "round_robin"
)

type RoundStatus string

const (
	RoundPending   RoundStatus = "pending"
	RoundWaiting   RoundStatus = "waiting"
	RoundCompleted RoundStatus = "completed"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchWaiting   MatchStatus = "waiting"
	MatchCompleted MatchStatus = "completed"
)

type Bracket struct {
	Kind   BracketKind `json:"type"`
	Rounds []*Round    `json:"rounds"`
}

type Round struct {
	RoundNumber int         `json:"round_number"`
	Name        string      `json:"name"`
	Matches     []*Match    `json:"matches"`
	Status      RoundStatus `json:"status"`
}

// Match slots hold participant names, the Bye sentinel, or "" for a
// placeholder awaiting a prior round's winner.
type Match struct {
	ID            string         `json:"id"`
	Participant1  string         `json:"participant1"`
	Participant2  string         `json:"participant2"`
	Winner        string         `json:"winner,omitempty"`
	Status        MatchStatus    `json:"status"`
	Motion        string         `json:"motion,omitempty"`
	Scores        map[string]int `json:"scores,omitempty"`
	JudgeFeedback string         `json:"judge_feedback,omitempty"`
}

// IsBye reports whether the match was decided by a bye at creation time.
func (m *Match) IsBye() bool {
	return m.Participant2 == Bye || m.Participant1 == Bye
}

// HasParticipant reports whether name occupies one of the match slots,
// matched case-insensitively.
func (m *Match) HasParticipant(name string) bool {
	return equalFold(m.Participant1, name) || equalFold(m.Participant2, name)
}

// FindMatch locates a match by ID across all rounds. Returns the match
// and its round, or nils when absent.
func (b *Bracket) FindMatch(matchID string) (*Match, *Round) {
	for _, r := range b.Rounds {
		for _, m := range r.Matches {
			if m.ID == matchID {
				return m, r
			}
		}
	}
	return nil, nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
