package services

import "github.com/Dosada05/debate-arena/models"

// DefaultFormatKey is used when a requested format is unknown.
const DefaultFormatKey = "british_parliamentary"

// debateFormats is the static format catalog. Speech order length fixes
// the total number of turns in a session of that format.
var debateFormats = map[string]models.DebateFormat{
	"british_parliamentary": {
		Key:             "british_parliamentary",
		Name:            "British Parliamentary",
		Description:     "Four-team parliamentary format with opening and closing teams",
		Teams:           4,
		SpeakersPerTeam: 2,
		SpeechOrder:     []string{"OG1", "OO1", "OG2", "OO2", "CG1", "CO1", "CG2", "CO2"},
		TimeLimits:      map[string]int{"constructive": 7, "reply": 4},
		FirstSpeaker:    "government",
		POIAllowed:      true,
		POITimeWindow:   [2]int{1, 6},
		Roles: map[string]string{
			"OG": "Opening Government",
			"OO": "Opening Opposition",
			"CG": "Closing Government",
			"CO": "Closing Opposition",
		},
	},
	"policy_debate": {
		Key:             "policy_debate",
		Name:            "Policy Debate",
		Description:     "Two-team format with constructive and rebuttal speeches",
		Teams:           2,
		SpeakersPerTeam: 2,
		SpeechOrder:     []string{"1AC", "1NC", "2AC", "2NC", "1NR", "1AR", "2NR", "2AR"},
		TimeLimits:      map[string]int{"constructive": 8, "rebuttal": 5, "cross_ex": 3},
		FirstSpeaker:    "government",
		POIAllowed:      false,
		Roles: map[string]string{
			"A": "Affirmative",
			"N": "Negative",
		},
	},
	"public_forum": {
		Key:             "public_forum",
		Name:            "Public Forum",
		Description:     "Accessible format with crossfire periods for current events",
		Teams:           2,
		SpeakersPerTeam: 2,
		SpeechOrder: []string{
			"Pro Team 1", "Con Team 1", "Pro Team 2", "Con Team 2",
			"Pro Rebuttal", "Con Rebuttal", "Pro Summary", "Con Summary",
		},
		TimeLimits:   map[string]int{"constructive": 4, "rebuttal": 4, "summary": 3, "final_focus": 2, "crossfire": 3},
		FirstSpeaker: "government",
		POIAllowed:   false,
		Roles: map[string]string{
			"Pro": "Pro Team",
			"Con": "Con Team",
		},
	},
	"asian_parliamentary": {
		Key:             "asian_parliamentary",
		Name:            "Asian Parliamentary",
		Description:     "Three-team format with government, opposition, and member teams",
		Teams:           3,
		SpeakersPerTeam: 2,
		SpeechOrder:     []string{"Gov 1", "Opp 1", "Mem 1", "Gov 2", "Opp 2", "Mem 2", "Gov Reply", "Opp Reply"},
		TimeLimits:      map[string]int{"constructive": 7, "reply": 4},
		FirstSpeaker:    "government",
		POIAllowed:      true,
		POITimeWindow:   [2]int{1, 6},
		Roles: map[string]string{
			"Gov": "Government",
			"Opp": "Opposition",
			"Mem": "Member",
		},
	},
	"worlds_schools": {
		Key:             "worlds_schools",
		Name:            "Worlds Schools",
		Description:     "International format with proposition and opposition teams",
		Teams:           2,
		SpeakersPerTeam: 3,
		SpeechOrder:     []string{"Prop 1", "Opp 1", "Prop 2", "Opp 2", "Prop 3", "Opp 3", "Opp Reply", "Prop Reply"},
		TimeLimits:      map[string]int{"constructive": 8, "reply": 4},
		FirstSpeaker:    "government",
		POIAllowed:      true,
		POITimeWindow:   [2]int{1, 7},
		Roles: map[string]string{
			"Prop": "Proposition",
			"Opp":  "Opposition",
		},
	},
}

// LookupFormat returns the format for key, falling back to British
// Parliamentary for unknown keys the way the debate UI expects.
func LookupFormat(key string) models.DebateFormat {
	if f, ok := debateFormats[key]; ok {
		return f
	}
	return debateFormats[DefaultFormatKey]
}

// ListFormats returns the catalog in stable key order.
func ListFormats() []models.DebateFormat {
	keys := []string{"british_parliamentary", "policy_debate", "public_forum", "asian_parliamentary", "worlds_schools"}
	out := make([]models.DebateFormat, 0, len(keys))
	for _, k := range keys {
		out = append(out, debateFormats[k])
	}
	return out
}

// competitiveFormats is the set counted by the all_formats achievement.
var competitiveFormats = []string{"british_parliamentary", "policy_debate", "public_forum"}
