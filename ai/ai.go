// Package ai defines the generation/evaluation collaborator used by the
// debate and tournament services, plus the Gemini-backed implementation.
// Callers treat every failure here as recoverable: the deterministic
// defaults below keep debates and tournaments moving through an outage.
package ai

import (
	"context"

	"github.com/Dosada05/debate-arena/models"
)

// SpeechContext carries what the generator needs to produce one speech.
type SpeechContext struct {
	Motion           string
	Position         string
	SpeechType       models.SpeechType
	Difficulty       string
	PreviousSpeeches []models.Speech
}

// EvaluationContext frames a single speech for the judge.
type EvaluationContext struct {
	Motion          string
	SpeakerPosition string
	SpeechType      models.SpeechType
	SpeakerLevel    string
}

// POIContext frames a Point of Information offered to the AI speaker.
type POIContext struct {
	Motion          string
	AIPosition      string
	CurrentArgument string
}

// Evaluation is the judge's structured verdict on one speech.
// Component scores are 1-10; OverallScore follows the WUDC 50-100 scale.
type Evaluation struct {
	ArgumentQuality         int      `json:"argument_quality"`
	LogicalCoherence        int      `json:"logical_coherence"`
	RhetoricalTechniques    int      `json:"rhetorical_techniques"`
	ResponseToOpposition    int      `json:"response_to_opposition"`
	StructureAndTiming      int      `json:"structure_and_timing"`
	DeliveryAndPresentation int      `json:"delivery_and_presentation"`
	OverallScore            int      `json:"overall_score"`
	DetailedFeedback        string   `json:"detailed_feedback"`
	Strengths               []string `json:"strengths"`
	AreasForImprovement     []string `json:"areas_for_improvement"`
	PointsAwarded           int      `json:"points_awarded"`
}

// POIRuling is the typed accept/decline outcome. The core never sees the
// free-text protocol the model speaks; parsing lives in this package only.
type POIRuling struct {
	Decision models.POIDecision `json:"decision"`
	Response string             `json:"response"`
}

// LessonFeedback grades a lesson exercise answer.
type LessonFeedback struct {
	Correctness        int      `json:"correctness"`
	ExplanationQuality int      `json:"explanation_quality"`
	Suggestions        []string `json:"suggestions"`
	Points             int      `json:"points"`
	NextSteps          string   `json:"next_steps"`
}

// Collaborator is the external natural-language service boundary. All
// methods honor ctx cancellation; callers put a deadline on every call.
type Collaborator interface {
	GenerateSpeech(ctx context.Context, sc SpeechContext) (string, error)
	Evaluate(ctx context.Context, speechText string, ec EvaluationContext) (Evaluation, error)
	JudgePOI(ctx context.Context, poiText string, pc POIContext) (POIRuling, error)
	GenerateMotion(ctx context.Context, format, skillLevel string) (string, error)
	EvaluateLesson(ctx context.Context, lesson models.Lesson, answer string) (LessonFeedback, error)
}

// DefaultEvaluation is the mid-scale verdict substituted when the judge
// is unreachable or returns garbage.
func DefaultEvaluation() Evaluation {
	return Evaluation{
		ArgumentQuality:         6,
		LogicalCoherence:        6,
		RhetoricalTechniques:    6,
		ResponseToOpposition:    6,
		StructureAndTiming:      6,
		DeliveryAndPresentation: 6,
		OverallScore:            60,
		DetailedFeedback:        "Technical difficulties prevented detailed evaluation. Please continue practicing.",
		Strengths:               []string{"Participated in the debate"},
		AreasForImprovement:     []string{"Continue developing debate skills"},
		PointsAwarded:           15,
	}
}

// DeclinedPOI is the canned ruling used when the POI judge fails.
func DeclinedPOI() POIRuling {
	return POIRuling{
		Decision: models.POIDecline,
		Response: "Thank you, but I'll continue with my argument.",
	}
}

// FallbackSpeech stands in for a generated speech on failure.
const FallbackSpeech = "I apologize, but I'm having technical difficulties. Please proceed."

// DefaultLessonFeedback awards a participation grade when the evaluator
// is unavailable.
func DefaultLessonFeedback(pointsPossible int) LessonFeedback {
	return LessonFeedback{
		Correctness:        6,
		ExplanationQuality: 6,
		Suggestions:        []string{"Review the lesson material and try again"},
		Points:             pointsPossible / 2,
		NextSteps:          "Continue to the next lesson.",
	}
}
