package ai

import (
	"context"

	"github.com/Dosada05/debate-arena/models"
)

// OfflineCollaborator serves the deterministic fallbacks directly. It is
// wired in when no API key is configured, so the whole platform stays
// usable in local development.
type OfflineCollaborator struct{}

func NewOfflineCollaborator() *OfflineCollaborator {
	return &OfflineCollaborator{}
}

func (o *OfflineCollaborator) GenerateSpeech(ctx context.Context, sc SpeechContext) (string, error) {
	return FallbackSpeech, nil
}

func (o *OfflineCollaborator) Evaluate(ctx context.Context, speechText string, ec EvaluationContext) (Evaluation, error) {
	return DefaultEvaluation(), nil
}

func (o *OfflineCollaborator) JudgePOI(ctx context.Context, poiText string, pc POIContext) (POIRuling, error) {
	return DeclinedPOI(), nil
}

func (o *OfflineCollaborator) GenerateMotion(ctx context.Context, format, skillLevel string) (string, error) {
	return "This house believes that technology does more good than harm", nil
}

func (o *OfflineCollaborator) EvaluateLesson(ctx context.Context, lesson models.Lesson, answer string) (LessonFeedback, error) {
	return DefaultLessonFeedback(lesson.PointsPossible), nil
}
