package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/models"
)

// stubCollaborator is a scripted ai.Collaborator for service tests.
type stubCollaborator struct {
	speech string
	motion string

	// scores are consumed in call order by Evaluate; when exhausted the
	// last one repeats. Evaluate runs from concurrent goroutines, so the
	// cursor is guarded.
	mu        sync.Mutex
	scores    []int
	evalCalls int

	// scoresByPosition wins over the sequence when the speaker position
	// has an entry; tournament judging runs both sides concurrently, so
	// tests key expectations by position instead of call order.
	scoresByPosition map[string]int

	poiRuling      ai.POIRuling
	lessonFeedback ai.LessonFeedback

	fail bool
}

func (s *stubCollaborator) GenerateSpeech(ctx context.Context, sc ai.SpeechContext) (string, error) {
	if s.fail {
		return "", errors.New("stub: down")
	}
	if s.speech == "" {
		return "a scripted speech", nil
	}
	return s.speech, nil
}

func (s *stubCollaborator) Evaluate(ctx context.Context, speechText string, ec ai.EvaluationContext) (ai.Evaluation, error) {
	if s.fail {
		return ai.Evaluation{}, errors.New("stub: down")
	}
	s.mu.Lock()
	score := 75
	if v, ok := s.scoresByPosition[ec.SpeakerPosition]; ok {
		score = v
	} else if len(s.scores) > 0 {
		idx := s.evalCalls
		if idx >= len(s.scores) {
			idx = len(s.scores) - 1
		}
		score = s.scores[idx]
	}
	s.evalCalls++
	s.mu.Unlock()
	ev := ai.DefaultEvaluation()
	ev.OverallScore = score
	ev.DetailedFeedback = "scripted feedback"
	return ev, nil
}

func (s *stubCollaborator) JudgePOI(ctx context.Context, poiText string, pc ai.POIContext) (ai.POIRuling, error) {
	if s.fail {
		return ai.POIRuling{}, errors.New("stub: down")
	}
	if s.poiRuling.Decision == "" {
		return ai.DeclinedPOI(), nil
	}
	return s.poiRuling, nil
}

func (s *stubCollaborator) GenerateMotion(ctx context.Context, format, skillLevel string) (string, error) {
	if s.fail {
		return "", errors.New("stub: down")
	}
	if s.motion == "" {
		return "This house believes that testing is essential", nil
	}
	return s.motion, nil
}

func (s *stubCollaborator) EvaluateLesson(ctx context.Context, lesson models.Lesson, answer string) (ai.LessonFeedback, error) {
	if s.fail {
		return ai.LessonFeedback{}, errors.New("stub: down")
	}
	if s.lessonFeedback.Points == 0 && len(s.lessonFeedback.Suggestions) == 0 {
		return ai.LessonFeedback{Correctness: 8, ExplanationQuality: 8, Points: lesson.PointsPossible, NextSteps: "keep going"}, nil
	}
	return s.lessonFeedback, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
