package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

func newDebateService(stub *stubCollaborator) (*DebateService, *registry.Registry) {
	reg := registry.New()
	return NewDebateService(reg, stub, testLogger()), reg
}

func TestDebateCompletesWhenSpeechOrderExhausted(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{
		Motion:       "This house would test everything",
		Format:       "british_parliamentary",
		Difficulty:   "intermediate",
		UserPosition: "government",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.Round != 0 || session.Status != models.DebateInProgress {
		t.Fatalf("fresh session: round=%d status=%s", session.Round, session.Status)
	}
	if session.CurrentSpeaker != models.SpeakerUser {
		t.Fatalf("government user should open, current speaker = %s", session.CurrentSpeaker)
	}
	if len(session.SpeechOrder) != 8 {
		t.Fatalf("BP speech order length = %d, want 8", len(session.SpeechOrder))
	}

	// Each submission appends the user's speech and the AI's reply.
	for i := 0; i < 4; i++ {
		res, err := svc.SubmitSpeech(ctx, session.ID, "my argument")
		if err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
		session = res.Session
	}

	if session.Round != 8 {
		t.Errorf("round = %d, want 8", session.Round)
	}
	if len(session.Speeches) != 8 {
		t.Errorf("speeches = %d, want 8", len(session.Speeches))
	}
	if session.Status != models.DebateCompleted {
		t.Errorf("status = %s, want completed", session.Status)
	}

	if _, err := svc.SubmitSpeech(ctx, session.ID, "one more"); !errors.Is(err, ErrDebateCompleted) {
		t.Errorf("submission after completion: got %v", err)
	}
}

func TestDebateAIOpensWhenUserTakesOpposition(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{speech: "opening case"})

	session, err := svc.StartDebate(context.Background(), StartDebateInput{
		Format:       "british_parliamentary",
		UserPosition: "opposition",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if session.Round != 1 {
		t.Errorf("round after AI opening = %d, want 1", session.Round)
	}
	if len(session.Speeches) != 1 || session.Speeches[0].Speaker != models.SpeakerAI {
		t.Fatalf("expected one AI speech, got %+v", session.Speeches)
	}
	if session.CurrentSpeaker != models.SpeakerUser {
		t.Errorf("floor should pass to the user, got %s", session.CurrentSpeaker)
	}
	if session.Motion == "" {
		t.Errorf("blank motion should have been generated")
	}
}

func TestDebateSpeechTypesProgress(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "british_parliamentary", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 4; i++ {
		res, err := svc.SubmitSpeech(ctx, session.ID, "argument")
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		session = res.Session
	}

	if got := session.Speeches[0].Type; got != models.SpeechConstructive {
		t.Errorf("first speech type = %s, want constructive", got)
	}
	if got := session.Speeches[4].Type; got != models.SpeechRebuttal {
		t.Errorf("mid-debate speech type = %s, want rebuttal", got)
	}
}

func TestSubmitPOI(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "british_parliamentary", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	record, err := svc.SubmitPOI(ctx, session.ID, "On that point, what about cost?")
	if err != nil {
		t.Fatalf("poi: %v", err)
	}
	if record.AIDecision != models.POIDecline {
		t.Errorf("decision = %s, want DECLINE", record.AIDecision)
	}

	got, _ := svc.GetSession(session.ID)
	if len(got.POIs) != 1 {
		t.Errorf("poi log length = %d, want 1", len(got.POIs))
	}
	// POIs never advance the turn counter.
	if got.Round != 0 {
		t.Errorf("round = %d, want 0", got.Round)
	}
}

func TestSubmitPOIRejectedForNonPOIFormat(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "policy_debate", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.SubmitPOI(ctx, session.ID, "point!"); !errors.Is(err, ErrValidation) {
		t.Errorf("poi in policy debate: got %v", err)
	}
}

func TestEndSessionVerdict(t *testing.T) {
	stub := &stubCollaborator{scores: []int{75}}
	svc, reg := newDebateService(stub)
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "british_parliamentary", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err = svc.SubmitSpeech(ctx, session.ID, "argument"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	result, err := svc.EndSession(ctx, session.ID, "user-1")
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	// Four speeches at 75 each: average of (75-15) is 60, points 30.
	if result.Verdict.OverallScore != 60 {
		t.Errorf("overall = %v, want 60", result.Verdict.OverallScore)
	}
	if result.Verdict.Points != 30 {
		t.Errorf("points = %d, want 30", result.Verdict.Points)
	}
	if result.Verdict.SpeechCount != 4 {
		t.Errorf("speech count = %d, want 4", result.Verdict.SpeechCount)
	}
	if result.Verdict.NothingToScore {
		t.Errorf("verdict unexpectedly flagged NothingToScore")
	}

	// The session is retired; the summary lives in the profile.
	if _, err := svc.GetSession(session.ID); !errors.Is(err, ErrDebateNotFound) {
		t.Errorf("session after end: got %v", err)
	}
	var profile *models.UserProfile
	if err := reg.Profiles.View("user-1", func(p *models.UserProfile) error {
		profile = registry.DeepCopy(p)
		return nil
	}); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if len(profile.DebateHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(profile.DebateHistory))
	}
	if !profile.HasAchievement("first_debate") {
		t.Errorf("first_debate should have unlocked")
	}
	// 30 verdict points plus the first_debate badge's 20.
	if profile.Points != 50 {
		t.Errorf("profile points = %d, want 50", profile.Points)
	}
}

func TestEndSessionWithoutSpeeches(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "british_parliamentary", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.EndSession(ctx, session.ID, "user-1")
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if !result.Verdict.NothingToScore {
		t.Errorf("expected NothingToScore verdict")
	}
	if result.Verdict.OverallScore != 0 || result.Verdict.Points != 0 {
		t.Errorf("zero verdict expected, got %+v", result.Verdict)
	}
	if len(result.UnlockedAchievements) != 0 {
		t.Errorf("no achievements expected, got %v", result.UnlockedAchievements)
	}
}

func TestGenerationFailureFallsBack(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{fail: true})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "british_parliamentary", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := svc.SubmitSpeech(ctx, session.ID, "argument")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(res.Session.Speeches) != 2 {
		t.Fatalf("speeches = %d, want 2", len(res.Session.Speeches))
	}
	if res.Session.Speeches[1].Content == "" {
		t.Errorf("AI fallback speech should not be empty")
	}
	// Feedback degrades to the mid-scale default rather than failing.
	if res.Feedback.OverallScore != ai.DefaultEvaluation().OverallScore {
		t.Errorf("fallback feedback score = %d", res.Feedback.OverallScore)
	}
}

func TestSubmitSpeechReturnsFeedback(t *testing.T) {
	svc, _ := newDebateService(&stubCollaborator{scores: []int{82}})
	ctx := context.Background()

	session, err := svc.StartDebate(ctx, StartDebateInput{Format: "british_parliamentary", UserPosition: "government"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := svc.SubmitSpeech(ctx, session.ID, "a well structured case")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if res.Feedback.OverallScore != 82 {
		t.Errorf("feedback score = %d, want 82", res.Feedback.OverallScore)
	}
	if res.Feedback.DetailedFeedback == "" {
		t.Errorf("feedback text should not be empty")
	}
}
