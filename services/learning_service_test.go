package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/debate-arena/registry"
)

func newLearningService(stub *stubCollaborator) *LearningService {
	return NewLearningService(registry.New(), stub, testLogger())
}

func TestLessonCatalog(t *testing.T) {
	svc := newLearningService(&stubCollaborator{})

	all := svc.Lessons("")
	if len(all) != 9 {
		t.Fatalf("catalog size = %d, want 9", len(all))
	}
	beginner := svc.Lessons("beginner")
	if len(beginner) != 3 {
		t.Errorf("beginner lessons = %d, want 3", len(beginner))
	}

	lesson, err := svc.Lesson("debate_basics_1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if lesson.Title != "What is Debate?" {
		t.Errorf("title = %q", lesson.Title)
	}
	if _, err := svc.Lesson("nope"); !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("missing lesson: got %v", err)
	}
}

func TestCompleteLessonAwardsPointsOnce(t *testing.T) {
	svc := newLearningService(&stubCollaborator{})
	ctx := context.Background()

	result, err := svc.CompleteLesson(ctx, "u1", "debate_basics_1", "my answer")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.AlreadyCompleted {
		t.Errorf("first completion flagged as repeat")
	}
	if result.PointsEarned != 25 {
		t.Errorf("points earned = %d, want 25", result.PointsEarned)
	}
	found := false
	for _, a := range result.UnlockedAchievements {
		if a.ID == "first_lesson" {
			found = true
		}
	}
	if !found {
		t.Errorf("first_lesson should unlock, got %v", result.UnlockedAchievements)
	}

	repeat, err := svc.CompleteLesson(ctx, "u1", "debate_basics_1", "again")
	if err != nil {
		t.Fatalf("repeat: %v", err)
	}
	if !repeat.AlreadyCompleted || repeat.PointsEarned != 0 {
		t.Errorf("repeat completion = %+v", repeat)
	}

	profile, err := svc.Profile("u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	// 25 lesson points plus first_lesson's 10.
	if profile.Points != 35 {
		t.Errorf("profile points = %d, want 35", profile.Points)
	}
	if len(profile.CompletedLessons) != 1 {
		t.Errorf("completed lessons = %v", profile.CompletedLessons)
	}
}

func TestCompleteLessonGraderOutageFallsBack(t *testing.T) {
	svc := newLearningService(&stubCollaborator{fail: true})

	result, err := svc.CompleteLesson(context.Background(), "u1", "debate_basics_3", "answer")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// Participation grade is half the possible points.
	if result.PointsEarned != 15 {
		t.Errorf("fallback points = %d, want 15", result.PointsEarned)
	}
}

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, "beginner"},
		{99, "beginner"},
		{100, "intermediate"},
		{299, "intermediate"},
		{300, "advanced"},
		{5000, "advanced"},
	}
	for _, c := range cases {
		if got := levelForPoints(c.points); got != c.want {
			t.Errorf("levelForPoints(%d) = %s, want %s", c.points, got, c.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	p := levelProgress(150)
	if p.CurrentLevel != "intermediate" {
		t.Errorf("level = %s", p.CurrentLevel)
	}
	if p.PointsInLevel != 50 || p.PointsToNext != 150 {
		t.Errorf("progress = %+v", p)
	}
	if p.ProgressPercentage != 25 {
		t.Errorf("percentage = %v, want 25", p.ProgressPercentage)
	}

	capped := levelProgress(2000)
	if capped.ProgressPercentage != 100 || capped.PointsToNext != 0 {
		t.Errorf("capped progress = %+v", capped)
	}
}

func TestAnalytics(t *testing.T) {
	stub := &stubCollaborator{}
	svc := newLearningService(stub)
	ctx := context.Background()

	if _, err := svc.CompleteLesson(ctx, "u1", "debate_basics_1", "a"); err != nil {
		t.Fatalf("lesson: %v", err)
	}

	analytics, err := svc.Analytics("u1")
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if analytics.CompletedLessons != 1 {
		t.Errorf("completed lessons = %d", analytics.CompletedLessons)
	}
	if analytics.TotalDebates != 0 || analytics.AverageScore != 0 {
		t.Errorf("debate stats should be zero: %+v", analytics)
	}
	if analytics.CurrentLevel != "beginner" {
		t.Errorf("level = %s", analytics.CurrentLevel)
	}
}
