package services

import (
	"testing"
	"time"

	"github.com/Dosada05/debate-arena/models"
)

func profileWithDebates(scores ...float64) *models.UserProfile {
	p := &models.UserProfile{UserID: "u1", Level: "beginner"}
	for i, score := range scores {
		p.DebateHistory = append(p.DebateHistory, models.DebateSummary{
			DebateID:    "d",
			Format:      "british_parliamentary",
			Result:      models.FinalVerdict{OverallScore: score},
			CompletedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}
	return p
}

func TestEvaluateAchievementsFirstDebate(t *testing.T) {
	unlocked := EvaluateAchievements(profileWithDebates(70))

	found := false
	for _, a := range unlocked {
		if a.ID == "first_debate" {
			found = true
		}
		if a.ID == "debate_veteran" {
			t.Errorf("debate_veteran should need 10 debates")
		}
	}
	if !found {
		t.Errorf("first_debate should unlock after one debate, got %v", unlocked)
	}
}

func TestEvaluateAchievementsIsPureAndIdempotentPerState(t *testing.T) {
	p := profileWithDebates(70)

	first := EvaluateAchievements(p)
	second := EvaluateAchievements(p)
	if len(first) != len(second) {
		t.Fatalf("same profile produced different sets: %d vs %d", len(first), len(second))
	}
	if len(p.Achievements) != 0 || p.Points != 0 {
		t.Errorf("evaluation mutated the profile: %+v", p)
	}

	// Once recorded, the same achievements stop unlocking.
	p.Achievements = append(p.Achievements, first...)
	if again := EvaluateAchievements(p); len(again) != 0 {
		t.Errorf("already-held achievements unlocked again: %v", again)
	}
}

func TestAvgScoreCriterion(t *testing.T) {
	low := profileWithDebates(80, 80)
	for _, a := range EvaluateAchievements(low) {
		if a.ID == "high_scorer" {
			t.Errorf("high_scorer should need an 85 average")
		}
	}

	high := profileWithDebates(86, 88)
	found := false
	for _, a := range EvaluateAchievements(high) {
		if a.ID == "high_scorer" {
			found = true
		}
	}
	if !found {
		t.Errorf("high_scorer should unlock on an 87 average")
	}
}

func TestPerfectStreakCriterion(t *testing.T) {
	// The streak is over the most recent debates only.
	broken := profileWithDebates(96, 97, 80, 95, 96)
	for _, a := range EvaluateAchievements(broken) {
		if a.ID == "perfectionist" {
			t.Errorf("streak of 2 should not unlock perfectionist")
		}
	}

	streak := profileWithDebates(60, 95, 97, 99)
	found := false
	for _, a := range EvaluateAchievements(streak) {
		if a.ID == "perfectionist" {
			found = true
		}
	}
	if !found {
		t.Errorf("trailing 95+ streak of 3 should unlock perfectionist")
	}
}

func TestScoreImprovementCriterion(t *testing.T) {
	improved := profileWithDebates(60, 75)
	found := false
	for _, a := range EvaluateAchievements(improved) {
		if a.ID == "comeback" {
			found = true
		}
	}
	if !found {
		t.Errorf("a 15-point jump should unlock comeback")
	}

	single := profileWithDebates(90)
	for _, a := range EvaluateAchievements(single) {
		if a.ID == "comeback" {
			t.Errorf("comeback needs at least two debates")
		}
	}
}

func TestPointAndLessonCriteria(t *testing.T) {
	p := &models.UserProfile{
		UserID:           "u1",
		Points:           520,
		CompletedLessons: []string{"debate_basics_1"},
	}
	want := map[string]bool{"first_lesson": false, "point_collector": false, "fast_starter": false}
	for _, a := range EvaluateAchievements(p) {
		if _, ok := want[a.ID]; ok {
			want[a.ID] = true
		}
		if a.ID == "master_debater" {
			t.Errorf("master_debater needs 1000 points")
		}
	}
	for id, got := range want {
		if !got {
			t.Errorf("%s should have unlocked", id)
		}
	}
}

func TestCriteriaAreANDed(t *testing.T) {
	// quick_start needs a lesson AND 50 points.
	p := &models.UserProfile{UserID: "u1", Points: 80}
	for _, a := range EvaluateAchievements(p) {
		if a.ID == "fast_starter" {
			t.Errorf("fast_starter needs a completed lesson too")
		}
	}
}

func TestAllAchievementsHaveCriteria(t *testing.T) {
	for _, a := range AllAchievements() {
		if len(a.Criteria) == 0 {
			t.Errorf("achievement %s has no criteria", a.ID)
		}
		if a.Points <= 0 {
			t.Errorf("achievement %s awards no points", a.ID)
		}
	}
}
