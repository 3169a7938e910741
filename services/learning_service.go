package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

// Level thresholds in profile points.
const (
	intermediateAt = 100
	advancedAt     = 300
	masteryAt      = 1000
)

const lessonTimeout = 30 * time.Second

func levelForPoints(points int) string {
	switch {
	case points >= advancedAt:
		return "advanced"
	case points >= intermediateAt:
		return "intermediate"
	default:
		return "beginner"
	}
}

// LearningService serves the lesson catalog, grades exercise answers,
// and derives the analytics view.
type LearningService struct {
	reg    *registry.Registry
	grader ai.Collaborator
	logger *slog.Logger
}

func NewLearningService(reg *registry.Registry, grader ai.Collaborator, logger *slog.Logger) *LearningService {
	return &LearningService{reg: reg, grader: grader, logger: logger}
}

// Lessons lists the catalog, optionally filtered by level.
func (s *LearningService) Lessons(level string) []models.Lesson {
	if level == "" {
		return AllLessons()
	}
	return LessonsForLevel(level)
}

// Lesson returns one lesson by ID.
func (s *LearningService) Lesson(id string) (*models.Lesson, error) {
	l := LookupLesson(id)
	if l == nil {
		return nil, ErrLessonNotFound
	}
	out := *l
	return &out, nil
}

// LessonResult is the graded outcome of a lesson exercise.
type LessonResult struct {
	Feedback             ai.LessonFeedback    `json:"feedback"`
	PointsEarned         int                  `json:"points_earned"`
	AlreadyCompleted     bool                 `json:"already_completed"`
	UnlockedAchievements []models.Achievement `json:"unlocked_achievements,omitempty"`
}

// CompleteLesson grades the exercise answer and credits the profile.
// Repeating a finished lesson still returns feedback but never awards
// points twice. A grader outage degrades to the participation grade.
func (s *LearningService) CompleteLesson(ctx context.Context, userID, lessonID, answer string) (*LessonResult, error) {
	lesson := LookupLesson(lessonID)
	if lesson == nil {
		return nil, ErrLessonNotFound
	}

	callCtx, cancel := context.WithTimeout(ctx, lessonTimeout)
	defer cancel()
	feedback, err := s.grader.EvaluateLesson(callCtx, *lesson, answer)
	if err != nil {
		s.logger.Warn("lesson grading failed, using default",
			slog.String("lesson_id", lessonID),
			slog.Any("error", err))
		feedback = ai.DefaultLessonFeedback(lesson.PointsPossible)
	}
	if feedback.Points > lesson.PointsPossible {
		feedback.Points = lesson.PointsPossible
	}

	result := &LessonResult{Feedback: feedback}
	s.ensureProfile(userID)
	err = s.reg.Profiles.With(userID, func(p *models.UserProfile) error {
		for _, done := range p.CompletedLessons {
			if done == lessonID {
				result.AlreadyCompleted = true
				return nil
			}
		}
		p.CompletedLessons = append(p.CompletedLessons, lessonID)
		p.Points += feedback.Points
		result.PointsEarned = feedback.Points

		result.UnlockedAchievements = EvaluateAchievements(p)
		for _, a := range result.UnlockedAchievements {
			p.Achievements = append(p.Achievements, a)
			p.Points += a.Points
		}
		p.Level = levelForPoints(p.Points)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Profile returns a snapshot of the user's profile, creating it on
// first access.
func (s *LearningService) Profile(userID string) (*models.UserProfile, error) {
	s.ensureProfile(userID)
	var snapshot *models.UserProfile
	err := s.reg.Profiles.View(userID, func(p *models.UserProfile) error {
		snapshot = registry.DeepCopy(p)
		return nil
	})
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return snapshot, nil
}

// Analytics derives the progress view from the profile.
func (s *LearningService) Analytics(userID string) (*models.Analytics, error) {
	profile, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	var avg float64
	if n := len(profile.DebateHistory); n > 0 {
		var total float64
		for _, d := range profile.DebateHistory {
			total += d.Result.OverallScore
		}
		avg = math.Round(total/float64(n)*10) / 10
	}

	return &models.Analytics{
		TotalDebates:      len(profile.DebateHistory),
		TotalPoints:       profile.Points,
		CompletedLessons:  len(profile.CompletedLessons),
		CurrentLevel:      levelForPoints(profile.Points),
		AchievementsCount: len(profile.Achievements),
		AverageScore:      avg,
		LevelProgress:     levelProgress(profile.Points),
	}, nil
}

// levelProgress positions the point total within its level band.
func levelProgress(points int) models.LevelProgress {
	level := levelForPoints(points)
	var lower, upper int
	switch level {
	case "advanced":
		lower, upper = advancedAt, masteryAt
	case "intermediate":
		lower, upper = intermediateAt, advancedAt
	default:
		lower, upper = 0, intermediateAt
	}

	inLevel := points - lower
	toNext := upper - points
	if toNext < 0 {
		toNext = 0
	}
	pct := float64(inLevel) / float64(upper-lower) * 100
	if pct > 100 {
		pct = 100
	}
	return models.LevelProgress{
		CurrentLevel:       level,
		PointsInLevel:      inLevel,
		PointsToNext:       toNext,
		ProgressPercentage: math.Round(pct*10) / 10,
	}
}

func (s *LearningService) ensureProfile(userID string) {
	if !s.reg.Profiles.Has(userID) {
		_ = s.reg.Profiles.Create(userID, &models.UserProfile{
			UserID:    userID,
			Level:     "beginner",
			CreatedAt: time.Now(),
		})
	}
}
