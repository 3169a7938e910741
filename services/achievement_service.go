package services

import (
	"github.com/Dosada05/debate-arena/models"
)

// achievementCatalog holds every badge definition. Criteria are typed
// predicates; an achievement unlocks only when all of them hold.
var achievementCatalog = []models.Achievement{
	{
		ID: "first_lesson", Name: "First Steps", Description: "Complete your first lesson", Icon: "🎯",
		Criteria: []models.Criterion{{Kind: models.CriterionMinLessons, Threshold: 1}}, Points: 10,
	},
	{
		ID: "quick_learner", Name: "Quick Learner", Description: "Complete 5 lessons", Icon: "📚",
		Criteria: []models.Criterion{{Kind: models.CriterionMinLessons, Threshold: 5}}, Points: 25,
	},
	{
		ID: "debate_scholar", Name: "Debate Scholar", Description: "Complete 10 lessons", Icon: "🎓",
		Criteria: []models.Criterion{{Kind: models.CriterionMinLessons, Threshold: 10}}, Points: 50,
	},
	{
		ID: "first_debate", Name: "First Debate", Description: "Complete your first debate", Icon: "⚡",
		Criteria: []models.Criterion{{Kind: models.CriterionMinDebates, Threshold: 1}}, Points: 20,
	},
	{
		ID: "debate_veteran", Name: "Debate Veteran", Description: "Complete 10 debates", Icon: "🏆",
		Criteria: []models.Criterion{{Kind: models.CriterionMinDebates, Threshold: 10}}, Points: 100,
	},
	{
		ID: "high_scorer", Name: "High Scorer", Description: "Achieve an average score of 85+", Icon: "⭐",
		Criteria: []models.Criterion{{Kind: models.CriterionAvgScore, Threshold: 85}}, Points: 75,
	},
	{
		ID: "point_collector", Name: "Point Collector", Description: "Earn 500 points", Icon: "💎",
		Criteria: []models.Criterion{{Kind: models.CriterionMinPoints, Threshold: 500}}, Points: 50,
	},
	{
		ID: "master_debater", Name: "Master Debater", Description: "Reach advanced level", Icon: "👑",
		Criteria: []models.Criterion{{Kind: models.CriterionMinPoints, Threshold: 1000}}, Points: 200,
	},
	{
		ID: "poi_tactician", Name: "POI Tactician", Description: "Offer 10 Points of Information", Icon: "🙋",
		Criteria: []models.Criterion{{Kind: models.CriterionMinPOIs, Threshold: 10}}, Points: 40,
	},
	{
		ID: "format_explorer", Name: "Format Explorer", Description: "Debate in 3 different formats", Icon: "🧭",
		Criteria: []models.Criterion{{Kind: models.CriterionDifferentFormats, Threshold: 3}}, Points: 40,
	},
	{
		ID: "grand_slam", Name: "Grand Slam", Description: "Debate in every competitive format", Icon: "🌍",
		Criteria: []models.Criterion{{Kind: models.CriterionAllFormats}}, Points: 120,
	},
	{
		ID: "curriculum_complete", Name: "Curriculum Complete", Description: "Finish every lesson in the catalog", Icon: "🏁",
		Criteria: []models.Criterion{{Kind: models.CriterionAllLessons}}, Points: 150,
	},
	{
		ID: "advanced_scholar", Name: "Advanced Scholar", Description: "Complete 3 advanced lessons", Icon: "🔬",
		Criteria: []models.Criterion{{Kind: models.CriterionMinAdvancedLessons, Threshold: 3}}, Points: 60,
	},
	{
		ID: "perfectionist", Name: "Perfectionist", Description: "Score 95+ in 3 consecutive debates", Icon: "💯",
		Criteria: []models.Criterion{{Kind: models.CriterionPerfectStreak, Threshold: 3}}, Points: 150,
	},
	{
		ID: "fast_starter", Name: "Fast Starter", Description: "Complete a lesson and earn 50 points", Icon: "🚀",
		Criteria: []models.Criterion{{Kind: models.CriterionQuickStart}}, Points: 15,
	},
	{
		ID: "comeback", Name: "Comeback", Description: "Improve your score by 10 between debates", Icon: "📈",
		Criteria: []models.Criterion{{Kind: models.CriterionScoreImprovement, Threshold: 10}}, Points: 30,
	},
	{
		ID: "marathon_runner", Name: "Marathon Runner", Description: "Complete 5 debates in a row", Icon: "🏃",
		Criteria: []models.Criterion{{Kind: models.CriterionDebateMarathon, Threshold: 5}}, Points: 50,
	},
}

// AllAchievements returns the badge catalog.
func AllAchievements() []models.Achievement {
	out := make([]models.Achievement, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

// profileStats is everything the criteria switch needs, derived once per
// evaluation so repeated criteria stay cheap.
type profileStats struct {
	points          int
	lessons         int
	advancedLessons int
	debates         int
	pois            int
	avgScore        float64
	formatsUsed     map[string]bool
	scores          []float64 // overall scores in history order
}

func deriveStats(p *models.UserProfile) profileStats {
	st := profileStats{
		points:      p.Points,
		lessons:     len(p.CompletedLessons),
		debates:     len(p.DebateHistory),
		formatsUsed: make(map[string]bool),
	}
	for _, id := range p.CompletedLessons {
		if l := LookupLesson(id); l != nil && l.Difficulty == "advanced" {
			st.advancedLessons++
		}
	}
	var total float64
	for _, d := range p.DebateHistory {
		st.pois += d.POICount
		st.formatsUsed[d.Format] = true
		st.scores = append(st.scores, d.Result.OverallScore)
		total += d.Result.OverallScore
	}
	if st.debates > 0 {
		st.avgScore = total / float64(st.debates)
	}
	return st
}

// EvaluateAchievements returns the achievements the profile newly
// qualifies for. The evaluation is pure: the profile is never mutated,
// and two calls with the same profile return the same set. Appending the
// results (and their points) to the profile is the caller's job.
func EvaluateAchievements(profile *models.UserProfile) []models.Achievement {
	st := deriveStats(profile)

	var unlocked []models.Achievement
	for _, a := range achievementCatalog {
		if profile.HasAchievement(a.ID) {
			continue
		}
		// A definition with no criteria would unlock unconditionally;
		// treat it as malformed and skip it.
		if len(a.Criteria) == 0 {
			continue
		}
		if meetsAll(a.Criteria, st) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

func meetsAll(criteria []models.Criterion, st profileStats) bool {
	for _, c := range criteria {
		if !meets(c, st) {
			return false
		}
	}
	return true
}

func meets(c models.Criterion, st profileStats) bool {
	switch c.Kind {
	case models.CriterionMinDebates:
		return st.debates >= c.Threshold
	case models.CriterionMinPoints:
		return st.points >= c.Threshold
	case models.CriterionMinLessons:
		return st.lessons >= c.Threshold
	case models.CriterionMinPOIs:
		return st.pois >= c.Threshold
	case models.CriterionAvgScore:
		return st.debates > 0 && st.avgScore >= float64(c.Threshold)
	case models.CriterionDifferentFormats:
		return len(st.formatsUsed) >= c.Threshold
	case models.CriterionMinAdvancedLessons:
		return st.advancedLessons >= c.Threshold
	case models.CriterionPerfectStreak:
		if len(st.scores) < c.Threshold {
			return false
		}
		for _, s := range st.scores[len(st.scores)-c.Threshold:] {
			if s < 95 {
				return false
			}
		}
		return true
	case models.CriterionAllFormats:
		for _, f := range competitiveFormats {
			if !st.formatsUsed[f] {
				return false
			}
		}
		return true
	case models.CriterionAllLessons:
		return st.lessons >= len(lessonCatalog)
	case models.CriterionQuickStart:
		return st.lessons > 0 && st.points >= 50
	case models.CriterionScoreImprovement:
		if len(st.scores) < 2 {
			return false
		}
		latest := st.scores[len(st.scores)-1]
		previous := st.scores[len(st.scores)-2]
		return latest-previous >= float64(c.Threshold)
	case models.CriterionDebateMarathon:
		return st.debates >= c.Threshold
	default:
		// Unknown kind: never unlock on a predicate we cannot check.
		return false
	}
}
