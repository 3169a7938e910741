package models

// CriterionKind enumerates the closed set of achievement predicates.
// Adding a kind requires extending the evaluator's switch, so new
// criteria are compiler-checked additions rather than free-form keys.
type CriterionKind string

const (
	CriterionMinDebates         CriterionKind = "min_debates"
	CriterionMinPoints          CriterionKind = "min_points"
	CriterionMinLessons         CriterionKind = "min_lessons"
	CriterionMinPOIs            CriterionKind = "min_pois"
	CriterionAvgScore           CriterionKind = "avg_score"
	CriterionDifferentFormats   CriterionKind = "different_formats"
	CriterionMinAdvancedLessons CriterionKind = "min_advanced_lessons"
	CriterionPerfectStreak      CriterionKind = "perfect_streak"
	CriterionAllFormats         CriterionKind = "all_formats"
	CriterionAllLessons         CriterionKind = "all_lessons"
	CriterionQuickStart         CriterionKind = "quick_start"
	CriterionScoreImprovement   CriterionKind = "score_improvement"
	CriterionDebateMarathon     CriterionKind = "debate_marathon"
)

// Criterion is one predicate of an achievement definition. Threshold is
// ignored for the flag-style kinds (all_formats, all_lessons, quick_start).
type Criterion struct {
	Kind      CriterionKind `json:"kind"`
	Threshold int           `json:"threshold,omitempty"`
}

// Achievement unlocks when every listed criterion holds (logical AND).
// Definitions with an empty criteria list are rejected at evaluation
// time rather than unlocking unconditionally.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Criteria    []Criterion `json:"criteria"`
	Points      int         `json:"points"`
}
