package models

// Lesson is a static learning unit from the curriculum catalog.
type Lesson struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Level          string `json:"level"`
	Description    string `json:"description"`
	Content        string `json:"content"`
	Exercise       string `json:"exercise"`
	Difficulty     string `json:"difficulty"`
	EstimatedTime  int    `json:"estimated_time"`
	PointsPossible int    `json:"points_possible"`
}
