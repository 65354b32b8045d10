package domain

// ExerciseBlock is one row of a per-group plan template.
type ExerciseBlock struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	RepRange [2]int `json:"repRange"`           // [min, max]
	Emphasis string `json:"emphasis,omitempty"` // Optional coaching cue
}
