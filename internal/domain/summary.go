package domain

// DaySummary describes what was trained on one calendar day.
// Date is nil when there is no history at all.
type DaySummary struct {
	Date         *string  `json:"date"`
	MuscleGroups []string `json:"muscleGroups"`
	Exercises    []string `json:"exercises"`
}

// SessionSummary is a compact per-date view of the log sent to the remote coach.
type SessionSummary struct {
	Date         string         `json:"date"`
	MuscleGroups []string       `json:"muscleGroups"`
	Exercises    []string       `json:"exercises"`
	TotalSets    int            `json:"totalSets"`
	TotalReps    int            `json:"totalReps"`
	Entries      []WorkoutEntry `json:"entries"`
}
