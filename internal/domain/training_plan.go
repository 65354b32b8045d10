package domain

// PlanItem is a concrete exercise prescription inside a Plan.
type PlanItem struct {
	Exercise        string   `json:"exercise"`
	Sets            int      `json:"sets"`
	Reps            string   `json:"reps"`            // Rendered "low–high"
	TargetWeightLbs *float64 `json:"targetWeightLbs"` // null when there is no prior matching set
	Notes           string   `json:"notes"`
}

// Plan is a session plan for one muscle group.
type Plan struct {
	Group string     `json:"group"`
	Items []PlanItem `json:"items"`
	Cue   string     `json:"cue"`
}

// Recommendation is a scored muscle-group suggestion.
type Recommendation struct {
	MuscleGroup string  `json:"muscleGroup"`
	ReadyScore  float64 `json:"readyScore"`
	Ready       bool    `json:"ready"`
}
