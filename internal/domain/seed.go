package domain

// SeedWorkouts returns the starter log used when nothing was persisted yet.
func SeedWorkouts() []WorkoutEntry {
	done := func() *bool { b := true; return &b }
	return []WorkoutEntry{
		{ID: 1, Date: "2025-11-08", Exercise: "Dumbbell Single Biceps Curl", Set: 1, WeightLbs: 15, Reps: 10, MuscleGroup: "Biceps", Done: done(), DoneAt: "2025-11-08T14:30:00Z"},
		{ID: 2, Date: "2025-11-08", Exercise: "Dumbbell Single Biceps Curl", Set: 2, WeightLbs: 17.5, Reps: 10, MuscleGroup: "Biceps", Done: done(), DoneAt: "2025-11-08T14:34:00Z"},
		{ID: 3, Date: "2025-11-08", Exercise: "Dumbbell Single Biceps Curl", Set: 3, WeightLbs: 17.5, Reps: 10, MuscleGroup: "Biceps", Done: done(), DoneAt: "2025-11-08T14:37:00Z"},
	}
}
