package planner

import "alcyxob/workout-tracker/internal/domain"

var groupOrder = []string{"Chest", "Back", "Shoulders", "Biceps", "Triceps", "Legs"}

var library = map[string][]domain.ExerciseBlock{
	"Chest": {
		{Name: "Dumbbell Bench Press", Sets: 3, RepRange: [2]int{8, 12}, Emphasis: "3s down, drive up"},
		{Name: "Incline DB Press", Sets: 3, RepRange: [2]int{8, 12}},
		{Name: "DB/Cable Fly", Sets: 3, RepRange: [2]int{12, 15}, Emphasis: "slow stretch, squeeze"},
	},
	"Back": {
		{Name: "Lat Pulldown", Sets: 3, RepRange: [2]int{8, 12}},
		{Name: "Seated Cable Row", Sets: 3, RepRange: [2]int{8, 12}},
		{Name: "Face Pull", Sets: 3, RepRange: [2]int{12, 15}},
	},
	"Shoulders": {
		{Name: "DB Overhead Press", Sets: 3, RepRange: [2]int{6, 10}},
		{Name: "Lateral Raise", Sets: 4, RepRange: [2]int{12, 15}},
		{Name: "Rear Delt Fly", Sets: 3, RepRange: [2]int{12, 15}},
	},
	"Biceps": {
		{Name: "DB Curl", Sets: 3, RepRange: [2]int{8, 12}},
		{Name: "Incline DB Curl", Sets: 3, RepRange: [2]int{10, 12}},
		{Name: "Cable Curl", Sets: 3, RepRange: [2]int{12, 15}},
	},
	"Triceps": {
		{Name: "Cable Pressdown", Sets: 3, RepRange: [2]int{10, 12}},
		{Name: "Overhead Rope Ext", Sets: 3, RepRange: [2]int{10, 12}},
		{Name: "Bench Dips", Sets: 3, RepRange: [2]int{12, 15}},
	},
	"Legs": {
		{Name: "Goblet Squat", Sets: 4, RepRange: [2]int{8, 12}},
		{Name: "Romanian Deadlift", Sets: 3, RepRange: [2]int{6, 10}},
		{Name: "Walking Lunge", Sets: 3, RepRange: [2]int{10, 12}},
	},
}

// Template returns a copy of the exercise blocks for a group, nil if unknown.
func Template(group string) []domain.ExerciseBlock {
	blocks, ok := library[group]
	if !ok {
		return nil
	}
	out := make([]domain.ExerciseBlock, len(blocks))
	copy(out, blocks)
	return out
}

// Groups lists the groups that have a template.
func Groups() []string {
	out := make([]string, len(groupOrder))
	copy(out, groupOrder)
	return out
}
