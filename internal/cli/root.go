// Package cli implements the workoutctl subcommands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"alcyxob/workout-tracker/internal/service"
)

// Context is handed to every command's Run.
type Context struct {
	Ctx             context.Context
	Workouts        service.WorkoutService
	Recommendations service.RecommendationService
	Coach           service.CoachService
	Out             io.Writer
}

func (c *Context) printJSON(v any) error {
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// CLI is the workoutctl command tree.
type CLI struct {
	Config string `help:"Directory holding config.yaml." type:"path" default:"."`

	List      ListCmd      `cmd:"" help:"List logged sets." default:"1"`
	Add       AddCmd       `cmd:"" help:"Log a set."`
	Done      DoneCmd      `cmd:"" help:"Mark a set as completed."`
	Delete    DeleteCmd    `cmd:"" help:"Delete a set."`
	Features  FeaturesCmd  `cmd:"" help:"Show readiness features per muscle group."`
	Plan      PlanCmd      `cmd:"" help:"Build today's plan for a muscle group."`
	Recommend RecommendCmd `cmd:"" help:"Recommend today's muscle group and plan."`
	Script    ScriptCmd    `cmd:"" help:"Print the morning script."`
	Sessions  SessionsCmd  `cmd:"" help:"Summarize the log per training day."`
	Stats     StatsCmd     `cmd:"" help:"Show dashboard counters."`
}
