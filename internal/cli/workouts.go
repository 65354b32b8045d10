package cli

import (
	"fmt"
	"time"

	"alcyxob/workout-tracker/internal/domain"
)

type ListCmd struct {
	Asc bool `help:"Oldest first."`
}

func (c *ListCmd) Run(ctx *Context) error {
	entries := ctx.Workouts.All(ctx.Ctx)
	domain.SortEntries(entries, c.Asc)
	return ctx.printJSON(entries)
}

type AddCmd struct {
	Exercise string  `arg:"" help:"Exercise name."`
	Group    string  `short:"g" required:"" help:"Muscle group."`
	Date     string  `help:"Date (YYYY-MM-DD), defaults to today."`
	Set      int     `default:"1" help:"Set number."`
	Weight   float64 `short:"w" help:"Weight in lbs."`
	Reps     int     `short:"r" help:"Reps."`
	Notes    string  `help:"Free-form notes."`
	Done     bool    `help:"Mark the set as completed."`
}

func (c *AddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	entry := domain.WorkoutEntry{
		Date:        date,
		Exercise:    c.Exercise,
		Set:         c.Set,
		WeightLbs:   c.Weight,
		Reps:        c.Reps,
		MuscleGroup: c.Group,
		Notes:       c.Notes,
	}
	added, err := ctx.Workouts.Add(ctx.Ctx, entry)
	if err != nil {
		return err
	}
	if c.Done {
		if added, err = ctx.Workouts.MarkDone(ctx.Ctx, added.ID); err != nil {
			return err
		}
	}
	return ctx.printJSON(added)
}

type DoneCmd struct {
	ID int `arg:"" help:"Entry id."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	entry, err := ctx.Workouts.MarkDone(ctx.Ctx, c.ID)
	if err != nil {
		return err
	}
	return ctx.printJSON(entry)
}

type DeleteCmd struct {
	ID int `arg:"" help:"Entry id."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Workouts.Delete(ctx.Ctx, c.ID); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "✓ Deleted entry %d\n", c.ID)
	return nil
}
