package cli

import (
	"fmt"
	"time"

	"alcyxob/workout-tracker/internal/advisor"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/planner"
)

type FeaturesCmd struct {
	Date  string   `help:"Reference date (YYYY-MM-DD), defaults to today."`
	Group []string `short:"g" help:"Muscle groups to score, defaults to every logged group."`
}

func (c *FeaturesCmd) Run(ctx *Context) error {
	var ref time.Time
	if c.Date != "" {
		parsed, ok := domain.ParseDate(c.Date)
		if !ok {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
		ref = parsed
	}
	report := ctx.Recommendations.Readiness(ctx.Ctx, ctx.Workouts.All(ctx.Ctx), c.Group, ref)
	return ctx.printJSON(report)
}

type PlanCmd struct {
	Group string `arg:"" help:"Muscle group."`
	Exact bool   `help:"Match logged exercise names exactly when looking up target weights."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	var matcher planner.Matcher
	if c.Exact {
		matcher = planner.ExactMatcher{}
	}
	plan := planner.NewBuilder(matcher).Build(c.Group, ctx.Workouts.All(ctx.Ctx))
	if len(plan.Items) == 0 {
		return fmt.Errorf("no template for group %q", c.Group)
	}
	return ctx.printJSON(plan)
}

type RecommendCmd struct {
	Strategy string `enum:"remote,heuristic" default:"heuristic" help:"Group selection strategy."`
}

func (c *RecommendCmd) Run(ctx *Context) error {
	res, err := ctx.Recommendations.Recommend(ctx.Ctx, c.Strategy, ctx.Workouts.All(ctx.Ctx))
	if err != nil {
		return err
	}
	return ctx.printJSON(res)
}

type ScriptCmd struct {
	Name  string `help:"Athlete name."`
	Group string `short:"g" help:"Today's group, defaults to the heuristic choice."`
}

func (c *ScriptCmd) Run(ctx *Context) error {
	b, err := ctx.Coach.MorningBriefing(ctx.Ctx, c.Name, c.Group)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, b.Script)
	return nil
}

type SessionsCmd struct {
	Limit int `default:"200" help:"Most recent entries to summarize."`
}

func (c *SessionsCmd) Run(ctx *Context) error {
	history := advisor.CapHistory(ctx.Workouts.All(ctx.Ctx), c.Limit)
	return ctx.printJSON(advisor.SummarizeSessions(history))
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	return ctx.printJSON(ctx.Coach.Stats(ctx.Ctx))
}
