package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"alcyxob/workout-tracker/internal/advisor"
	"alcyxob/workout-tracker/internal/cli"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
)

func main() {
	var commands cli.CLI
	kctx := kong.Parse(&commands,
		kong.Name("workoutctl"),
		kong.Description("Inspect and edit the workout log from the terminal"),
		kong.UsageOnError(),
	)

	if err := run(kctx, commands.Config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context, configPath string) (err error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logging.Setup(logging.LoggerSetupParams{LogFileName: cfg.Log.File, LogLevel: "warn"})
	if cfg.Log.File == "" {
		// keep stdout machine readable
		log.SetOutput(os.Stderr)
	}

	ctx := context.Background()
	repo, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, repo.Close(ctx))
	}()

	workouts, err := service.NewWorkoutService(ctx, repo, service.WorkoutStoreOptions{
		Key:  cfg.Storage.Key,
		Seed: cfg.Storage.Seed,
	})
	if err != nil {
		return err
	}
	recs := service.NewRecommendationService(
		advisor.NewOpenAIAdvisor(cfg.OpenAI, cfg.Coach.Name),
		service.RecommendationOptions{HistoryCap: cfg.Coach.HistoryCap},
	)

	return kctx.Run(&cli.Context{
		Ctx:             ctx,
		Workouts:        workouts,
		Recommendations: recs,
		Coach:           service.NewCoachService(workouts, recs, nil, cfg.Coach.Name, nil),
		Out:             os.Stdout,
	})
}
