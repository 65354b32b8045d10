package service

import (
	"context"
	"errors"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/script"
	"alcyxob/workout-tracker/internal/speech"

	"github.com/sirupsen/logrus"
)

// DefaultAthlete is greeted when no name is configured or given.
const DefaultAthlete = "Viradeth"

type MorningBriefing struct {
	Summary domain.DaySummary `json:"summary"`
	Group   string            `json:"group"`
	Why     string            `json:"why"`
	Script  string            `json:"script"`
}

type WorkoutStats struct {
	TotalSets     int               `json:"totalSets"`
	CompletedSets int               `json:"completedSets"`
	TotalVolume   float64           `json:"totalVolume"`
	TrainingDays  int               `json:"trainingDays"`
	LastDay       domain.DaySummary `json:"lastDay"`
}

// --- Service Interface ---

// CoachService composes what the morning coach says and how it sounds.
type CoachService interface {
	// MorningBriefing narrates the stored log. An empty group is filled in
	// with the heuristic choice; an empty name uses the configured athlete.
	MorningBriefing(ctx context.Context, name, group string) (*MorningBriefing, error)
	Narrate(ctx context.Context, text string, opts speech.Options) (*speech.Playback, error)
	Voices(ctx context.Context) ([]speech.Voice, error)
	Stats(ctx context.Context) WorkoutStats
}

// --- Service Implementation ---

type coachService struct {
	workouts WorkoutService
	recs     RecommendationService
	speaker  speech.Speaker
	athlete  string
	metrics  *metrics.Manager
}

func NewCoachService(workouts WorkoutService, recs RecommendationService, speaker speech.Speaker, athlete string, m *metrics.Manager) CoachService {
	if strings.TrimSpace(athlete) == "" {
		athlete = DefaultAthlete
	}
	return &coachService{
		workouts: workouts,
		recs:     recs,
		speaker:  speaker,
		athlete:  athlete,
		metrics:  m,
	}
}

func (s *coachService) MorningBriefing(ctx context.Context, name, group string) (*MorningBriefing, error) {
	if strings.TrimSpace(name) == "" {
		name = s.athlete
	}
	history := s.workouts.All(ctx)

	if group == "" && len(history) > 0 {
		res, err := s.recs.Recommend(ctx, StrategyHeuristic, history)
		if err != nil {
			return nil, err
		}
		group = res.Chosen.MuscleGroup
	}

	summary := script.SummarizeLastDay(history)
	return &MorningBriefing{
		Summary: summary,
		Group:   group,
		Why:     script.BuildWhyLine(summary, group),
		Script:  script.BuildMorningScript(name, summary, group),
	}, nil
}

func (s *coachService) Narrate(ctx context.Context, text string, opts speech.Options) (*speech.Playback, error) {
	p, err := s.speaker.Speak(ctx, text, opts)

	outcome, cache := "ok", "miss"
	switch {
	case errors.Is(err, speech.ErrEmptyText):
		outcome = "bad_request"
	case err != nil:
		outcome = "error"
		if !errors.Is(err, ErrMissingCredential) {
			logrus.WithError(err).Error("narrate: speech synthesis failed")
		}
	case p.Cached:
		cache = "hit"
	}
	if s.metrics != nil {
		s.metrics.CounterVoiceRequests.WithLabelValues(outcome, cache).Inc()
	}
	return p, err
}

func (s *coachService) Voices(ctx context.Context) ([]speech.Voice, error) {
	return s.speaker.ListVoices(ctx)
}

func (s *coachService) Stats(ctx context.Context) WorkoutStats {
	return BuildStats(s.workouts.All(ctx))
}

// BuildStats aggregates the log into the dashboard counters.
func BuildStats(entries []domain.WorkoutEntry) WorkoutStats {
	stats := WorkoutStats{TotalSets: len(entries), LastDay: script.SummarizeLastDay(entries)}
	days := make(map[string]struct{})
	for _, e := range entries {
		stats.TotalVolume += e.Volume()
		if e.IsCompleted() {
			stats.CompletedSets++
		}
		days[e.Date] = struct{}{}
	}
	stats.TrainingDays = len(days)
	return stats
}
