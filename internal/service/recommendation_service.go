package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/workout-tracker/internal/advisor"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/llm"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/planner"
	"alcyxob/workout-tracker/internal/readiness"

	"github.com/sirupsen/logrus"
)

const (
	StrategyRemote    = "remote"
	StrategyHeuristic = "heuristic"

	// remoteReadyScore is reported for a group chosen by the remote coach,
	// which does not score its choice.
	remoteReadyScore = 0.95
)

var (
	ErrUnknownStrategy   = errors.New("unknown recommendation strategy")
	ErrMissingCredential = llm.ErrMissingCredential
)

// RecommendationError is a failed remote recommendation with a message fit
// for the client.
type RecommendationError struct {
	Message string
	Err     error
}

func (e *RecommendationError) Error() string { return e.Message }
func (e *RecommendationError) Unwrap() error { return e.Err }

type RecommendResult struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Chosen          domain.Recommendation   `json:"chosen"`
	Plan            domain.Plan             `json:"plan"`
}

type ReadinessReport struct {
	Features        []readiness.Feature     `json:"features"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Chosen          *domain.Recommendation  `json:"chosen"`
}

// --- Service Interface ---

type RecommendationService interface {
	// Recommend picks today's group and plan from history. An empty strategy
	// means StrategyRemote.
	Recommend(ctx context.Context, strategy string, history []domain.WorkoutEntry) (*RecommendResult, error)
	// Readiness scores groups as of ref (zero means now). Empty groups means
	// every group seen in history.
	Readiness(ctx context.Context, history []domain.WorkoutEntry, groups []string, ref time.Time) ReadinessReport
}

type RecommendationOptions struct {
	HistoryCap int                // defaults to advisor.DefaultHistoryCap
	Selector   readiness.Selector // defaults to readiness.HeuristicSelector
	Planner    *planner.Builder   // defaults to a contains-matching builder
	Metrics    *metrics.Manager   // optional
	Now        func() time.Time
}

// --- Service Implementation ---

type recommendationService struct {
	advisor    advisor.Advisor
	historyCap int
	selector   readiness.Selector
	planner    *planner.Builder
	metrics    *metrics.Manager
	now        func() time.Time
}

func NewRecommendationService(adv advisor.Advisor, opts RecommendationOptions) RecommendationService {
	s := &recommendationService{
		advisor:    adv,
		historyCap: opts.HistoryCap,
		selector:   opts.Selector,
		planner:    opts.Planner,
		metrics:    opts.Metrics,
		now:        opts.Now,
	}
	if s.historyCap <= 0 {
		s.historyCap = advisor.DefaultHistoryCap
	}
	if s.selector == nil {
		s.selector = readiness.HeuristicSelector{}
	}
	if s.planner == nil {
		s.planner = planner.NewBuilder(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *recommendationService) Recommend(ctx context.Context, strategy string, history []domain.WorkoutEntry) (result *RecommendResult, err error) {
	if strategy == "" {
		strategy = StrategyRemote
	}
	defer func() {
		if s.metrics == nil {
			return
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.CounterRecommendations.WithLabelValues(strategy, outcome).Inc()
	}()

	switch strategy {
	case StrategyRemote:
		return s.recommendRemote(ctx, history)
	case StrategyHeuristic:
		return s.recommendHeuristic(history), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

func (s *recommendationService) recommendRemote(ctx context.Context, history []domain.WorkoutEntry) (*RecommendResult, error) {
	sessions := advisor.SummarizeSessions(advisor.CapHistory(history, s.historyCap))

	plan, err := s.advisor.Recommend(ctx, sessions)
	if errors.Is(err, ErrMissingCredential) {
		logrus.Error("recommend: OPENAI_API_KEY is missing")
		return nil, err
	}
	if err != nil {
		logrus.WithError(err).Error("recommend: remote coach failed")
		return nil, &RecommendationError{Message: llm.ErrorMessage(err, "Recommendation failed"), Err: err}
	}
	if plan.Items == nil {
		plan.Items = []domain.PlanItem{}
	}

	chosen := domain.Recommendation{MuscleGroup: plan.Group, ReadyScore: remoteReadyScore, Ready: true}
	return &RecommendResult{
		Recommendations: []domain.Recommendation{chosen},
		Chosen:          chosen,
		Plan:            *plan,
	}, nil
}

func (s *recommendationService) recommendHeuristic(history []domain.WorkoutEntry) *RecommendResult {
	var groups []string
	if len(history) == 0 {
		groups = planner.Groups()
	}
	features := readiness.BuildTodayFeatures(history, groups, s.now())
	pick, _ := s.selector.Select(features)

	return &RecommendResult{
		Recommendations: readiness.Recommendations(features),
		Chosen:          readiness.ToRecommendation(pick),
		Plan:            s.planner.Build(pick.Group, history),
	}
}

func (s *recommendationService) Readiness(_ context.Context, history []domain.WorkoutEntry, groups []string, ref time.Time) ReadinessReport {
	if ref.IsZero() {
		ref = s.now()
	}
	features := readiness.BuildTodayFeatures(history, groups, ref)
	report := ReadinessReport{
		Features:        features,
		Recommendations: readiness.Recommendations(features),
	}
	if pick, ok := s.selector.Select(features); ok {
		chosen := readiness.ToRecommendation(pick)
		report.Chosen = &chosen
	}
	return report
}
