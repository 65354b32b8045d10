package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/planner"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout entry not found")
	ErrValidationFailed = errors.New("workout entry validation failed")
)

// DefaultStoreKey is the fixed key the whole log is persisted under.
const DefaultStoreKey = "workoutTrackerData"

// --- Service Interface ---

// WorkoutService is the workout log. Every mutation persists the full log
// before it becomes visible; a failed save leaves the previous state in place.
type WorkoutService interface {
	All(ctx context.Context) []domain.WorkoutEntry
	Get(ctx context.Context, id int) (*domain.WorkoutEntry, error)
	Add(ctx context.Context, entry domain.WorkoutEntry) (*domain.WorkoutEntry, error)
	AddFromPlan(ctx context.Context, plan domain.Plan, date string, markDone bool) ([]domain.WorkoutEntry, error)
	Update(ctx context.Context, id int, entry domain.WorkoutEntry) (*domain.WorkoutEntry, error)
	Delete(ctx context.Context, id int) error
	MarkDone(ctx context.Context, id int) (*domain.WorkoutEntry, error)
}

// WorkoutStoreOptions tunes NewWorkoutService. Zero values are usable.
type WorkoutStoreOptions struct {
	Key     string           // defaults to DefaultStoreKey
	Seed    bool             // start from domain.SeedWorkouts when nothing is persisted
	Metrics *metrics.Manager // optional
	Now     func() time.Time // optional clock for doneAt
}

// --- Service Implementation ---

type workoutService struct {
	repo    repository.BlobRepository
	key     string
	metrics *metrics.Manager
	now     func() time.Time

	mu      sync.RWMutex
	entries []domain.WorkoutEntry
}

// NewWorkoutService loads the persisted log once and returns the service.
func NewWorkoutService(ctx context.Context, repo repository.BlobRepository, opts WorkoutStoreOptions) (WorkoutService, error) {
	s := &workoutService{
		repo:    repo,
		key:     opts.Key,
		metrics: opts.Metrics,
		now:     opts.Now,
	}
	if s.key == "" {
		s.key = DefaultStoreKey
	}
	if s.now == nil {
		s.now = time.Now
	}

	data, err := repo.Load(ctx, s.key)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if opts.Seed {
			s.entries = domain.SeedWorkouts()
		}
		logrus.Infof("no persisted workout log under %q, starting with %d entries", s.key, len(s.entries))
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load workout log: %w", err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("decode workout log: %w", err)
	}
	logrus.Infof("loaded %d workout entries from %q", len(s.entries), s.key)
	return s, nil
}

func (s *workoutService) All(_ context.Context) []domain.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WorkoutEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *workoutService) Get(_ context.Context, id int) (*domain.WorkoutEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrWorkoutNotFound
	}
	e := s.entries[i]
	return &e, nil
}

// Add assigns the next id (1 + current max, 1 when empty) and prepends the entry.
func (s *workoutService) Add(ctx context.Context, entry domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID()
	next := make([]domain.WorkoutEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)

	if err := s.commit(ctx, "add", next); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddFromPlan logs one entry per planned set, prepended as a block in plan order.
func (s *workoutService) AddFromPlan(ctx context.Context, plan domain.Plan, date string, markDone bool) ([]domain.WorkoutEntry, error) {
	if date == "" {
		date = s.now().Format(domain.DateLayout)
	}
	created := planner.EntriesFromPlan(plan, date, markDone)
	if len(created) == 0 {
		return nil, fmt.Errorf("%w: plan has no sets", ErrValidationFailed)
	}
	for _, e := range created {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	doneAt := ""
	if markDone {
		doneAt = s.now().UTC().Format(time.RFC3339)
	}
	for i := range created {
		created[i].ID = id
		created[i].DoneAt = doneAt
		id++
	}

	next := make([]domain.WorkoutEntry, 0, len(s.entries)+len(created))
	next = append(next, created...)
	next = append(next, s.entries...)

	if err := s.commit(ctx, "add_from_plan", next); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the full record in place. The id in the path wins over the body.
// A completed entry sent without doneAt keeps the stored timestamp.
func (s *workoutService) Update(ctx context.Context, id int, entry domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrWorkoutNotFound
	}
	entry.ID = id
	if entry.DoneAt == "" && entry.IsCompleted() {
		entry.DoneAt = s.entries[i].DoneAt
	}
	next := s.cloneEntries()
	next[i] = entry

	if err := s.commit(ctx, "update", next); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *workoutService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrWorkoutNotFound
	}
	next := make([]domain.WorkoutEntry, 0, len(s.entries)-1)
	next = append(next, s.entries[:i]...)
	next = append(next, s.entries[i+1:]...)

	return s.commit(ctx, "delete", next)
}

// MarkDone flags the set as completed. The marker is appended to the notes
// only if it is not there already; doneAt is set the first time only.
func (s *workoutService) MarkDone(ctx context.Context, id int) (*domain.WorkoutEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrWorkoutNotFound
	}
	next := s.cloneEntries()
	e := next[i]

	done := true
	e.Done = &done
	if e.DoneAt == "" {
		e.DoneAt = s.now().UTC().Format(time.RFC3339)
	}
	if !strings.Contains(e.Notes, domain.DoneMarker) {
		if e.Notes != "" {
			e.Notes += " | "
		}
		e.Notes += domain.DoneMarker
	}
	next[i] = e

	if err := s.commit(ctx, "mark_done", next); err != nil {
		return nil, err
	}
	return &e, nil
}

// commit persists next as one unit and only then swaps it in. Callers hold mu.
func (s *workoutService) commit(ctx context.Context, op string, next []domain.WorkoutEntry) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode workout log: %w", err)
	}
	if err := s.repo.Save(ctx, s.key, data); err != nil {
		logrus.WithError(err).Errorf("workout log %s: save failed, keeping previous state", op)
		return fmt.Errorf("save workout log: %w", err)
	}
	s.entries = next
	if s.metrics != nil {
		s.metrics.CounterStoreMutations.WithLabelValues(op).Inc()
	}
	return nil
}

func (s *workoutService) nextID() int {
	maxID := 0
	for _, e := range s.entries {
		maxID = max(maxID, e.ID)
	}
	return maxID + 1
}

func (s *workoutService) indexOf(id int) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *workoutService) cloneEntries() []domain.WorkoutEntry {
	out := make([]domain.WorkoutEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func validateEntry(e domain.WorkoutEntry) error {
	switch {
	case strings.TrimSpace(e.Date) == "":
		return fmt.Errorf("%w: date is required", ErrValidationFailed)
	case !validDate(e.Date):
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidationFailed)
	case strings.TrimSpace(e.Exercise) == "":
		return fmt.Errorf("%w: exercise is required", ErrValidationFailed)
	case strings.TrimSpace(e.MuscleGroup) == "":
		return fmt.Errorf("%w: muscleGroup is required", ErrValidationFailed)
	case e.Set < 1:
		return fmt.Errorf("%w: set must be positive", ErrValidationFailed)
	case e.WeightLbs < 0:
		return fmt.Errorf("%w: weightLbs must not be negative", ErrValidationFailed)
	case e.Reps < 0:
		return fmt.Errorf("%w: reps must not be negative", ErrValidationFailed)
	}
	return nil
}

func validDate(s string) bool {
	_, ok := domain.ParseDate(s)
	return ok
}
