// Package memory implements the domain repositories in memory for tests
// and demo use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"liftlog/internal/domain"
)

// Store implements every repository port over in-memory slices.
type Store struct {
	mu        sync.Mutex
	workouts  []domain.Workout
	goals     []domain.Goal
	progress  []domain.GoalProgressRecord
	templates []domain.ExerciseTemplate
	settings  map[string]string

	workoutID  int64
	exerciseID int64
	setID      int64
	goalID     int64
	progressID int64
	templateID int64
}

func New() *Store {
	return &Store{settings: make(map[string]string)}
}

// Ensure interfaces are met.
var _ domain.WorkoutRepository = (*Store)(nil)
var _ domain.GoalRepository = (*Store)(nil)
var _ domain.TemplateRepository = (*Store)(nil)
var _ domain.SettingsRepository = (*Store)(nil)

// --- WorkoutRepository ---

func (s *Store) CreateWorkout(ctx context.Context, w *domain.Workout) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workoutID++
	stored := cloneWorkout(*w)
	stored.ID = s.workoutID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.assignExerciseIDs(&stored)
	s.workouts = append(s.workouts, stored)
	return stored.ID, nil
}

func (s *Store) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.workouts {
		if w.ID == id {
			out := cloneWorkout(w)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("workout %d: %w", id, domain.ErrNotFound)
}

func (s *Store) ListWorkouts(ctx context.Context, f domain.WorkoutFilter) ([]domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Workout, 0)
	for _, w := range s.workouts {
		// date filtering is day-granular, matching the sqlite store
		day := domain.DayKey(w.PerformedOn)
		if !f.From.IsZero() && day < domain.DayKey(f.From) {
			continue
		}
		if !f.To.IsZero() && day > domain.DayKey(f.To) {
			continue
		}
		out = append(out, cloneWorkout(w))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PerformedOn.Equal(out[j].PerformedOn) {
			return out[i].PerformedOn.After(out[j].PerformedOn)
		}
		return out[i].ID > out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) ReplaceExercises(ctx context.Context, workoutID int64, exercises []domain.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workouts {
		if s.workouts[i].ID == workoutID {
			s.workouts[i].Exercises = cloneExercises(exercises)
			s.workouts[i].UpdatedAt = time.Now()
			s.assignExerciseIDs(&s.workouts[i])
			return nil
		}
	}
	return fmt.Errorf("workout %d: %w", workoutID, domain.ErrNotFound)
}

func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workouts {
		if s.workouts[i].ID == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("workout %d: %w", id, domain.ErrNotFound)
}

func (s *Store) WorkoutCountsByDay(ctx context.Context, from, to time.Time) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, w := range s.workouts {
		day := domain.DayKey(w.PerformedOn)
		if day < domain.DayKey(from) || day > domain.DayKey(to) {
			continue
		}
		counts[day]++
	}
	return counts, nil
}

// --- GoalRepository ---

func (s *Store) CreateGoal(ctx context.Context, g *domain.Goal) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goalID++
	stored := *g
	stored.ID = s.goalID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.goals = append(s.goals, stored)
	return stored.ID, nil
}

func (s *Store) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.goals {
		if g.ID == id {
			out := g
			return &out, nil
		}
	}
	return nil, fmt.Errorf("goal %d: %w", id, domain.ErrNotFound)
}

func (s *Store) ListGoals(ctx context.Context, includeCompleted bool) ([]domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Goal, 0)
	for _, g := range s.goals {
		if !includeCompleted && g.IsCompleted {
			continue
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			updated := *g
			updated.CreatedAt = s.goals[i].CreatedAt
			updated.UpdatedAt = time.Now()
			s.goals[i] = updated
			return nil
		}
	}
	return fmt.Errorf("goal %d: %w", g.ID, domain.ErrNotFound)
}

func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			// progress records cascade with their goal
			kept := s.progress[:0]
			for _, r := range s.progress {
				if r.GoalID != id {
					kept = append(kept, r)
				}
			}
			s.progress = kept
			return nil
		}
	}
	return fmt.Errorf("goal %d: %w", id, domain.ErrNotFound)
}

func (s *Store) AddProgressRecord(ctx context.Context, r *domain.GoalProgressRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progressID++
	stored := *r
	stored.ID = s.progressID
	stored.CreatedAt = time.Now()
	s.progress = append(s.progress, stored)
	return stored.ID, nil
}

func (s *Store) ListProgressRecords(ctx context.Context, goalID int64) ([]domain.GoalProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.GoalProgressRecord, 0)
	for _, r := range s.progress {
		if r.GoalID == goalID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].RecordedOn.Equal(out[j].RecordedOn) {
			return out[i].RecordedOn.Before(out[j].RecordedOn)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// --- TemplateRepository ---

func (s *Store) CreateTemplate(ctx context.Context, t *domain.ExerciseTemplate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.templates {
		if existing.Name == t.Name {
			return 0, fmt.Errorf("%w: template %q already exists", domain.ErrInvalidInput, t.Name)
		}
	}
	s.templateID++
	stored := *t
	stored.ID = s.templateID
	stored.CreatedAt = time.Now()
	s.templates = append(s.templates, stored)
	return stored.ID, nil
}

func (s *Store) GetTemplate(ctx context.Context, id int64) (*domain.ExerciseTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.templates {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
}

func (s *Store) ListTemplates(ctx context.Context, category domain.ExerciseCategory) ([]domain.ExerciseTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ExerciseTemplate, 0)
	for _, t := range s.templates {
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) DeleteTemplate(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
}

// --- SettingsRepository ---

func (s *Store) GetSetting(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.settings[key]
	return value, ok, nil
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings[key] = value
	return nil
}

func (s *Store) ListSettings(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.settings))
	for k, v := range s.settings {
		out[k] = v
	}
	return out, nil
}

func (s *Store) assignExerciseIDs(w *domain.Workout) {
	for i := range w.Exercises {
		if w.Exercises[i].ID == 0 {
			s.exerciseID++
			w.Exercises[i].ID = s.exerciseID
		}
		for j := range w.Exercises[i].Sets {
			if w.Exercises[i].Sets[j].ID == 0 {
				s.setID++
				w.Exercises[i].Sets[j].ID = s.setID
			}
		}
	}
}

func cloneWorkout(w domain.Workout) domain.Workout {
	w.Exercises = cloneExercises(w.Exercises)
	return w
}

func cloneExercises(exercises []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, len(exercises))
	copy(out, exercises)
	for i := range out {
		sets := make([]domain.ExerciseSet, len(out[i].Sets))
		copy(sets, out[i].Sets)
		out[i].Sets = sets
	}
	return out
}
