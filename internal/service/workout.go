package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"liftlog/internal/domain"
)

// WorkoutService encapsulates workout logging use cases.
type WorkoutService struct {
	repo domain.WorkoutRepository
}

func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

type AddWorkoutInput struct {
	PerformedOn time.Time
	Exercises   []domain.Exercise
	DurationMin *int
	Notes       string
}

// Add validates and stores a new workout, returning its id.
func (s *WorkoutService) Add(ctx context.Context, in AddWorkoutInput) (int64, error) {
	exercises, err := normalizeExercises(in.Exercises)
	if err != nil {
		return 0, err
	}
	if in.PerformedOn.IsZero() {
		in.PerformedOn = time.Now()
	}
	if in.DurationMin != nil && *in.DurationMin <= 0 {
		return 0, fmt.Errorf("%w: duration must be > 0", domain.ErrInvalidInput)
	}
	w := domain.Workout{
		PerformedOn: in.PerformedOn,
		Exercises:   exercises,
		DurationMin: in.DurationMin,
		Notes:       strings.TrimSpace(in.Notes),
	}
	return s.repo.CreateWorkout(ctx, &w)
}

func (s *WorkoutService) Get(ctx context.Context, id int64) (*domain.Workout, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: workout id must be > 0", domain.ErrInvalidInput)
	}
	return s.repo.GetWorkout(ctx, id)
}

func (s *WorkoutService) List(ctx context.Context, f domain.WorkoutFilter) ([]domain.Workout, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, fmt.Errorf("%w: from date must be <= to date", domain.ErrInvalidInput)
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	return s.repo.ListWorkouts(ctx, f)
}

// ReplaceExercises swaps the workout's exercise list after validation.
func (s *WorkoutService) ReplaceExercises(ctx context.Context, workoutID int64, exercises []domain.Exercise) error {
	if workoutID <= 0 {
		return fmt.Errorf("%w: workout id must be > 0", domain.ErrInvalidInput)
	}
	normalized, err := normalizeExercises(exercises)
	if err != nil {
		return err
	}
	return s.repo.ReplaceExercises(ctx, workoutID, normalized)
}

func (s *WorkoutService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: workout id must be > 0", domain.ErrInvalidInput)
	}
	return s.repo.DeleteWorkout(ctx, id)
}

func normalizeExercises(exercises []domain.Exercise) ([]domain.Exercise, error) {
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: workout needs at least one exercise", domain.ErrInvalidInput)
	}
	out := make([]domain.Exercise, 0, len(exercises))
	for _, e := range exercises {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("%w: exercise name is required", domain.ErrInvalidInput)
		}
		if e.Category == "" {
			e.Category = domain.CategoryOther
		} else {
			category, err := domain.ParseExerciseCategory(string(e.Category))
			if err != nil {
				return nil, err
			}
			e.Category = category
		}
		if len(e.Sets) == 0 {
			return nil, fmt.Errorf("%w: exercise %q needs at least one set", domain.ErrInvalidInput, e.Name)
		}
		for _, set := range e.Sets {
			if set.Reps < 1 {
				return nil, fmt.Errorf("%w: reps must be >= 1 for %q", domain.ErrInvalidInput, e.Name)
			}
			if set.Weight < 0 {
				return nil, fmt.Errorf("%w: weight must be >= 0 for %q", domain.ErrInvalidInput, e.Name)
			}
			if set.RestSec != nil && *set.RestSec <= 0 {
				return nil, fmt.Errorf("%w: rest must be > 0 for %q", domain.ErrInvalidInput, e.Name)
			}
		}
		e.Notes = strings.TrimSpace(e.Notes)
		out = append(out, e)
	}
	return out, nil
}
