package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type ExerciseCategory string

const (
	CategoryChest     ExerciseCategory = "chest"
	CategoryBack      ExerciseCategory = "back"
	CategoryLegs      ExerciseCategory = "legs"
	CategoryShoulders ExerciseCategory = "shoulders"
	CategoryArms      ExerciseCategory = "arms"
	CategoryCore      ExerciseCategory = "core"
	CategoryCardio    ExerciseCategory = "cardio"
	CategoryOther     ExerciseCategory = "other"
)

// Categories lists every known exercise category in display order.
func Categories() []ExerciseCategory {
	return []ExerciseCategory{
		CategoryChest, CategoryBack, CategoryLegs, CategoryShoulders,
		CategoryArms, CategoryCore, CategoryCardio, CategoryOther,
	}
}

func ParseExerciseCategory(value string) (ExerciseCategory, error) {
	c := ExerciseCategory(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, value)
}

// ExerciseSet is one reps-at-weight unit within an exercise.
type ExerciseSet struct {
	ID      int64   `json:"id"`
	Reps    int     `json:"reps"`
	Weight  float64 `json:"weight"`
	RestSec *int    `json:"restSec,omitempty"`
}

// Volume is the training-load contribution of the set: weight × reps.
func (s ExerciseSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// Exercise is a named movement with its ordered sets, owned by one workout.
type Exercise struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Category ExerciseCategory `json:"category"`
	Sets     []ExerciseSet    `json:"sets"`
	Notes    string           `json:"notes,omitempty"`
}

func (e Exercise) Volume() float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

// Workout is a dated training session containing ordered exercises.
type Workout struct {
	ID          int64      `json:"id"`
	PerformedOn time.Time  `json:"performedOn"`
	Exercises   []Exercise `json:"exercises"`
	DurationMin *int       `json:"durationMin,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TotalVolume sums weight × reps across every set of every exercise.
func (w Workout) TotalVolume() float64 {
	var total float64
	for _, e := range w.Exercises {
		total += e.Volume()
	}
	return total
}

func (w Workout) TotalSets() int {
	var n int
	for _, e := range w.Exercises {
		n += len(e.Sets)
	}
	return n
}

func (w Workout) IsEmpty() bool {
	return len(w.Exercises) == 0
}

// WorkoutFilter narrows workout listings. Zero From/To mean unbounded.
type WorkoutFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

// WorkoutRepository is the port for workout persistence.
type WorkoutRepository interface {
	CreateWorkout(ctx context.Context, w *Workout) (int64, error)
	GetWorkout(ctx context.Context, id int64) (*Workout, error)
	ListWorkouts(ctx context.Context, f WorkoutFilter) ([]Workout, error)
	ReplaceExercises(ctx context.Context, workoutID int64, exercises []Exercise) error
	DeleteWorkout(ctx context.Context, id int64) error
	// WorkoutCountsByDay returns, keyed by DayKey, how many workouts fall on
	// each day within [from, to] inclusive.
	WorkoutCountsByDay(ctx context.Context, from, to time.Time) (map[string]int, error)
}
