package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/domain"
	"liftlog/internal/memory"
)

func benchPress(weight float64, reps ...int) domain.Exercise {
	sets := make([]domain.ExerciseSet, 0, len(reps))
	for _, r := range reps {
		sets = append(sets, domain.ExerciseSet{Reps: r, Weight: weight})
	}
	return domain.Exercise{Name: "bench press", Category: domain.CategoryChest, Sets: sets}
}

func TestWorkoutServiceAddAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(memory.New())

	day := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.Local)
	duration := 55
	id, err := svc.Add(ctx, AddWorkoutInput{
		PerformedOn: day,
		Exercises:   []domain.Exercise{benchPress(100, 5, 5, 5)},
		DurationMin: &duration,
		Notes:       "  push day  ",
	})
	require.NoError(t, err)

	w, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "push day", w.Notes)
	assert.Equal(t, 3, w.TotalSets())
	assert.Equal(t, 1500.0, w.TotalVolume())
	require.NotNil(t, w.DurationMin)
	assert.Equal(t, 55, *w.DurationMin)
}

func TestWorkoutServiceAddValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(memory.New())
	badDuration := -10
	badRest := 0

	cases := []struct {
		name string
		in   AddWorkoutInput
	}{
		{"no exercises", AddWorkoutInput{}},
		{"blank name", AddWorkoutInput{Exercises: []domain.Exercise{
			{Name: "  ", Sets: []domain.ExerciseSet{{Reps: 5, Weight: 10}}},
		}}},
		{"no sets", AddWorkoutInput{Exercises: []domain.Exercise{{Name: "squat"}}}},
		{"zero reps", AddWorkoutInput{Exercises: []domain.Exercise{
			{Name: "squat", Sets: []domain.ExerciseSet{{Reps: 0, Weight: 10}}},
		}}},
		{"negative weight", AddWorkoutInput{Exercises: []domain.Exercise{
			{Name: "squat", Sets: []domain.ExerciseSet{{Reps: 5, Weight: -1}}},
		}}},
		{"bad category", AddWorkoutInput{Exercises: []domain.Exercise{
			{Name: "squat", Category: "forearms", Sets: []domain.ExerciseSet{{Reps: 5, Weight: 10}}},
		}}},
		{"bad rest", AddWorkoutInput{Exercises: []domain.Exercise{
			{Name: "squat", Sets: []domain.ExerciseSet{{Reps: 5, Weight: 10, RestSec: &badRest}}},
		}}},
		{"bad duration", AddWorkoutInput{
			Exercises:   []domain.Exercise{benchPress(100, 5)},
			DurationMin: &badDuration,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestWorkoutServiceAddDefaultsCategoryAndDate(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(memory.New())

	id, err := svc.Add(ctx, AddWorkoutInput{Exercises: []domain.Exercise{
		{Name: "farmer carry", Sets: []domain.ExerciseSet{{Reps: 1, Weight: 40}}},
	}})
	require.NoError(t, err)

	w, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, w.Exercises[0].Category)
	assert.Equal(t, domain.DayKey(time.Now()), domain.DayKey(w.PerformedOn))
}

func TestWorkoutServiceListRange(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(memory.New())

	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		_, err := svc.Add(ctx, AddWorkoutInput{
			PerformedOn: base.AddDate(0, 0, i*2),
			Exercises:   []domain.Exercise{benchPress(80, 8)},
		})
		require.NoError(t, err)
	}

	got, err := svc.List(ctx, domain.WorkoutFilter{
		From: base.AddDate(0, 0, 2),
		To:   base.AddDate(0, 0, 6),
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = svc.List(ctx, domain.WorkoutFilter{From: base.AddDate(0, 0, 6), To: base})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWorkoutServiceReplaceExercises(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(memory.New())

	id, err := svc.Add(ctx, AddWorkoutInput{Exercises: []domain.Exercise{benchPress(100, 5)}})
	require.NoError(t, err)

	err = svc.ReplaceExercises(ctx, id, []domain.Exercise{
		{Name: "deadlift", Category: domain.CategoryBack, Sets: []domain.ExerciseSet{{Reps: 3, Weight: 160}}},
	})
	require.NoError(t, err)

	w, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, w.Exercises, 1)
	assert.Equal(t, "deadlift", w.Exercises[0].Name)

	err = svc.ReplaceExercises(ctx, 999, []domain.Exercise{benchPress(100, 5)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkoutServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(memory.New())

	id, err := svc.Add(ctx, AddWorkoutInput{Exercises: []domain.Exercise{benchPress(100, 5)}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
