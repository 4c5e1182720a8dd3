package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/domain"
	"liftlog/internal/memory"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	workouts := NewWorkoutService(store)
	goals := NewGoalService(store)

	summary, err := SeedDemoData(ctx, workouts, goals, 28, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Goals)
	assert.Greater(t, summary.Workouts, 0)

	seeded, err := store.ListWorkouts(ctx, domain.WorkoutFilter{})
	require.NoError(t, err)
	require.Len(t, seeded, summary.Workouts)
	for _, w := range seeded {
		assert.False(t, w.IsEmpty())
		require.NotNil(t, w.DurationMin)
	}

	seededGoals, err := store.ListGoals(ctx, true)
	require.NoError(t, err)
	assert.Len(t, seededGoals, 2)
}

func TestSeedDemoDataDeterministic(t *testing.T) {
	ctx := context.Background()

	run := func() int {
		store := memory.New()
		summary, err := SeedDemoData(ctx, NewWorkoutService(store), NewGoalService(store), 14, 42)
		require.NoError(t, err)
		return summary.Workouts
	}
	assert.Equal(t, run(), run())
}

func TestSeedDemoDataValidation(t *testing.T) {
	store := memory.New()
	_, err := SeedDemoData(context.Background(), NewWorkoutService(store), NewGoalService(store), 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoundToPlate(t *testing.T) {
	assert.Equal(t, 100.0, roundToPlate(101.1))
	assert.Equal(t, 102.5, roundToPlate(101.3))
	assert.Equal(t, 0.0, roundToPlate(0))
}
