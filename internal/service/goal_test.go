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

func newGoalService() *GoalService {
	return NewGoalService(memory.New())
}

func TestGoalServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService()

	deadline := time.Now().AddDate(0, 3, 0)
	g, err := svc.Create(ctx, CreateGoalInput{
		Type:         "strength",
		Title:        "Squat 140 kg",
		TargetValue:  140,
		CurrentValue: 110,
		Unit:         "kg",
		Deadline:     &deadline,
	})
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, int64(1), g.ID)
	assert.Equal(t, domain.GoalStrength, g.Type)
	assert.False(t, g.IsCompleted)
	assert.InDelta(t, 110.0/140.0, g.ProgressPercentage(), 0.0001)

	got, err := svc.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Squat 140 kg", got.Title)
}

func TestGoalServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService()
	past := time.Now().AddDate(0, 0, -2)

	cases := []struct {
		name string
		in   CreateGoalInput
	}{
		{"unknown type", CreateGoalInput{Type: "levitation", Title: "t", TargetValue: 1, Unit: "kg"}},
		{"missing title", CreateGoalInput{Type: "custom", TargetValue: 1, Unit: "kg"}},
		{"missing unit", CreateGoalInput{Type: "custom", Title: "t", TargetValue: 1}},
		{"zero target", CreateGoalInput{Type: "custom", Title: "t", Unit: "kg"}},
		{"negative current", CreateGoalInput{Type: "custom", Title: "t", TargetValue: 1, CurrentValue: -1, Unit: "kg"}},
		{"past deadline", CreateGoalInput{Type: "custom", Title: "t", TargetValue: 1, Unit: "kg", Deadline: &past}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGoalServiceCreateAlreadyAchieved(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService()

	g, err := svc.Create(ctx, CreateGoalInput{
		Type:         "frequency",
		Title:        "Train 10 times",
		TargetValue:  10,
		CurrentValue: 12,
		Unit:         "workouts",
	})
	require.NoError(t, err)
	assert.True(t, g.IsCompleted)
	assert.Equal(t, 0.0, g.RemainingValue())
}

func TestGoalServiceUpdateProgress(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService()

	g, err := svc.Create(ctx, CreateGoalInput{
		Type:        "strength",
		Title:       "Bench 100 kg",
		TargetValue: 100,
		Unit:        "kg",
	})
	require.NoError(t, err)

	day1 := time.Now().AddDate(0, 0, -7)
	updated, err := svc.UpdateProgress(ctx, g.ID, 90, day1, "felt strong")
	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.CurrentValue)
	assert.False(t, updated.IsCompleted)

	// crossing the target completes the goal
	updated, err = svc.UpdateProgress(ctx, g.ID, 102.5, time.Now(), "")
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, 1.0, updated.ProgressPercentage())
	assert.Equal(t, 0.0, updated.RemainingValue())

	history, err := svc.History(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 90.0, history[0].Value)
	assert.Equal(t, 102.5, history[1].Value)
	assert.Equal(t, "felt strong", history[0].Notes)
}

func TestGoalServiceUpdateProgressUnknownGoal(t *testing.T) {
	svc := newGoalService()
	_, err := svc.UpdateProgress(context.Background(), 42, 10, time.Now(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGoalServiceListFiltersCompleted(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService()

	_, err := svc.Create(ctx, CreateGoalInput{Type: "custom", Title: "active", TargetValue: 10, Unit: "kg"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateGoalInput{Type: "custom", Title: "done", TargetValue: 10, CurrentValue: 10, Unit: "kg"})
	require.NoError(t, err)

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "active", active[0].Title)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGoalServiceDeleteCascadesHistory(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService()

	g, err := svc.Create(ctx, CreateGoalInput{Type: "custom", Title: "t", TargetValue: 10, Unit: "kg"})
	require.NoError(t, err)
	_, err = svc.UpdateProgress(ctx, g.ID, 5, time.Now(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, g.ID))

	_, err = svc.Get(ctx, g.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.History(ctx, g.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
