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

func TestCalendarServiceMonthData(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	workouts := NewWorkoutService(store)

	// one workout inside February, one on a leading January cell
	seedWorkout(t, workouts, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.Local), benchPress(100, 5))
	seedWorkout(t, workouts, time.Date(2024, time.January, 30, 0, 0, 0, 0, time.Local), benchPress(80, 8))
	// outside the 42-cell grid entirely
	seedWorkout(t, workouts, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local), benchPress(60, 10))

	svc := NewCalendarService(store)
	svc.now = func() time.Time { return time.Date(2024, time.February, 20, 12, 0, 0, 0, time.Local) }

	data, err := svc.MonthData(ctx, 2024, time.February, time.Time{})
	require.NoError(t, err)
	require.Len(t, data.Days, domain.CalendarCells)

	byDay := make(map[string]domain.CalendarDay)
	for _, day := range data.Days {
		byDay[domain.DayKey(day.Date)] = day
	}

	assert.True(t, byDay["2024-02-14"].HasWorkout)
	assert.Equal(t, 1, byDay["2024-02-14"].WorkoutCount)
	assert.True(t, byDay["2024-01-30"].HasWorkout, "leading cells carry their workout markers")
	assert.False(t, byDay["2024-01-30"].IsCurrentMonth)
	assert.True(t, byDay["2024-02-20"].IsToday)

	_, ok := byDay["2024-01-10"]
	assert.False(t, ok, "grid must not extend past 42 cells")
}

func TestCalendarServiceInvalidMonth(t *testing.T) {
	svc := NewCalendarService(memory.New())
	_, err := svc.MonthData(context.Background(), 2024, time.Month(13), time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
