package service

import (
	"context"
	"time"

	"liftlog/internal/domain"
)

type GoalStatus struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Unit      string  `json:"unit"`
	Target    float64 `json:"target"`
	Current   float64 `json:"current"`
	Progress  float64 `json:"progress"`
	Remaining float64 `json:"remaining"`
	Overdue   bool    `json:"overdue"`
}

type TodayStatus struct {
	Date        string       `json:"date"`
	Workouts    int          `json:"workouts"`
	TotalSets   int          `json:"total_sets"`
	TotalVolume float64      `json:"total_volume"`
	ActiveGoals []GoalStatus `json:"active_goals"`
}

// TodaySummary reports today's training load plus the state of every
// active goal.
func TodaySummary(ctx context.Context, workouts domain.WorkoutRepository, goals domain.GoalRepository, now time.Time) (*TodayStatus, error) {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	todays, err := workouts.ListWorkouts(ctx, domain.WorkoutFilter{From: day, To: day})
	if err != nil {
		return nil, err
	}
	status := &TodayStatus{
		Date:        domain.DayKey(day),
		Workouts:    len(todays),
		ActiveGoals: make([]GoalStatus, 0),
	}
	for _, w := range todays {
		status.TotalSets += w.TotalSets()
		status.TotalVolume += w.TotalVolume()
	}

	active, err := goals.ListGoals(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, g := range active {
		status.ActiveGoals = append(status.ActiveGoals, GoalStatus{
			ID:        g.ID,
			Title:     g.Title,
			Unit:      g.Unit,
			Target:    g.TargetValue,
			Current:   g.CurrentValue,
			Progress:  g.ProgressPercentage(),
			Remaining: g.RemainingValue(),
			Overdue:   g.IsOverdue(now),
		})
	}
	return status, nil
}
