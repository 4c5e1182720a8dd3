package sqlite

import (
	"context"
	"errors"
	"testing"

	"liftlog/internal/domain"
)

func TestGoalRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	deadline := day("2026-12-01")
	id, err := store.CreateGoal(ctx, &domain.Goal{
		Type:         domain.GoalStrength,
		Title:        "Squat 140 kg",
		Description:  "high bar, full depth",
		TargetValue:  140,
		CurrentValue: 110,
		Unit:         "kg",
		Deadline:     &deadline,
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	g, err := store.GetGoal(ctx, id)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if g.Type != domain.GoalStrength || g.Title != "Squat 140 kg" {
		t.Errorf("goal identity lost: %+v", g)
	}
	if g.Deadline == nil || domain.DayKey(*g.Deadline) != "2026-12-01" {
		t.Errorf("deadline = %v", g.Deadline)
	}
	if g.IsCompleted {
		t.Error("goal should not start completed")
	}
	if g.CreatedAt.IsZero() || g.UpdatedAt.IsZero() {
		t.Error("timestamps should be populated")
	}
}

func TestGoalNullDeadline(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateGoal(ctx, &domain.Goal{
		Type:        domain.GoalCustom,
		Title:       "no deadline",
		TargetValue: 10,
		Unit:        "kg",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	g, err := store.GetGoal(ctx, id)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if g.Deadline != nil {
		t.Errorf("deadline should stay nil, got %v", g.Deadline)
	}
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateGoal(ctx, &domain.Goal{
		Type:        domain.GoalStrength,
		Title:       "Bench 100 kg",
		TargetValue: 100,
		Unit:        "kg",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	g, err := store.GetGoal(ctx, id)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	g.CurrentValue = 100
	g.IsCompleted = true
	if err := store.UpdateGoal(ctx, g); err != nil {
		t.Fatalf("update goal: %v", err)
	}

	got, err := store.GetGoal(ctx, id)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if !got.IsCompleted || got.CurrentValue != 100 {
		t.Errorf("update not persisted: %+v", got)
	}

	got.ID = 999
	if err := store.UpdateGoal(ctx, got); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListGoalsExcludesCompleted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.CreateGoal(ctx, &domain.Goal{
		Type: domain.GoalCustom, Title: "active", TargetValue: 10, Unit: "kg",
	}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if _, err := store.CreateGoal(ctx, &domain.Goal{
		Type: domain.GoalCustom, Title: "done", TargetValue: 10, CurrentValue: 10, Unit: "kg", IsCompleted: true,
	}); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	active, err := store.ListGoals(ctx, false)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Title != "active" {
		t.Fatalf("active filter broken: %+v", active)
	}

	all, err := store.ListGoals(ctx, true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d goals, want 2", len(all))
	}
}

func TestGoalProgressRecords(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateGoal(ctx, &domain.Goal{
		Type: domain.GoalStrength, Title: "t", TargetValue: 100, Unit: "kg",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	for _, rec := range []struct {
		day   string
		value float64
	}{
		{"2026-08-10", 90},
		{"2026-08-03", 85},
		{"2026-08-17", 95},
	} {
		if _, err := store.AddProgressRecord(ctx, &domain.GoalProgressRecord{
			GoalID:     id,
			RecordedOn: day(rec.day),
			Value:      rec.value,
		}); err != nil {
			t.Fatalf("add progress: %v", err)
		}
	}

	records, err := store.ListProgressRecords(ctx, id)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// chronological regardless of insert order
	if records[0].Value != 85 || records[1].Value != 90 || records[2].Value != 95 {
		t.Fatalf("records out of order: %+v", records)
	}
}

func TestDeleteGoalCascadesProgress(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateGoal(ctx, &domain.Goal{
		Type: domain.GoalCustom, Title: "t", TargetValue: 10, Unit: "kg",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if _, err := store.AddProgressRecord(ctx, &domain.GoalProgressRecord{
		GoalID: id, RecordedOn: day("2026-08-20"), Value: 5,
	}); err != nil {
		t.Fatalf("add progress: %v", err)
	}

	if err := store.DeleteGoal(ctx, id); err != nil {
		t.Fatalf("delete goal: %v", err)
	}

	var remaining int
	if err := store.db.QueryRow(`SELECT COUNT(1) FROM goal_progress`).Scan(&remaining); err != nil {
		t.Fatalf("count progress: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("progress records survived goal deletion: %d", remaining)
	}

	if _, err := store.GetGoal(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
