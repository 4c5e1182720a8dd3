package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"

	"liftlog/internal/domain"
)

type SeedSummary struct {
	Workouts int `json:"workouts"`
	Goals    int `json:"goals"`
}

var seedExercises = []struct {
	name     string
	category domain.ExerciseCategory
	minKg    float64
	maxKg    float64
}{
	{"barbell bench press", domain.CategoryChest, 40, 110},
	{"incline dumbbell press", domain.CategoryChest, 14, 36},
	{"deadlift", domain.CategoryBack, 60, 180},
	{"barbell row", domain.CategoryBack, 40, 100},
	{"back squat", domain.CategoryLegs, 50, 150},
	{"romanian deadlift", domain.CategoryLegs, 40, 120},
	{"overhead press", domain.CategoryShoulders, 25, 70},
	{"barbell curl", domain.CategoryArms, 20, 50},
	{"plank", domain.CategoryCore, 0, 0},
}

// SeedDemoData fills the store with plausible demo workouts over the last
// days days plus a pair of goals. Deterministic for a given seed.
func SeedDemoData(ctx context.Context, workouts *WorkoutService, goals *GoalService, days int, seed int64) (*SeedSummary, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be > 0", domain.ErrInvalidInput)
	}
	faker := gofakeit.New(seed)
	summary := &SeedSummary{}

	today := time.Now()
	for i := days - 1; i >= 0; i-- {
		// roughly four sessions a week
		if faker.Number(1, 7) > 4 {
			continue
		}
		day := today.AddDate(0, 0, -i)

		exerciseCount := faker.Number(2, 4)
		exercises := make([]domain.Exercise, 0, exerciseCount)
		for e := 0; e < exerciseCount; e++ {
			pick := seedExercises[faker.Number(0, len(seedExercises)-1)]
			setCount := faker.Number(2, 5)
			weight := roundToPlate(faker.Float64Range(pick.minKg, pick.maxKg))
			sets := make([]domain.ExerciseSet, 0, setCount)
			for s := 0; s < setCount; s++ {
				sets = append(sets, domain.ExerciseSet{
					Reps:   faker.Number(5, 12),
					Weight: weight,
				})
			}
			exercises = append(exercises, domain.Exercise{
				Name:     pick.name,
				Category: pick.category,
				Sets:     sets,
			})
		}

		duration := faker.Number(35, 90)
		if _, err := workouts.Add(ctx, AddWorkoutInput{
			PerformedOn: day,
			Exercises:   exercises,
			DurationMin: &duration,
		}); err != nil {
			return nil, fmt.Errorf("seed workout: %w", err)
		}
		summary.Workouts++
	}

	deadline := today.AddDate(0, 3, 0)
	demoGoals := []CreateGoalInput{
		{
			Type:         string(domain.GoalStrength),
			Title:        "Squat 140 kg",
			TargetValue:  140,
			CurrentValue: float64(faker.Number(90, 120)),
			Unit:         "kg",
			Deadline:     &deadline,
		},
		{
			Type:         string(domain.GoalFrequency),
			Title:        "Train 16 times this month",
			TargetValue:  16,
			CurrentValue: float64(faker.Number(0, 8)),
			Unit:         "workouts",
		},
	}
	for _, in := range demoGoals {
		if _, err := goals.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed goal: %w", err)
		}
		summary.Goals++
	}

	logrus.WithFields(logrus.Fields{
		"workouts": summary.Workouts,
		"goals":    summary.Goals,
	}).Info("seeded demo data")
	return summary, nil
}

// roundToPlate snaps a weight to the nearest 2.5 kg increment.
func roundToPlate(kg float64) float64 {
	steps := int(kg/2.5 + 0.5)
	return float64(steps) * 2.5
}
