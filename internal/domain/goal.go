package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type GoalType string

const (
	GoalWeightLoss GoalType = "weight_loss"
	GoalMuscleGain GoalType = "muscle_gain"
	GoalStrength   GoalType = "strength"
	GoalEndurance  GoalType = "endurance"
	GoalFrequency  GoalType = "frequency"
	GoalCustom     GoalType = "custom"
)

func GoalTypes() []GoalType {
	return []GoalType{
		GoalWeightLoss, GoalMuscleGain, GoalStrength,
		GoalEndurance, GoalFrequency, GoalCustom,
	}
}

func ParseGoalType(value string) (GoalType, error) {
	t := GoalType(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range GoalTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown goal type %q", ErrInvalidInput, value)
}

// Goal is a user-defined fitness target with a measurable value and an
// optional deadline.
type Goal struct {
	ID           int64      `json:"id"`
	Type         GoalType   `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	Unit         string     `json:"unit"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ProgressPercentage reports current/target clamped to [0, 1].
func (g Goal) ProgressPercentage() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	p := g.CurrentValue / g.TargetValue
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// RemainingValue reports target minus current, never below zero.
func (g Goal) RemainingValue() float64 {
	r := g.TargetValue - g.CurrentValue
	if r < 0 {
		return 0
	}
	return r
}

func (g Goal) IsAchieved() bool {
	return g.CurrentValue >= g.TargetValue
}

// IsOverdue reports whether the deadline has passed without completion.
func (g Goal) IsOverdue(today time.Time) bool {
	if g.Deadline == nil || g.IsCompleted {
		return false
	}
	return g.Deadline.Before(startOfDay(today))
}

// GoalProgressRecord is an append-only snapshot of a goal's measured value.
type GoalProgressRecord struct {
	ID         int64     `json:"id"`
	GoalID     int64     `json:"goalId"`
	RecordedOn time.Time `json:"recordedOn"`
	Value      float64   `json:"value"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GoalRepository is the port for goal persistence.
type GoalRepository interface {
	CreateGoal(ctx context.Context, g *Goal) (int64, error)
	GetGoal(ctx context.Context, id int64) (*Goal, error)
	ListGoals(ctx context.Context, includeCompleted bool) ([]Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, id int64) error
	AddProgressRecord(ctx context.Context, r *GoalProgressRecord) (int64, error)
	ListProgressRecords(ctx context.Context, goalID int64) ([]GoalProgressRecord, error)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
