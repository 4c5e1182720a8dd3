package domain

import (
	"context"
	"time"
)

// ExerciseTemplate is a catalog entry describing a movement. Templates are
// independent of workouts; seeded defaults carry IsUserCreated = false.
type ExerciseTemplate struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Category      ExerciseCategory `json:"category"`
	Description   string           `json:"description,omitempty"`
	Instructions  []string         `json:"instructions,omitempty"`
	Tips          []string         `json:"tips,omitempty"`
	IsUserCreated bool             `json:"isUserCreated"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// TemplateRepository is the port for the exercise catalog.
type TemplateRepository interface {
	CreateTemplate(ctx context.Context, t *ExerciseTemplate) (int64, error)
	GetTemplate(ctx context.Context, id int64) (*ExerciseTemplate, error)
	ListTemplates(ctx context.Context, category ExerciseCategory) ([]ExerciseTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
}
