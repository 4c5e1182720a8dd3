package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/domain"
	"liftlog/internal/memory"
)

func TestTemplateServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewTemplateService(memory.New())

	id, err := svc.Create(ctx, CreateTemplateInput{
		Name:         "  Zercher Squat ",
		Category:     "legs",
		Description:  "squat with the bar in the elbow crease",
		Instructions: []string{"set the bar at waist height", " ", "brace hard"},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "zercher squat", got.Name)
	assert.Equal(t, domain.CategoryLegs, got.Category)
	assert.Equal(t, []string{"set the bar at waist height", "brace hard"}, got.Instructions)
	assert.True(t, got.IsUserCreated)

	// duplicate names are rejected by the store
	_, err = svc.Create(ctx, CreateTemplateInput{Name: "zercher squat", Category: "legs"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, CreateTemplateInput{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTemplateServiceListByCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewTemplateService(memory.New())

	_, err := svc.Create(ctx, CreateTemplateInput{Name: "hack squat", Category: "legs"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateTemplateInput{Name: "cable fly", Category: "chest"})
	require.NoError(t, err)

	legs, err := svc.List(ctx, "legs")
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, "hack squat", legs[0].Name)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, "forearms")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTemplateServiceDeleteProtectsBuiltIns(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewTemplateService(store)

	builtinID, err := store.CreateTemplate(ctx, &domain.ExerciseTemplate{
		Name:     "back squat",
		Category: domain.CategoryLegs,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, builtinID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	customID, err := svc.Create(ctx, CreateTemplateInput{Name: "box squat", Category: "legs"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, customID))

	_, err = svc.Get(ctx, customID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
