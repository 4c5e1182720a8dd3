package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/domain"
	"liftlog/internal/memory"
)

func TestSettingsServiceWeightUnit(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(memory.New())

	unit, err := svc.WeightUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kg", unit, "unset unit defaults to kg")

	require.NoError(t, svc.Set(ctx, "weight_unit", "LB"))
	unit, err = svc.WeightUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lb", unit)

	err = svc.Set(ctx, "weight_unit", "stone")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Set(ctx, "favourite_color", "green")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Set(ctx, "", "kg")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
