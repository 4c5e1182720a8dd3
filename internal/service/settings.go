package service

import (
	"context"
	"fmt"
	"strings"

	"liftlog/internal/domain"
)

// SettingsService manages small key/value preferences stored alongside the
// data, e.g. the display weight unit.
type SettingsService struct {
	repo domain.SettingsRepository
}

func NewSettingsService(repo domain.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.ToLower(strings.TrimSpace(value))
	switch key {
	case domain.SettingWeightUnit:
		if value != "kg" && value != "lb" {
			return fmt.Errorf("%w: weight unit must be kg or lb", domain.ErrInvalidInput)
		}
	case "":
		return fmt.Errorf("%w: setting key is required", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.repo.SetSetting(ctx, key, value)
}

func (s *SettingsService) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", false, fmt.Errorf("%w: setting key is required", domain.ErrInvalidInput)
	}
	return s.repo.GetSetting(ctx, key)
}

func (s *SettingsService) List(ctx context.Context) (map[string]string, error) {
	return s.repo.ListSettings(ctx)
}

// WeightUnit resolves the configured display unit, defaulting to kg.
func (s *SettingsService) WeightUnit(ctx context.Context) (string, error) {
	unit, ok, err := s.repo.GetSetting(ctx, domain.SettingWeightUnit)
	if err != nil {
		return "", err
	}
	if !ok {
		return "kg", nil
	}
	return unit, nil
}
