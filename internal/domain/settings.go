package domain

import "context"

// Setting keys understood by the application.
const (
	SettingWeightUnit = "weight_unit"
)

// SettingsRepository is the port for small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	ListSettings(ctx context.Context) (map[string]string, error)
}
