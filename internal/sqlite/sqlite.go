// Package sqlite implements the domain repositories over a local SQLite
// database opened through internal/db.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"liftlog/internal/domain"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ensure interfaces are met.
var _ domain.WorkoutRepository = (*Store)(nil)
var _ domain.GoalRepository = (*Store)(nil)
var _ domain.TemplateRepository = (*Store)(nil)

const dayFormat = "2006-01-02"

func formatDay(t time.Time) string {
	return t.Format(dayFormat)
}

func parseDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return t, nil
}
