package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrSchemaTooNew is returned when the database was written by a newer
// build. The schema is never wiped implicitly; use Reset for that.
var ErrSchemaTooNew = errors.New("database schema is newer than this build")

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS workouts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  performed_on TEXT NOT NULL,
  duration_min INTEGER CHECK(duration_min > 0),
  location TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exercises (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  workout_id INTEGER NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  name TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT 'other',
  notes TEXT NOT NULL DEFAULT '',
  FOREIGN KEY(workout_id) REFERENCES workouts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS exercise_sets (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  exercise_id INTEGER NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  reps INTEGER NOT NULL CHECK(reps >= 1),
  weight REAL NOT NULL CHECK(weight >= 0),
  rest_sec INTEGER CHECK(rest_sec > 0),
  FOREIGN KEY(exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS exercise_templates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL DEFAULT 'other',
  description TEXT NOT NULL DEFAULT '',
  is_user_created INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "goal_tracking",
		sql: `
CREATE TABLE IF NOT EXISTS goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  goal_type TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  target_value REAL NOT NULL CHECK(target_value > 0),
  current_value REAL NOT NULL DEFAULT 0 CHECK(current_value >= 0),
  unit TEXT NOT NULL,
  deadline TEXT,
  is_completed INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS goal_progress (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  goal_id INTEGER NOT NULL,
  recorded_on TEXT NOT NULL,
  value REAL NOT NULL CHECK(value >= 0),
  notes TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(goal_id) REFERENCES goals(id) ON DELETE CASCADE
);
`,
	},
	{
		// DROP COLUMN keeps the table in place. Rebuilding workouts via
		// create-copy-rename would fire the ON DELETE CASCADE on exercises
		// when the old table is dropped with foreign_keys on.
		version: 3,
		name:    "drop_workout_location",
		sql: `
ALTER TABLE workouts DROP COLUMN location;
`,
	},
	{
		version: 4,
		name:    "query_indexes",
		sql: `
CREATE INDEX IF NOT EXISTS idx_workouts_performed_on ON workouts(performed_on);
CREATE INDEX IF NOT EXISTS idx_exercises_workout_id ON exercises(workout_id);
CREATE INDEX IF NOT EXISTS idx_exercise_sets_exercise_id ON exercise_sets(exercise_id);
CREATE INDEX IF NOT EXISTS idx_goal_progress_goal_id ON goal_progress(goal_id);
`,
	},
	{
		version: 5,
		name:    "template_guidance",
		sql: `
ALTER TABLE exercise_templates ADD COLUMN instructions_json TEXT NOT NULL DEFAULT '';
ALTER TABLE exercise_templates ADD COLUMN tips_json TEXT NOT NULL DEFAULT '';
`,
	},
}

type seedTemplate struct {
	name     string
	category string
}

var defaultTemplates = []seedTemplate{
	{"barbell bench press", "chest"},
	{"incline dumbbell press", "chest"},
	{"deadlift", "back"},
	{"barbell row", "back"},
	{"pull-up", "back"},
	{"back squat", "legs"},
	{"romanian deadlift", "legs"},
	{"leg press", "legs"},
	{"overhead press", "shoulders"},
	{"lateral raise", "shoulders"},
	{"barbell curl", "arms"},
	{"triceps pushdown", "arms"},
	{"plank", "core"},
	{"running", "cardio"},
	{"rowing machine", "cardio"},
}

// ApplyMigrations brings the schema up to the current version. It refuses to
// touch a database stamped by a newer build; explicit Reset is the only
// destructive path.
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT IFNULL(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	latest := migrations[len(migrations)-1].version
	if current > latest {
		return fmt.Errorf("%w: database at version %d, build supports up to %d", ErrSchemaTooNew, current, latest)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		logrus.WithFields(logrus.Fields{
			"version": m.version,
			"name":    m.name,
		}).Debug("applying migration")

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for _, t := range defaultTemplates {
		if _, err := db.Exec(`INSERT OR IGNORE INTO exercise_templates(name, category) VALUES(?, ?)`, t.name, t.category); err != nil {
			return fmt.Errorf("seed template %s: %w", t.name, err)
		}
	}

	return nil
}

// Reset drops every application table and reapplies all migrations. Callers
// must obtain explicit user confirmation first; all data is lost.
func Reset(db *sql.DB) error {
	logrus.Warn("resetting database schema, all data will be dropped")
	tables := []string{
		"goal_progress", "goals", "exercise_sets", "exercises",
		"workouts", "exercise_templates", "settings", "schema_migrations",
	}
	for _, table := range tables {
		if _, err := db.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return ApplyMigrations(db)
}
