package service

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/db"
)

func openDoctorDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "liftlog-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.ApplyMigrations(conn))
	return conn
}

func TestRunDoctorCleanDatabase(t *testing.T) {
	conn := openDoctorDB(t)

	report, err := RunDoctor(conn, false)
	require.NoError(t, err)
	assert.Zero(t, report.OrphanExercises)
	assert.Zero(t, report.OrphanSets)
	assert.Zero(t, report.EmptyWorkouts)
	assert.Zero(t, report.InvalidDates)
	assert.Zero(t, report.StaleGoalValues)
}

func TestRunDoctorFindsAndFixesOrphans(t *testing.T) {
	conn := openDoctorDB(t)

	// foreign keys off so broken rows can be planted
	_, err := conn.Exec(`PRAGMA foreign_keys = OFF`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO exercises(workout_id, name) VALUES(999, 'ghost press')`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO exercise_sets(exercise_id, reps, weight) VALUES(999, 5, 100)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO workouts(performed_on) VALUES('not-a-date')`)
	require.NoError(t, err)

	report, err := RunDoctor(conn, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.OrphanExercises)
	assert.Equal(t, 1, report.OrphanSets)
	assert.Equal(t, 1, report.InvalidDates)
	assert.Equal(t, 1, report.EmptyWorkouts)
	assert.Zero(t, report.RemovedOrphans, "dry run must not repair")

	report, err = RunDoctor(conn, true)
	require.NoError(t, err)
	assert.Equal(t, 2, report.RemovedOrphans)

	report, err = RunDoctor(conn, false)
	require.NoError(t, err)
	assert.Zero(t, report.OrphanExercises)
	assert.Zero(t, report.OrphanSets)
}

func TestRunDoctorFixesStaleGoalValues(t *testing.T) {
	conn := openDoctorDB(t)

	res, err := conn.Exec(`
INSERT INTO goals(goal_type, title, target_value, current_value, unit)
VALUES('strength', 'Bench 100 kg', 100, 50, 'kg')`)
	require.NoError(t, err)
	goalID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = conn.Exec(`
INSERT INTO goal_progress(goal_id, recorded_on, value) VALUES(?, '2026-08-10', 90)`, goalID)
	require.NoError(t, err)
	_, err = conn.Exec(`
INSERT INTO goal_progress(goal_id, recorded_on, value) VALUES(?, '2026-08-20', 100)`, goalID)
	require.NoError(t, err)

	report, err := RunDoctor(conn, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.StaleGoalValues)

	report, err = RunDoctor(conn, true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.FixedGoalValues)

	var current float64
	var completed int
	require.NoError(t, conn.QueryRow(
		`SELECT current_value, is_completed FROM goals WHERE id = ?`, goalID).Scan(&current, &completed))
	assert.Equal(t, 100.0, current, "current value follows the latest record")
	assert.Equal(t, 1, completed, "reaching the target completes the goal")
}
