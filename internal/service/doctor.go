package service

import (
	"database/sql"
	"fmt"
	"time"
)

type DoctorReport struct {
	OrphanExercises int `json:"orphan_exercises"`
	OrphanSets      int `json:"orphan_sets"`
	EmptyWorkouts   int `json:"empty_workouts"`
	InvalidDates    int `json:"invalid_dates"`
	StaleGoalValues int `json:"stale_goal_values"`
	FixedGoalValues int `json:"fixed_goal_values,omitempty"`
	RemovedOrphans  int `json:"removed_orphans,omitempty"`
}

// RunDoctor checks referential and value consistency directly against the
// schema; it sits below the repository layer on purpose.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{}

	if err := db.QueryRow(`
SELECT COUNT(1) FROM exercises e LEFT JOIN workouts w ON w.id = e.workout_id WHERE w.id IS NULL
`).Scan(&report.OrphanExercises); err != nil {
		return report, fmt.Errorf("doctor orphan exercise check: %w", err)
	}
	if err := db.QueryRow(`
SELECT COUNT(1) FROM exercise_sets s LEFT JOIN exercises e ON e.id = s.exercise_id WHERE e.id IS NULL
`).Scan(&report.OrphanSets); err != nil {
		return report, fmt.Errorf("doctor orphan set check: %w", err)
	}
	if err := db.QueryRow(`
SELECT COUNT(1) FROM workouts w LEFT JOIN exercises e ON e.workout_id = w.id WHERE e.id IS NULL
`).Scan(&report.EmptyWorkouts); err != nil {
		return report, fmt.Errorf("doctor empty workout check: %w", err)
	}

	rows, err := db.Query(`SELECT performed_on FROM workouts`)
	if err != nil {
		return report, fmt.Errorf("doctor date query: %w", err)
	}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor date scan: %w", err)
		}
		if _, err := time.Parse("2006-01-02", day); err != nil {
			report.InvalidDates++
		}
	}
	_ = rows.Close()

	// goals whose current value drifted from their latest progress record
	rows, err = db.Query(`
SELECT g.id, g.current_value, p.value
FROM goals g
JOIN goal_progress p ON p.goal_id = g.id
WHERE p.id = (
  SELECT p2.id FROM goal_progress p2
  WHERE p2.goal_id = g.id
  ORDER BY p2.recorded_on DESC, p2.id DESC LIMIT 1
)
AND g.current_value != p.value
`)
	if err != nil {
		return report, fmt.Errorf("doctor stale goal query: %w", err)
	}
	type staleGoal struct {
		id    int64
		value float64
	}
	stale := make([]staleGoal, 0)
	for rows.Next() {
		var g staleGoal
		var current float64
		if err := rows.Scan(&g.id, &current, &g.value); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor stale goal scan: %w", err)
		}
		report.StaleGoalValues++
		stale = append(stale, g)
	}
	_ = rows.Close()

	if fix {
		tx, err := db.Begin()
		if err != nil {
			return report, fmt.Errorf("doctor fix begin tx: %w", err)
		}
		for _, g := range stale {
			if _, err := tx.Exec(`
UPDATE goals SET current_value = ?, is_completed = CASE WHEN ? >= target_value THEN 1 ELSE is_completed END,
  updated_at = CURRENT_TIMESTAMP WHERE id = ?`, g.value, g.value, g.id); err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("doctor fix goal %d: %w", g.id, err)
			}
			report.FixedGoalValues++
		}
		if report.OrphanSets > 0 {
			res, err := tx.Exec(`DELETE FROM exercise_sets WHERE exercise_id NOT IN (SELECT id FROM exercises)`)
			if err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("doctor fix orphan sets: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil {
				report.RemovedOrphans += int(n)
			}
		}
		if report.OrphanExercises > 0 {
			res, err := tx.Exec(`DELETE FROM exercises WHERE workout_id NOT IN (SELECT id FROM workouts)`)
			if err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("doctor fix orphan exercises: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil {
				report.RemovedOrphans += int(n)
			}
		}
		if err := tx.Commit(); err != nil {
			return report, fmt.Errorf("doctor fix commit: %w", err)
		}
	}

	return report, nil
}
