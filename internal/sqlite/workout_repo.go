package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"liftlog/internal/domain"
)

func (s *Store) CreateWorkout(ctx context.Context, w *domain.Workout) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin workout tx: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO workouts(performed_on, duration_min, notes)
VALUES(?, ?, ?)
`, formatDay(w.PerformedOn), nullableInt(w.DurationMin), w.Notes)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("resolve workout id: %w", err)
	}

	if err := insertExercisesTx(ctx, tx, id, w.Exercises); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit workout tx: %w", err)
	}
	return id, nil
}

func (s *Store) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	var (
		w            domain.Workout
		performedRaw string
		duration     sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, performed_on, duration_min, notes, created_at, updated_at
FROM workouts WHERE id = ?
`, id).Scan(&w.ID, &performedRaw, &duration, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	if w.PerformedOn, err = parseDay(performedRaw); err != nil {
		return nil, err
	}
	if duration.Valid {
		v := int(duration.Int64)
		w.DurationMin = &v
	}
	if w.Exercises, err = s.loadExercises(ctx, id); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) ListWorkouts(ctx context.Context, f domain.WorkoutFilter) ([]domain.Workout, error) {
	query := `SELECT id, performed_on, duration_min, notes, created_at, updated_at FROM workouts WHERE 1=1`
	args := make([]any, 0)
	if !f.From.IsZero() {
		query += ` AND performed_on >= ?`
		args = append(args, formatDay(f.From))
	}
	if !f.To.IsZero() {
		query += ` AND performed_on <= ?`
		args = append(args, formatDay(f.To))
	}
	query += ` ORDER BY performed_on DESC, id DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]domain.Workout, 0)
	for rows.Next() {
		var (
			w            domain.Workout
			performedRaw string
			duration     sql.NullInt64
		)
		if err := rows.Scan(&w.ID, &performedRaw, &duration, &w.Notes, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		if w.PerformedOn, err = parseDay(performedRaw); err != nil {
			return nil, err
		}
		if duration.Valid {
			v := int(duration.Int64)
			w.DurationMin = &v
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}

	for i := range workouts {
		if workouts[i].Exercises, err = s.loadExercises(ctx, workouts[i].ID); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

// ReplaceExercises swaps a workout's exercise list wholesale; sets cascade
// away with their exercises.
func (s *Store) ReplaceExercises(ctx context.Context, workoutID int64, exercises []domain.Exercise) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE workouts SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, workoutID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("touch workout %d: %w", workoutID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("workout %d: %w", workoutID, domain.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE workout_id = ?`, workoutID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear exercises for workout %d: %w", workoutID, err)
	}
	if err := insertExercisesTx(ctx, tx, workoutID, exercises); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	return nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workout %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) WorkoutCountsByDay(ctx context.Context, from, to time.Time) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT performed_on, COUNT(*)
FROM workouts
WHERE performed_on >= ? AND performed_on <= ?
GROUP BY performed_on
`, formatDay(from), formatDay(to))
	if err != nil {
		return nil, fmt.Errorf("count workouts by day: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("scan workout day count: %w", err)
		}
		counts[day] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout day counts: %w", err)
	}
	return counts, nil
}

func (s *Store) loadExercises(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, category, notes
FROM exercises
WHERE workout_id = ?
ORDER BY position ASC, id ASC
`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("load exercises for workout %d: %w", workoutID, err)
	}
	defer rows.Close()

	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}

	for i := range exercises {
		if exercises[i].Sets, err = s.loadSets(ctx, exercises[i].ID); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (s *Store) loadSets(ctx context.Context, exerciseID int64) ([]domain.ExerciseSet, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, reps, weight, rest_sec
FROM exercise_sets
WHERE exercise_id = ?
ORDER BY position ASC, id ASC
`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("load sets for exercise %d: %w", exerciseID, err)
	}
	defer rows.Close()

	sets := make([]domain.ExerciseSet, 0)
	for rows.Next() {
		var set domain.ExerciseSet
		var rest sql.NullInt64
		if err := rows.Scan(&set.ID, &set.Reps, &set.Weight, &rest); err != nil {
			return nil, fmt.Errorf("scan exercise set: %w", err)
		}
		if rest.Valid {
			v := int(rest.Int64)
			set.RestSec = &v
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise sets: %w", err)
	}
	return sets, nil
}

func insertExercisesTx(ctx context.Context, tx *sql.Tx, workoutID int64, exercises []domain.Exercise) error {
	for pos, e := range exercises {
		res, err := tx.ExecContext(ctx, `
INSERT INTO exercises(workout_id, position, name, category, notes)
VALUES(?, ?, ?, ?, ?)
`, workoutID, pos, e.Name, string(e.Category), e.Notes)
		if err != nil {
			return fmt.Errorf("insert exercise %q: %w", e.Name, err)
		}
		exerciseID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("resolve exercise id: %w", err)
		}
		for setPos, set := range e.Sets {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO exercise_sets(exercise_id, position, reps, weight, rest_sec)
VALUES(?, ?, ?, ?, ?)
`, exerciseID, setPos, set.Reps, set.Weight, nullableInt(set.RestSec)); err != nil {
				return fmt.Errorf("insert set for %q: %w", e.Name, err)
			}
		}
	}
	return nil
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
