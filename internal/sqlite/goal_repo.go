package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"liftlog/internal/domain"
)

func (s *Store) CreateGoal(ctx context.Context, g *domain.Goal) (int64, error) {
	var deadline any
	if g.Deadline != nil {
		deadline = formatDay(*g.Deadline)
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO goals(goal_type, title, description, target_value, current_value, unit, deadline, is_completed)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, string(g.Type), g.Title, g.Description, g.TargetValue, g.CurrentValue, g.Unit, deadline, boolToInt(g.IsCompleted))
	if err != nil {
		return 0, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve goal id: %w", err)
	}
	return id, nil
}

func (s *Store) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, goal_type, title, description, target_value, current_value, unit, deadline, is_completed, created_at, updated_at
FROM goals WHERE id = ?
`, id)
	g, err := scanGoal(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get goal %d: %w", id, err)
	}
	return g, nil
}

func (s *Store) ListGoals(ctx context.Context, includeCompleted bool) ([]domain.Goal, error) {
	query := `
SELECT id, goal_type, title, description, target_value, current_value, unit, deadline, is_completed, created_at, updated_at
FROM goals`
	if !includeCompleted {
		query += ` WHERE is_completed = 0`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *domain.Goal) error {
	var deadline any
	if g.Deadline != nil {
		deadline = formatDay(*g.Deadline)
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE goals
SET goal_type = ?, title = ?, description = ?, target_value = ?, current_value = ?,
    unit = ?, deadline = ?, is_completed = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, string(g.Type), g.Title, g.Description, g.TargetValue, g.CurrentValue, g.Unit, deadline, boolToInt(g.IsCompleted), g.ID)
	if err != nil {
		return fmt.Errorf("update goal %d: %w", g.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %d: %w", g.ID, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) AddProgressRecord(ctx context.Context, r *domain.GoalProgressRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO goal_progress(goal_id, recorded_on, value, notes)
VALUES(?, ?, ?, ?)
`, r.GoalID, formatDay(r.RecordedOn), r.Value, r.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert progress record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve progress record id: %w", err)
	}
	return id, nil
}

func (s *Store) ListProgressRecords(ctx context.Context, goalID int64) ([]domain.GoalProgressRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, goal_id, recorded_on, value, notes, created_at
FROM goal_progress
WHERE goal_id = ?
ORDER BY recorded_on ASC, id ASC
`, goalID)
	if err != nil {
		return nil, fmt.Errorf("list progress for goal %d: %w", goalID, err)
	}
	defer rows.Close()

	records := make([]domain.GoalProgressRecord, 0)
	for rows.Next() {
		var r domain.GoalProgressRecord
		var recordedRaw string
		if err := rows.Scan(&r.ID, &r.GoalID, &recordedRaw, &r.Value, &r.Notes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan progress record: %w", err)
		}
		if r.RecordedOn, err = parseDay(recordedRaw); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress records: %w", err)
	}
	return records, nil
}

func scanGoal(scan func(dest ...any) error) (*domain.Goal, error) {
	var (
		g           domain.Goal
		goalType    string
		deadlineRaw sql.NullString
		completed   int
	)
	if err := scan(&g.ID, &goalType, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue,
		&g.Unit, &deadlineRaw, &completed, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Type = domain.GoalType(goalType)
	g.IsCompleted = completed != 0
	if deadlineRaw.Valid && deadlineRaw.String != "" {
		d, err := parseDay(deadlineRaw.String)
		if err != nil {
			return nil, err
		}
		g.Deadline = &d
	}
	return &g, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
