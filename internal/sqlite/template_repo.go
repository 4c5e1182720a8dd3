package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"liftlog/internal/domain"
)

func (s *Store) CreateTemplate(ctx context.Context, t *domain.ExerciseTemplate) (int64, error) {
	instructions, err := marshalLines(t.Instructions)
	if err != nil {
		return 0, err
	}
	tips, err := marshalLines(t.Tips)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO exercise_templates(name, category, description, is_user_created, instructions_json, tips_json)
VALUES(?, ?, ?, ?, ?, ?)
`, t.Name, string(t.Category), t.Description, boolToInt(t.IsUserCreated), instructions, tips)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return 0, fmt.Errorf("%w: template %q already exists", domain.ErrInvalidInput, t.Name)
		}
		return 0, fmt.Errorf("insert template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve template id: %w", err)
	}
	return id, nil
}

func (s *Store) GetTemplate(ctx context.Context, id int64) (*domain.ExerciseTemplate, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, category, description, is_user_created,
       IFNULL(instructions_json, ''), IFNULL(tips_json, ''), created_at
FROM exercise_templates WHERE id = ?
`, id)
	t, err := scanTemplate(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get template %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) ListTemplates(ctx context.Context, category domain.ExerciseCategory) ([]domain.ExerciseTemplate, error) {
	query := `
SELECT id, name, category, description, is_user_created,
       IFNULL(instructions_json, ''), IFNULL(tips_json, ''), created_at
FROM exercise_templates`
	args := make([]any, 0, 1)
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := make([]domain.ExerciseTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

func (s *Store) DeleteTemplate(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exercise_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete template %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTemplate(scan func(dest ...any) error) (*domain.ExerciseTemplate, error) {
	var (
		t                  domain.ExerciseTemplate
		category           string
		userCreated        int
		instructions, tips string
	)
	if err := scan(&t.ID, &t.Name, &category, &t.Description, &userCreated,
		&instructions, &tips, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Category = domain.ExerciseCategory(category)
	t.IsUserCreated = userCreated != 0
	var err error
	if t.Instructions, err = unmarshalLines(instructions); err != nil {
		return nil, err
	}
	if t.Tips, err = unmarshalLines(tips); err != nil {
		return nil, err
	}
	return &t, nil
}

func marshalLines(lines []string) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("marshal template lines: %w", err)
	}
	return string(b), nil
}

func unmarshalLines(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var lines []string
	if err := json.Unmarshal([]byte(value), &lines); err != nil {
		return nil, fmt.Errorf("unmarshal template lines: %w", err)
	}
	return lines, nil
}
