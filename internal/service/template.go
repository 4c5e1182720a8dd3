package service

import (
	"context"
	"fmt"
	"strings"

	"liftlog/internal/domain"
)

// TemplateService manages the exercise catalog. Seeded templates are
// read-only; only user-created ones can be removed.
type TemplateService struct {
	repo domain.TemplateRepository
}

func NewTemplateService(repo domain.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

type CreateTemplateInput struct {
	Name         string
	Category     string
	Description  string
	Instructions []string
	Tips         []string
}

func (s *TemplateService) Create(ctx context.Context, in CreateTemplateInput) (int64, error) {
	in.Name = strings.ToLower(strings.TrimSpace(in.Name))
	if in.Name == "" {
		return 0, fmt.Errorf("%w: template name is required", domain.ErrInvalidInput)
	}
	category := domain.CategoryOther
	if strings.TrimSpace(in.Category) != "" {
		parsed, err := domain.ParseExerciseCategory(in.Category)
		if err != nil {
			return 0, err
		}
		category = parsed
	}
	t := domain.ExerciseTemplate{
		Name:          in.Name,
		Category:      category,
		Description:   strings.TrimSpace(in.Description),
		Instructions:  trimLines(in.Instructions),
		Tips:          trimLines(in.Tips),
		IsUserCreated: true,
	}
	return s.repo.CreateTemplate(ctx, &t)
}

func (s *TemplateService) Get(ctx context.Context, id int64) (*domain.ExerciseTemplate, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: template id must be > 0", domain.ErrInvalidInput)
	}
	return s.repo.GetTemplate(ctx, id)
}

func (s *TemplateService) List(ctx context.Context, category string) ([]domain.ExerciseTemplate, error) {
	var c domain.ExerciseCategory
	if strings.TrimSpace(category) != "" {
		parsed, err := domain.ParseExerciseCategory(category)
		if err != nil {
			return nil, err
		}
		c = parsed
	}
	return s.repo.ListTemplates(ctx, c)
}

// Delete removes a user-created template; built-in catalog entries stay.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !t.IsUserCreated {
		return fmt.Errorf("%w: template %q is built in and cannot be deleted", domain.ErrInvalidInput, t.Name)
	}
	return s.repo.DeleteTemplate(ctx, id)
}

func trimLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
