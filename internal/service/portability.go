package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"liftlog/internal/domain"
)

const exportVersion = 1

type GoalExport struct {
	Goal     domain.Goal                 `json:"goal"`
	Progress []domain.GoalProgressRecord `json:"progress"`
}

type ExportDocument struct {
	Version    int                       `json:"version"`
	ExportedAt time.Time                 `json:"exported_at"`
	Workouts   []domain.Workout          `json:"workouts"`
	Goals      []GoalExport              `json:"goals"`
	Templates  []domain.ExerciseTemplate `json:"templates"`
}

// PortabilityService moves the full dataset in and out as JSON. Imports run
// through the regular services so the usual validation applies.
type PortabilityService struct {
	workouts     *WorkoutService
	goals        *GoalService
	templates    *TemplateService
	workoutRepo  domain.WorkoutRepository
	goalRepo     domain.GoalRepository
	templateRepo domain.TemplateRepository
}

func NewPortabilityService(
	workouts *WorkoutService,
	goals *GoalService,
	templates *TemplateService,
	workoutRepo domain.WorkoutRepository,
	goalRepo domain.GoalRepository,
	templateRepo domain.TemplateRepository,
) *PortabilityService {
	return &PortabilityService{
		workouts:     workouts,
		goals:        goals,
		templates:    templates,
		workoutRepo:  workoutRepo,
		goalRepo:     goalRepo,
		templateRepo: templateRepo,
	}
}

// Export collects every workout, goal (with history) and user-created
// template into a single document.
func (s *PortabilityService) Export(ctx context.Context) (*ExportDocument, error) {
	workouts, err := s.workoutRepo.ListWorkouts(ctx, domain.WorkoutFilter{})
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.ListGoals(ctx, true)
	if err != nil {
		return nil, err
	}
	goalExports := make([]GoalExport, 0, len(goals))
	for _, g := range goals {
		progress, err := s.goalRepo.ListProgressRecords(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		goalExports = append(goalExports, GoalExport{Goal: g, Progress: progress})
	}
	templates, err := s.templateRepo.ListTemplates(ctx, "")
	if err != nil {
		return nil, err
	}
	userTemplates := make([]domain.ExerciseTemplate, 0)
	for _, t := range templates {
		if t.IsUserCreated {
			userTemplates = append(userTemplates, t)
		}
	}
	return &ExportDocument{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC(),
		Workouts:   workouts,
		Goals:      goalExports,
		Templates:  userTemplates,
	}, nil
}

// WriteExport marshals the export document to path.
func (s *PortabilityService) WriteExport(ctx context.Context, path string) error {
	doc, err := s.Export(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

type ImportSummary struct {
	Workouts  int `json:"workouts"`
	Goals     int `json:"goals"`
	Templates int `json:"templates"`
	Skipped   int `json:"skipped"`
}

// ImportFile reads an export document and replays it through the services.
// Entities that fail validation are skipped, not fatal.
func (s *PortabilityService) ImportFile(ctx context.Context, path string) (*ImportSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if doc.Version != exportVersion {
		return nil, fmt.Errorf("%w: unsupported export version %d", domain.ErrInvalidInput, doc.Version)
	}

	summary := &ImportSummary{}
	for _, w := range doc.Workouts {
		_, err := s.workouts.Add(ctx, AddWorkoutInput{
			PerformedOn: w.PerformedOn,
			Exercises:   stripIDs(w.Exercises),
			DurationMin: w.DurationMin,
			Notes:       w.Notes,
		})
		if err != nil {
			logrus.WithError(err).Warn("skipping workout on import")
			summary.Skipped++
			continue
		}
		summary.Workouts++
	}

	for _, ge := range doc.Goals {
		// deadlines may already be in the past in an old export; drop them
		// rather than losing the goal
		deadline := ge.Goal.Deadline
		if deadline != nil && deadline.Before(time.Now()) {
			deadline = nil
		}
		// with no progress history the exported current value is the only
		// record of it; otherwise the replay below rebuilds it
		initial := 0.0
		if len(ge.Progress) == 0 {
			initial = ge.Goal.CurrentValue
		}
		created, err := s.goals.Create(ctx, CreateGoalInput{
			Type:         string(ge.Goal.Type),
			Title:        ge.Goal.Title,
			Description:  ge.Goal.Description,
			TargetValue:  ge.Goal.TargetValue,
			CurrentValue: initial,
			Unit:         ge.Goal.Unit,
			Deadline:     deadline,
		})
		if err != nil {
			logrus.WithError(err).Warn("skipping goal on import")
			summary.Skipped++
			continue
		}
		for _, rec := range ge.Progress {
			if _, err := s.goals.UpdateProgress(ctx, created.ID, rec.Value, rec.RecordedOn, rec.Notes); err != nil {
				logrus.WithError(err).Warn("skipping progress record on import")
				summary.Skipped++
			}
		}
		summary.Goals++
	}

	for _, t := range doc.Templates {
		_, err := s.templates.Create(ctx, CreateTemplateInput{
			Name:         t.Name,
			Category:     string(t.Category),
			Description:  t.Description,
			Instructions: t.Instructions,
			Tips:         t.Tips,
		})
		if err != nil {
			logrus.WithError(err).Warn("skipping template on import")
			summary.Skipped++
			continue
		}
		summary.Templates++
	}
	return summary, nil
}

func stripIDs(exercises []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, len(exercises))
	copy(out, exercises)
	for i := range out {
		out[i].ID = 0
		sets := make([]domain.ExerciseSet, len(out[i].Sets))
		copy(sets, out[i].Sets)
		for j := range sets {
			sets[j].ID = 0
		}
		out[i].Sets = sets
	}
	return out
}
