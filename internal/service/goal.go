package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"liftlog/internal/domain"
)

// GoalService encapsulates goal tracking use cases.
type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

type CreateGoalInput struct {
	Type         string
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Deadline     *time.Time
}

// Create validates and stores a new goal, returning it with its id set.
func (s *GoalService) Create(ctx context.Context, in CreateGoalInput) (*domain.Goal, error) {
	goalType, err := domain.ParseGoalType(in.Type)
	if err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: goal title is required", domain.ErrInvalidInput)
	}
	in.Unit = strings.TrimSpace(in.Unit)
	if in.Unit == "" {
		return nil, fmt.Errorf("%w: goal unit is required", domain.ErrInvalidInput)
	}
	if in.TargetValue <= 0 {
		return nil, fmt.Errorf("%w: target value must be > 0", domain.ErrInvalidInput)
	}
	if in.CurrentValue < 0 {
		return nil, fmt.Errorf("%w: current value must be >= 0", domain.ErrInvalidInput)
	}
	if in.Deadline != nil && in.Deadline.Before(todayStart()) {
		return nil, fmt.Errorf("%w: deadline must not be in the past", domain.ErrInvalidInput)
	}

	g := domain.Goal{
		Type:         goalType,
		Title:        in.Title,
		Description:  strings.TrimSpace(in.Description),
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Unit:         in.Unit,
		Deadline:     in.Deadline,
		IsCompleted:  in.CurrentValue >= in.TargetValue,
	}
	id, err := s.repo.CreateGoal(ctx, &g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	return &g, nil
}

// UpdateProgress appends a progress record, moves the goal's current value
// to the recorded one, and completes the goal the moment the target is met.
func (s *GoalService) UpdateProgress(ctx context.Context, goalID int64, value float64, recordedOn time.Time, notes string) (*domain.Goal, error) {
	if goalID <= 0 {
		return nil, fmt.Errorf("%w: goal id must be > 0", domain.ErrInvalidInput)
	}
	if value < 0 {
		return nil, fmt.Errorf("%w: progress value must be >= 0", domain.ErrInvalidInput)
	}
	goal, err := s.repo.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if recordedOn.IsZero() {
		recordedOn = time.Now()
	}

	record := domain.GoalProgressRecord{
		GoalID:     goalID,
		RecordedOn: recordedOn,
		Value:      value,
		Notes:      strings.TrimSpace(notes),
	}
	if _, err := s.repo.AddProgressRecord(ctx, &record); err != nil {
		return nil, err
	}

	goal.CurrentValue = value
	if goal.IsAchieved() && !goal.IsCompleted {
		goal.IsCompleted = true
		logrus.WithFields(logrus.Fields{
			"goal":  goal.Title,
			"value": value,
		}).Info("goal completed")
	}
	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Get(ctx context.Context, id int64) (*domain.Goal, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: goal id must be > 0", domain.ErrInvalidInput)
	}
	return s.repo.GetGoal(ctx, id)
}

func (s *GoalService) List(ctx context.Context, includeCompleted bool) ([]domain.Goal, error) {
	return s.repo.ListGoals(ctx, includeCompleted)
}

// History returns the append-only progress snapshots for a goal.
func (s *GoalService) History(ctx context.Context, goalID int64) ([]domain.GoalProgressRecord, error) {
	if goalID <= 0 {
		return nil, fmt.Errorf("%w: goal id must be > 0", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}
	return s.repo.ListProgressRecords(ctx, goalID)
}

// Delete removes a goal; its progress records cascade away with it.
func (s *GoalService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: goal id must be > 0", domain.ErrInvalidInput)
	}
	return s.repo.DeleteGoal(ctx, id)
}

func todayStart() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
