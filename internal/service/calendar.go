package service

import (
	"context"
	"fmt"
	"time"

	"liftlog/internal/domain"
)

// CalendarService builds month grids from stored workout dates.
type CalendarService struct {
	repo domain.WorkoutRepository
	now  func() time.Time
}

func NewCalendarService(repo domain.WorkoutRepository) *CalendarService {
	return &CalendarService{repo: repo, now: time.Now}
}

// MonthData returns the 42-cell grid for the given month. selected may be
// the zero time when no day is highlighted.
func (s *CalendarService) MonthData(ctx context.Context, year int, month time.Month, selected time.Time) (domain.MonthData, error) {
	if month < time.January || month > time.December {
		return domain.MonthData{}, fmt.Errorf("%w: invalid month %d", domain.ErrInvalidInput, month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	gridStart := domain.StartOfWeek(first)
	gridEnd := gridStart.AddDate(0, 0, domain.CalendarCells-1)

	counts, err := s.repo.WorkoutCountsByDay(ctx, gridStart, gridEnd)
	if err != nil {
		return domain.MonthData{}, err
	}
	return domain.GenerateMonthData(year, month, counts, selected, s.now()), nil
}
