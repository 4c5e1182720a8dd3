package domain

import "time"

// CalendarCells is the fixed size of a month grid: six Monday-start weeks.
const CalendarCells = 42

// CalendarDay is one cell of a month grid. Never persisted.
type CalendarDay struct {
	Date           time.Time `json:"date"`
	HasWorkout     bool      `json:"hasWorkout"`
	WorkoutCount   int       `json:"workoutCount"`
	IsToday        bool      `json:"isToday"`
	IsSelected     bool      `json:"isSelected"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
}

// MonthData is the computed view of one calendar month.
type MonthData struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// DayKey formats a time as the canonical per-day map key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfWeek truncates t to the Monday beginning its week.
func StartOfWeek(t time.Time) time.Time {
	t = startOfDay(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// GenerateMonthData builds the fixed 42-cell grid for a month, including
// leading and trailing days from the adjacent months. workoutCounts is keyed
// by DayKey. selected may be the zero time when no day is selected.
func GenerateMonthData(year int, month time.Month, workoutCounts map[string]int, selected, today time.Time) MonthData {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	gridStart := StartOfWeek(first)

	days := make([]CalendarDay, 0, CalendarCells)
	for i := 0; i < CalendarCells; i++ {
		date := gridStart.AddDate(0, 0, i)
		count := workoutCounts[DayKey(date)]
		days = append(days, CalendarDay{
			Date:           date,
			HasWorkout:     count > 0,
			WorkoutCount:   count,
			IsToday:        sameDay(date, today),
			IsSelected:     !selected.IsZero() && sameDay(date, selected),
			IsCurrentMonth: date.Month() == month && date.Year() == year,
		})
	}
	return MonthData{Year: year, Month: month, Days: days}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
