package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"liftlog/internal/domain"
)

// Analyzer computes progress statistics over workouts. All aggregation is
// pure and happens over lists fetched once per report.
type Analyzer struct {
	repo domain.WorkoutRepository
}

func NewAnalyzer(repo domain.WorkoutRepository) *Analyzer {
	return &Analyzer{repo: repo}
}

type WeekBucket struct {
	WeekStart string  `json:"week_start"`
	Workouts  int     `json:"workouts"`
	Volume    float64 `json:"volume"`
}

type ProgressReport struct {
	FromDate            string         `json:"from_date"`
	ToDate              string         `json:"to_date"`
	WorkoutCount        int            `json:"workout_count"`
	TotalSets           int            `json:"total_sets"`
	TotalVolume         float64        `json:"total_volume"`
	AvgVolumePerWorkout float64        `json:"avg_volume_per_workout"`
	WorkoutsPerWeek     float64        `json:"workouts_per_week"`
	MostActiveWeekday   string         `json:"most_active_weekday,omitempty"`
	WeekdayCounts       map[string]int `json:"weekday_counts"`
	WeeklyTrend         []WeekBucket   `json:"weekly_trend"`
}

// PersonalRecord holds the best marks for a single exercise name.
type PersonalRecord struct {
	ExerciseName      string  `json:"exercise_name"`
	MaxWeight         float64 `json:"max_weight"`
	MaxWeightReps     int     `json:"max_weight_reps"`
	MaxWeightDate     string  `json:"max_weight_date"`
	BestSessionVolume float64 `json:"best_session_volume"`
	BestSessionDate   string  `json:"best_session_date"`
}

// weekdays in Monday-first order, matching the calendar grid.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Report aggregates the workouts within [from, to] into a ProgressReport.
func (a *Analyzer) Report(ctx context.Context, from, to time.Time) (*ProgressReport, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from date must be <= to date", domain.ErrInvalidInput)
	}
	workouts, err := a.repo.ListWorkouts(ctx, domain.WorkoutFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	report := &ProgressReport{
		FromDate:      domain.DayKey(from),
		ToDate:        domain.DayKey(to),
		WorkoutCount:  len(workouts),
		WeekdayCounts: make(map[string]int),
		WeeklyTrend:   make([]WeekBucket, 0),
	}

	weekVolume := make(map[string]float64)
	weekWorkouts := make(map[string]int)
	for _, w := range workouts {
		report.TotalVolume += w.TotalVolume()
		report.TotalSets += w.TotalSets()
		report.WeekdayCounts[w.PerformedOn.Weekday().String()]++

		week := domain.DayKey(domain.StartOfWeek(w.PerformedOn))
		weekVolume[week] += w.TotalVolume()
		weekWorkouts[week]++
	}

	if report.WorkoutCount > 0 {
		report.AvgVolumePerWorkout = report.TotalVolume / float64(report.WorkoutCount)
	}

	// ties resolve to the earliest weekday, Monday first
	best := 0
	for _, day := range weekdays {
		if count := report.WeekdayCounts[day.String()]; count > best {
			best = count
			report.MostActiveWeekday = day.String()
		}
	}

	// count weeks by stepping calendar days; wall-clock arithmetic is off by
	// an hour across DST transitions
	weeksSpanned := 1
	for week := domain.StartOfWeek(from); week.Before(domain.StartOfWeek(to)); week = week.AddDate(0, 0, 7) {
		weeksSpanned++
	}
	report.WorkoutsPerWeek = float64(report.WorkoutCount) / float64(weeksSpanned)

	weeks := make([]string, 0, len(weekVolume))
	for week := range weekVolume {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	for _, week := range weeks {
		report.WeeklyTrend = append(report.WeeklyTrend, WeekBucket{
			WeekStart: week,
			Workouts:  weekWorkouts[week],
			Volume:    weekVolume[week],
		})
	}

	return report, nil
}

// PersonalRecords scans every workout for exercises whose name contains the
// query (case-insensitive) and reports max set weight and best single-
// session volume per matched name. An empty query matches everything.
func (a *Analyzer) PersonalRecords(ctx context.Context, query string) ([]PersonalRecord, error) {
	workouts, err := a.repo.ListWorkouts(ctx, domain.WorkoutFilter{})
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))

	records := make(map[string]*PersonalRecord)
	for _, w := range workouts {
		day := domain.DayKey(w.PerformedOn)
		// the same movement can appear more than once in a session; its
		// session volume is the sum across all appearances
		sessionVolume := make(map[string]float64)
		for _, e := range w.Exercises {
			name := strings.ToLower(strings.TrimSpace(e.Name))
			if query != "" && !strings.Contains(name, query) {
				continue
			}
			rec, ok := records[name]
			if !ok {
				rec = &PersonalRecord{ExerciseName: name}
				records[name] = rec
			}
			for _, set := range e.Sets {
				if set.Weight > rec.MaxWeight {
					rec.MaxWeight = set.Weight
					rec.MaxWeightReps = set.Reps
					rec.MaxWeightDate = day
				}
			}
			sessionVolume[name] += e.Volume()
		}
		for name, volume := range sessionVolume {
			if rec := records[name]; volume > rec.BestSessionVolume {
				rec.BestSessionVolume = volume
				rec.BestSessionDate = day
			}
		}
	}

	out := make([]PersonalRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExerciseName < out[j].ExerciseName })
	return out, nil
}
