package liftlog

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"liftlog/internal/app"
	"liftlog/internal/db"
	"liftlog/internal/domain"
	"liftlog/internal/service"
	"liftlog/internal/sqlite"
)

// appEnv wires the store and services for one command invocation.
type appEnv struct {
	db          *sql.DB
	dbPath      string
	workouts    *service.WorkoutService
	goals       *service.GoalService
	templates   *service.TemplateService
	settings    *service.SettingsService
	analyzer    *service.Analyzer
	calendar    *service.CalendarService
	porter      *service.PortabilityService
	workoutRepo domain.WorkoutRepository
	goalRepo    domain.GoalRepository
}

func withApp(run func(*appEnv) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	store := sqlite.New(sqldb)
	workouts := service.NewWorkoutService(store)
	goals := service.NewGoalService(store)
	templates := service.NewTemplateService(store)
	env := &appEnv{
		db:          sqldb,
		dbPath:      path,
		workouts:    workouts,
		goals:       goals,
		templates:   templates,
		settings:    service.NewSettingsService(store),
		analyzer:    service.NewAnalyzer(store),
		calendar:    service.NewCalendarService(store),
		porter:      service.NewPortabilityService(workouts, goals, templates, store, store, store),
		workoutRepo: store,
		goalRepo:    store,
	}
	return run(env)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// parseDayOrNow parses YYYY-MM-DD, defaulting to now when empty.
func parseDayOrNow(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

// parseExerciseSpec parses one --exercise value of the form
// "name[:category]:SETS" where SETS is a comma list of WEIGHTxREPS tokens,
// each optionally suffixed with @RESTSEC, e.g.
// "bench press:chest:100x5,100x5,95x8@120".
func parseExerciseSpec(spec string) (domain.Exercise, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.Exercise{}, fmt.Errorf("invalid exercise %q (expected name[:category]:sets)", spec)
	}
	e := domain.Exercise{Name: strings.TrimSpace(parts[0])}
	setsPart := parts[len(parts)-1]
	if len(parts) == 3 {
		category, err := domain.ParseExerciseCategory(parts[1])
		if err != nil {
			return domain.Exercise{}, err
		}
		e.Category = category
	}

	for _, token := range strings.Split(setsPart, ",") {
		set, err := parseSetToken(token)
		if err != nil {
			return domain.Exercise{}, err
		}
		e.Sets = append(e.Sets, set)
	}
	return e, nil
}

func parseSetToken(token string) (domain.ExerciseSet, error) {
	token = strings.TrimSpace(token)
	rest := 0
	if at := strings.Index(token, "@"); at >= 0 {
		v, err := strconv.Atoi(strings.TrimSpace(token[at+1:]))
		if err != nil || v <= 0 {
			return domain.ExerciseSet{}, fmt.Errorf("invalid rest in set %q", token)
		}
		rest = v
		token = token[:at]
	}
	fields := strings.SplitN(strings.ToLower(token), "x", 2)
	if len(fields) != 2 {
		return domain.ExerciseSet{}, fmt.Errorf("invalid set %q (expected WEIGHTxREPS)", token)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || weight < 0 {
		return domain.ExerciseSet{}, fmt.Errorf("invalid weight in set %q", token)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || reps < 1 {
		return domain.ExerciseSet{}, fmt.Errorf("invalid reps in set %q", token)
	}
	set := domain.ExerciseSet{Reps: reps, Weight: weight}
	if rest > 0 {
		set.RestSec = &rest
	}
	return set, nil
}

// formatWeight renders a stored-kg value in the configured display unit.
func formatWeight(kg float64, unit string) string {
	return fmt.Sprintf("%.1f %s", domain.ConvertWeight(kg, "kg", unit), unit)
}
