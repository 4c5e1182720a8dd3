package liftlog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"liftlog/internal/service"
)

var (
	statsFrom string
	statsTo   string
	statsJSON bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Progress report over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		to := time.Now()
		from := to.AddDate(0, -1, 0)
		var err error
		if statsFrom != "" {
			if from, err = parseDayOrNow(statsFrom); err != nil {
				return err
			}
		}
		if statsTo != "" {
			if to, err = parseDayOrNow(statsTo); err != nil {
				return err
			}
		}
		return withApp(func(env *appEnv) error {
			report, err := env.analyzer.Report(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if statsJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			unit, err := env.settings.WeightUnit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Progress %s to %s\n\n", report.FromDate, report.ToDate)
			fmt.Fprintf(out, "Workouts:        %d (%.1f per week)\n", report.WorkoutCount, report.WorkoutsPerWeek)
			fmt.Fprintf(out, "Total sets:      %d\n", report.TotalSets)
			fmt.Fprintf(out, "Total volume:    %s\n", formatWeight(report.TotalVolume, unit))
			fmt.Fprintf(out, "Avg per workout: %s\n", formatWeight(report.AvgVolumePerWorkout, unit))
			if report.MostActiveWeekday != "" {
				fmt.Fprintf(out, "Busiest weekday: %s\n", report.MostActiveWeekday)
			}
			if len(report.WeeklyTrend) > 0 {
				fmt.Fprintln(out, "\nWEEK\tWORKOUTS\tVOLUME")
				for _, week := range report.WeeklyTrend {
					fmt.Fprintf(out, "%s\t%d\t%s\n", week.WeekStart, week.Workouts, formatWeight(week.Volume, unit))
				}
			}
			return nil
		})
	},
}

var prsCmd = &cobra.Command{
	Use:   "prs [QUERY]",
	Short: "Personal records per exercise",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return withApp(func(env *appEnv) error {
			records, err := env.analyzer.PersonalRecords(cmd.Context(), query)
			if err != nil {
				return err
			}
			unit, err := env.settings.WeightUnit(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No matching exercises logged yet.")
				return nil
			}
			fmt.Fprintln(out, "EXERCISE\tMAX WEIGHT\tDATE\tBEST SESSION\tDATE")
			for _, rec := range records {
				fmt.Fprintf(out, "%s\t%s x %d\t%s\t%s\t%s\n",
					rec.ExerciseName, formatWeight(rec.MaxWeight, unit), rec.MaxWeightReps, rec.MaxWeightDate,
					formatWeight(rec.BestSessionVolume, unit), rec.BestSessionDate)
			}
			return nil
		})
	},
}

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's training load and active goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			status, err := service.TodaySummary(cmd.Context(), env.workoutRepo, env.goalRepo, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if todayJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}
			unit, err := env.settings.WeightUnit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d workout(s), %d sets, %s total volume\n",
				status.Date, status.Workouts, status.TotalSets, formatWeight(status.TotalVolume, unit))
			if len(status.ActiveGoals) == 0 {
				fmt.Fprintln(out, "No active goals.")
				return nil
			}
			fmt.Fprintln(out, "\nActive goals:")
			for _, g := range status.ActiveGoals {
				line := fmt.Sprintf("  %s: %.1f / %.1f %s (%.0f%%)", g.Title, g.Current, g.Target, g.Unit, g.Progress*100)
				if g.Overdue {
					line += " overdue"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, prsCmd, todayCmd)
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "Start date YYYY-MM-DD (default one month ago)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "End date YYYY-MM-DD (default today)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the report as JSON")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print the summary as JSON")
}
