package liftlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftlog/internal/domain"
	"liftlog/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and browse workouts",
}

var (
	workoutDate      string
	workoutDuration  int
	workoutNotes     string
	workoutExercises []string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	Example: `  liftlog workout add --exercise "bench press:chest:100x5,100x5,95x8" \
    --exercise "barbell row:back:80x8,80x8" --duration 55`,
	RunE: func(cmd *cobra.Command, args []string) error {
		performedOn, err := parseDayOrNow(workoutDate)
		if err != nil {
			return err
		}
		exercises := make([]domain.Exercise, 0, len(workoutExercises))
		for _, spec := range workoutExercises {
			e, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			exercises = append(exercises, e)
		}
		in := service.AddWorkoutInput{
			PerformedOn: performedOn,
			Exercises:   exercises,
			Notes:       workoutNotes,
		}
		if workoutDuration > 0 {
			in.DurationMin = &workoutDuration
		}
		return withApp(func(env *appEnv) error {
			id, err := env.workouts.Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %d on %s\n", id, domain.DayKey(performedOn))
			return nil
		})
	},
}

var (
	workoutFrom  string
	workoutTo    string
	workoutLimit int
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		var f domain.WorkoutFilter
		var err error
		if workoutFrom != "" {
			if f.From, err = parseDayOrNow(workoutFrom); err != nil {
				return err
			}
		}
		if workoutTo != "" {
			if f.To, err = parseDayOrNow(workoutTo); err != nil {
				return err
			}
		}
		f.Limit = workoutLimit
		return withApp(func(env *appEnv) error {
			workouts, err := env.workouts.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			unit, err := env.settings.WeightUnit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tEXERCISES\tSETS\tVOLUME")
			for _, w := range workouts {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%d\t%s\n",
					w.ID, domain.DayKey(w.PerformedOn), len(w.Exercises), w.TotalSets(),
					formatWeight(w.TotalVolume(), unit))
			}
			return nil
		})
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one workout with its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("workout id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			w, err := env.workouts.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			unit, err := env.settings.WeightUnit(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workout %d on %s\n", w.ID, domain.DayKey(w.PerformedOn))
			if w.DurationMin != nil {
				fmt.Fprintf(out, "Duration: %d min\n", *w.DurationMin)
			}
			if w.Notes != "" {
				fmt.Fprintf(out, "Notes: %s\n", w.Notes)
			}
			for _, e := range w.Exercises {
				fmt.Fprintf(out, "\n%s (%s)\n", e.Name, e.Category)
				for i, set := range e.Sets {
					fmt.Fprintf(out, "  set %d: %s x %d", i+1, formatWeight(set.Weight, unit), set.Reps)
					if set.RestSec != nil {
						fmt.Fprintf(out, " (rest %ds)", *set.RestSec)
					}
					fmt.Fprintln(out)
				}
			}
			fmt.Fprintf(out, "\nTotal volume: %s across %d sets\n", formatWeight(w.TotalVolume(), unit), w.TotalSets())
			return nil
		})
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Replace a workout's exercise list",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("workout id is required")
		}
		id, err := parseInt64Arg("workout id", args[0])
		if err != nil {
			return err
		}
		exercises := make([]domain.Exercise, 0, len(workoutExercises))
		for _, spec := range workoutExercises {
			e, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			exercises = append(exercises, e)
		}
		return withApp(func(env *appEnv) error {
			if err := env.workouts.ReplaceExercises(cmd.Context(), id, exercises); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workout %d\n", id)
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a workout and its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("workout id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			if err := env.workouts.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutShowCmd, workoutEditCmd, workoutDeleteCmd)

	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Workout date YYYY-MM-DD (default today)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "Workout notes")
	workoutAddCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "Exercise spec name[:category]:sets (repeatable)")

	workoutEditCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "Exercise spec name[:category]:sets (repeatable)")

	workoutListCmd.Flags().StringVar(&workoutFrom, "from", "", "Start date YYYY-MM-DD")
	workoutListCmd.Flags().StringVar(&workoutTo, "to", "", "End date YYYY-MM-DD")
	workoutListCmd.Flags().IntVar(&workoutLimit, "limit", 20, "Max rows")
}
