package liftlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftlog/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the database for inconsistencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			report, err := service.RunDoctor(env.db, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Orphan exercises:  %d\n", report.OrphanExercises)
			fmt.Fprintf(out, "Orphan sets:       %d\n", report.OrphanSets)
			fmt.Fprintf(out, "Empty workouts:    %d\n", report.EmptyWorkouts)
			fmt.Fprintf(out, "Invalid dates:     %d\n", report.InvalidDates)
			fmt.Fprintf(out, "Stale goal values: %d\n", report.StaleGoalValues)
			if doctorFix {
				fmt.Fprintf(out, "\nFixed goal values: %d\n", report.FixedGoalValues)
				fmt.Fprintf(out, "Removed orphans:   %d\n", report.RemovedOrphans)
			} else if report.StaleGoalValues > 0 || report.OrphanExercises > 0 || report.OrphanSets > 0 {
				fmt.Fprintln(out, "\nRun with --fix to repair.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair what can be repaired")
}
