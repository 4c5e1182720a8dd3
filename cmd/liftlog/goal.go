package liftlog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"liftlog/internal/domain"
	"liftlog/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Track fitness goals",
}

var (
	goalType        string
	goalTitle       string
	goalDescription string
	goalTarget      float64
	goalCurrent     float64
	goalUnit        string
	goalDeadline    string
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal",
	Example: `  liftlog goal add --type strength --title "Squat 140 kg" \
    --target 140 --current 110 --unit kg --deadline 2026-12-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CreateGoalInput{
			Type:         goalType,
			Title:        goalTitle,
			Description:  goalDescription,
			TargetValue:  goalTarget,
			CurrentValue: goalCurrent,
			Unit:         goalUnit,
		}
		if goalDeadline != "" {
			d, err := parseDayOrNow(goalDeadline)
			if err != nil {
				return err
			}
			in.Deadline = &d
		}
		return withApp(func(env *appEnv) error {
			g, err := env.goals.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %d: %s\n", g.ID, g.Title)
			return nil
		})
	},
}

var goalListAll bool

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			goals, err := env.goals.List(cmd.Context(), goalListAll)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tTYPE\tTITLE\tPROGRESS\tDEADLINE")
			today := time.Now()
			for _, g := range goals {
				deadline := "-"
				if g.Deadline != nil {
					deadline = domain.DayKey(*g.Deadline)
					if g.IsOverdue(today) {
						deadline += " (overdue)"
					}
				}
				status := fmt.Sprintf("%.0f%%", g.ProgressPercentage()*100)
				if g.IsCompleted {
					status = "done"
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", g.ID, g.Type, g.Title, status, deadline)
			}
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("goal id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			g, err := env.goals.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Goal %d: %s (%s)\n", g.ID, g.Title, g.Type)
			if g.Description != "" {
				fmt.Fprintf(out, "%s\n", g.Description)
			}
			fmt.Fprintf(out, "Progress: %.1f / %.1f %s (%.0f%%)\n",
				g.CurrentValue, g.TargetValue, g.Unit, g.ProgressPercentage()*100)
			fmt.Fprintf(out, "Remaining: %.1f %s\n", g.RemainingValue(), g.Unit)
			if g.Deadline != nil {
				fmt.Fprintf(out, "Deadline: %s\n", domain.DayKey(*g.Deadline))
			}
			if g.IsCompleted {
				fmt.Fprintln(out, "Status: completed")
			} else if g.IsOverdue(time.Now()) {
				fmt.Fprintln(out, "Status: overdue")
			} else {
				fmt.Fprintln(out, "Status: active")
			}
			return nil
		})
	},
}

var (
	progressDate  string
	progressNotes string
)

var goalProgressCmd = &cobra.Command{
	Use:   "progress ID VALUE",
	Short: "Record progress toward a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("goal id", args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid progress value %q", args[1])
		}
		recordedOn, err := parseDayOrNow(progressDate)
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			g, err := env.goals.UpdateProgress(cmd.Context(), id, value, recordedOn, progressNotes)
			if err != nil {
				return err
			}
			if g.IsCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Goal %q completed!\n", g.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f / %.1f %s (%.0f%%)\n",
					g.Title, g.CurrentValue, g.TargetValue, g.Unit, g.ProgressPercentage()*100)
			}
			return nil
		})
	},
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history ID",
	Short: "Show a goal's progress records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("goal id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			records, err := env.goals.History(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tVALUE\tNOTES")
			for _, r := range records {
				fmt.Fprintf(out, "%s\t%.1f\t%s\n", domain.DayKey(r.RecordedOn), r.Value, r.Notes)
			}
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a goal and its progress records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("goal id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			if err := env.goals.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalShowCmd, goalProgressCmd, goalHistoryCmd, goalDeleteCmd)

	goalAddCmd.Flags().StringVar(&goalType, "type", "custom", "Goal type: weight_loss, muscle_gain, strength, endurance, frequency, custom")
	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	goalAddCmd.Flags().StringVar(&goalDescription, "description", "", "Goal description")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target value")
	goalAddCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Current value")
	goalAddCmd.Flags().StringVar(&goalUnit, "unit", "", "Unit of measure, e.g. kg or sessions")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "Deadline YYYY-MM-DD")

	goalListCmd.Flags().BoolVar(&goalListAll, "all", false, "Include completed goals")

	goalProgressCmd.Flags().StringVar(&progressDate, "date", "", "Record date YYYY-MM-DD (default today)")
	goalProgressCmd.Flags().StringVar(&progressNotes, "notes", "", "Record notes")
}
