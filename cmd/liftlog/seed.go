package liftlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftlog/internal/service"
)

var (
	seedDays int
	seedSeed int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			summary, err := service.SeedDemoData(cmd.Context(), env.workouts, env.goals, seedDays, seedSeed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d workouts and %d goals\n", summary.Workouts, summary.Goals)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedDays, "days", 60, "How many past days to cover")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 1, "Random seed")
}
