package liftlog

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := exportOut
		if out == "" {
			out = "liftlog-export.json"
		}
		return withApp(func(env *appEnv) error {
			if err := env.porter.WriteExport(cmd.Context(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import data from a JSON export",
	Long: `Reads a liftlog JSON export and replays it into the current database.
Imported entities pass through the usual validation; invalid ones are
skipped and counted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			summary, err := env.porter.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d workouts, %d goals, %d templates (%d skipped)\n",
				summary.Workouts, summary.Goals, summary.Templates, summary.Skipped)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default liftlog-export.json)")
}
