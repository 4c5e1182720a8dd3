package liftlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftlog/internal/app"
	"liftlog/internal/db"
)

var initReset bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and apply migrations",
	Long: `Creates the liftlog database file if it does not exist and brings its
schema up to date. Safe to run repeatedly. With --reset, drops every
table and rebuilds the schema from scratch, destroying all data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		conn, err := db.Open(path)
		if err != nil {
			return err
		}
		defer conn.Close()

		if initReset {
			if err := db.Reset(conn); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset database at %s\n", path)
			return nil
		}
		if err := db.ApplyMigrations(conn); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initReset, "reset", false, "Drop all tables and rebuild the schema")
}
