package liftlog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"liftlog/internal/app"
	"liftlog/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore the database file",
}

var backupOut string

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the database to a backup file with a checksum",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbFile, err := resolveDBPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			stamp := time.Now().Format("20060102-150405")
			out = filepath.Join(filepath.Dir(dbFile), "backups", fmt.Sprintf("liftlog-%s.db", stamp))
		}
		info, err := service.CreateBackup(dbFile, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s (%d bytes)\nsha256 %s\n", info.Path, info.SizeBytes, info.Checksum)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups in the default backup directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbFile, err := resolveDBPath()
		if err != nil {
			return err
		}
		dir := filepath.Join(filepath.Dir(dbFile), "backups")
		backups, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(backups) == 0 {
			fmt.Fprintf(out, "No backups in %s\n", dir)
			return nil
		}
		fmt.Fprintln(out, "CREATED\tSIZE\tPATH")
		for _, b := range backups {
			fmt.Fprintf(out, "%s\t%d\t%s\n", b.CreatedAt.Format(time.RFC3339), b.SizeBytes, b.Path)
		}
		return nil
	},
}

var restoreForce bool

var backupRestoreCmd = &cobra.Command{
	Use:   "restore FILE",
	Short: "Restore the database from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbFile, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(dbFile); err != nil {
			return err
		}
		if err := service.RestoreBackup(args[0], dbFile, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", dbFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)
	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path (default under the db directory)")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing database")
}
