package liftlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liftlog/internal/app"
	"liftlog/internal/config"
	"liftlog/internal/logging"
)

var (
	dbPath     string
	configPath string
	verbose    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "liftlog tracks workouts, goals, and progress from your terminal",
	Long:  "liftlog is a local-first workout tracking CLI with exercise templates, goals, progress statistics, and a training calendar.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			defaultPath, err := app.DefaultConfigPath()
			if err == nil {
				path = defaultPath
			}
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logging.Setup(logging.SetupParams{
			LogFileName: cfg.LogFile,
			LogToStdout: cfg.LogToStdout,
			LogLevel:    level,
			LogJSON:     cfg.LogJSON,
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
