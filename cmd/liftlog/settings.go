package liftlog

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change preferences",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			settings, err := env.settings.List(cmd.Context())
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, settings[k])
			}
			return nil
		})
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			value, ok, err := env.settings.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("setting %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:     "set KEY VALUE",
	Short:   "Change a setting",
	Example: `  liftlog settings set weight_unit lb`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.settings.Set(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsListCmd, settingsGetCmd, settingsSetCmd)
}
