package liftlog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"liftlog/internal/service"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Browse and manage the exercise catalog",
}

var templateCategory string

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			templates, err := env.templates.List(cmd.Context(), templateCategory)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tCATEGORY\tSOURCE")
			for _, t := range templates {
				source := "built-in"
				if t.IsUserCreated {
					source = "custom"
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Category, source)
			}
			return nil
		})
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one exercise template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("template id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			t, err := env.templates.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", t.Name, t.Category)
			if t.Description != "" {
				fmt.Fprintf(out, "%s\n", t.Description)
			}
			if len(t.Instructions) > 0 {
				fmt.Fprintln(out, "\nInstructions:")
				for i, line := range t.Instructions {
					fmt.Fprintf(out, "  %d. %s\n", i+1, line)
				}
			}
			if len(t.Tips) > 0 {
				fmt.Fprintln(out, "\nTips:")
				for _, line := range t.Tips {
					fmt.Fprintf(out, "  - %s\n", line)
				}
			}
			return nil
		})
	},
}

var (
	templateDescription  string
	templateInstructions string
	templateTips         string
)

var templateAddCmd = &cobra.Command{
	Use:   "add NAME CATEGORY",
	Short: "Add a custom exercise template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CreateTemplateInput{
			Name:         args[0],
			Category:     args[1],
			Description:  templateDescription,
			Instructions: splitLines(templateInstructions),
			Tips:         splitLines(templateTips),
		}
		return withApp(func(env *appEnv) error {
			id, err := env.templates.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created template %d: %s\n", id, strings.ToLower(args[0]))
			return nil
		})
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a custom exercise template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("template id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(env *appEnv) error {
			if err := env.templates.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %d\n", id)
			return nil
		})
	},
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd, templateShowCmd, templateAddCmd, templateDeleteCmd)

	templateListCmd.Flags().StringVar(&templateCategory, "category", "", "Filter by category")

	templateAddCmd.Flags().StringVar(&templateDescription, "description", "", "Template description")
	templateAddCmd.Flags().StringVar(&templateInstructions, "instructions", "", "Semicolon-separated instruction steps")
	templateAddCmd.Flags().StringVar(&templateTips, "tips", "", "Semicolon-separated tips")
}
