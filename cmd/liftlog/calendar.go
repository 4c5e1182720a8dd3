package liftlog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	calendarMonth    string
	calendarSelected string
	calendarJSON     bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month grid of training days",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if calendarMonth != "" {
			parsed, err := time.Parse("2006-01", calendarMonth)
			if err != nil {
				return fmt.Errorf("invalid month %q, want YYYY-MM", calendarMonth)
			}
			year, month = parsed.Year(), parsed.Month()
		}
		var selected time.Time
		if calendarSelected != "" {
			var err error
			if selected, err = parseDayOrNow(calendarSelected); err != nil {
				return err
			}
		}
		return withApp(func(env *appEnv) error {
			data, err := env.calendar.MonthData(cmd.Context(), year, month, selected)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if calendarJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}
			fmt.Fprintf(out, "%s %d\n", data.Month, data.Year)
			fmt.Fprintln(out, "Mon  Tue  Wed  Thu  Fri  Sat  Sun")
			var row strings.Builder
			for i, day := range data.Days {
				cell := fmt.Sprintf("%2d", day.Date.Day())
				switch {
				case day.IsSelected:
					cell = "[" + cell + "]"
				case day.IsToday:
					cell = ">" + cell + "<"
				case day.HasWorkout:
					cell = " " + cell + "*"
				case !day.IsCurrentMonth:
					cell = " " + strings.Repeat(".", 2) + " "
				default:
					cell = " " + cell + " "
				}
				row.WriteString(cell)
				if (i+1)%7 == 0 {
					fmt.Fprintln(out, row.String())
					row.Reset()
				} else {
					row.WriteString(" ")
				}
			}
			fmt.Fprintln(out, "\n* trained  > < today  [ ] selected")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month to show as YYYY-MM (default current)")
	calendarCmd.Flags().StringVar(&calendarSelected, "selected", "", "Highlight a day YYYY-MM-DD")
	calendarCmd.Flags().BoolVar(&calendarJSON, "json", false, "Print the grid as JSON")
}
