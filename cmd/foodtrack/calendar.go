package foodtrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/mullermatej/food-tracker-mobile-app/internal/dateutil"
	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/numfmt"
	"github.com/spf13/cobra"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month grid marking days with logged data",
	RunE: func(cmd *cobra.Command, args []string) error {
		first := time.Now()
		if calendarMonth != "" {
			parsed, err := dateutil.ParseMonth(calendarMonth)
			if err != nil {
				return err
			}
			first = parsed
		}
		first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)

		return withStores(func(e *env) error {
			out := cmd.OutOrStdout()
			snapshot := e.ledger.Snapshot()

			fmt.Fprintf(out, "%s %d\n", first.Month(), first.Year())
			fmt.Fprintln(out, "Mo Tu We Th Fr Sa Su")

			// Monday-first column offset for the 1st of the month.
			offset := (int(first.Weekday()) + 6) % 7
			daysInMonth := first.AddDate(0, 1, -1).Day()

			var line strings.Builder
			line.WriteString(strings.Repeat("   ", offset))
			col := offset
			totalCalories := 0
			totalProtein := 0.0
			for day := 1; day <= daysInMonth; day++ {
				date := first.AddDate(0, 0, day-1)
				rec := snapshot[dateutil.Key(date)]
				marker := " "
				if rec != (model.DailyRecord{}) {
					marker = "*"
					totalCalories += rec.Calories
					totalProtein += rec.Protein
				}
				line.WriteString(fmt.Sprintf("%2d%s", day, marker))
				col++
				if col == 7 {
					fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
					line.Reset()
					col = 0
				}
			}
			if line.Len() > 0 {
				fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
			}
			fmt.Fprintf(out, "Month total: %d kcal | %sg protein\n",
				totalCalories, numfmt.FormatDecimal(totalProtein))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month YYYY-MM (default current)")
}
