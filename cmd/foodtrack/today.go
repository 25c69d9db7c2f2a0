package foodtrack

import (
	"fmt"

	"github.com/mullermatej/food-tracker-mobile-app/internal/dateutil"
	"github.com/mullermatej/food-tracker-mobile-app/internal/numfmt"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's calories, protein, and supplements",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withStores(func(e *env) error {
			rec := e.ledger.DataForDate(target)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, dateutil.DisplayDate(target))
			fmt.Fprintf(out, "Calories: %d kcal\n", rec.Calories)
			fmt.Fprintf(out, "Protein: %sg\n", numfmt.FormatDecimal(rec.Protein))
			fmt.Fprintf(out, "Creatine: %s\n", takenLabel(rec.Creatine))
			fmt.Fprintf(out, "Fish oil: %s\n", takenLabel(rec.FishOil))
			if dateutil.Key(target) == dateutil.TodayKey() {
				if note, ok := e.notes.Today(); ok {
					fmt.Fprintf(out, "Note: %s\n", note.Text)
				}
			}
			return nil
		})
	},
}

func takenLabel(taken bool) string {
	if taken {
		return "taken"
	}
	return "not taken"
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
