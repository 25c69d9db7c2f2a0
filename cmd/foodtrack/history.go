package foodtrack

import (
	"fmt"
	"sort"
	"time"

	"github.com/mullermatej/food-tracker-mobile-app/internal/dateutil"
	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/numfmt"
	"github.com/spf13/cobra"
)

var historyDate string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the log of manual additions, newest day first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			out := cmd.OutOrStdout()

			if historyDate != "" {
				date, err := parseDateOrToday(historyDate)
				if err != nil {
					return err
				}
				entries := e.history.EntriesForDate(date)
				if len(entries) == 0 {
					fmt.Fprintln(out, "No entries.")
					return nil
				}
				printEntries(cmd, entries)
				return nil
			}

			history := e.history.History()
			if len(history) == 0 {
				fmt.Fprintln(out, "No entries yet.")
				return nil
			}
			dateKeys := make([]string, 0, len(history))
			for dateKey := range history {
				dateKeys = append(dateKeys, dateKey)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(dateKeys)))
			for _, dateKey := range dateKeys {
				fmt.Fprintln(out, dateHeader(dateKey))
				printEntries(cmd, history[dateKey])
			}
			return nil
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the entire history log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			e.history.ClearHistory()
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		})
	},
}

func dateHeader(dateKey string) string {
	switch dateKey {
	case dateutil.TodayKey():
		return "Today"
	case dateutil.Key(time.Now().AddDate(0, 0, -1)):
		return "Yesterday"
	}
	if date, err := dateutil.ParseKey(dateKey); err == nil {
		return date.Format("Monday, 2 January 2006")
	}
	return dateKey
}

// printEntries renders one bucket newest first. Buckets are append-only, so
// reverse insertion order is reverse chronological.
func printEntries(cmd *cobra.Command, entries []model.HistoryEntry) {
	out := cmd.OutOrStdout()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		clock := e.Timestamp
		if ts, err := time.Parse(time.RFC3339Nano, e.Timestamp); err == nil {
			clock = ts.Local().Format("15:04")
		}
		fmt.Fprintf(out, "  [%s] %s\n", clock, entryDescription(e))
	}
}

func entryDescription(e model.HistoryEntry) string {
	switch e.Type {
	case model.EntryCalories:
		return fmt.Sprintf("%d cal added manually", intOrZero(e.Data.Calories))
	case model.EntryProtein:
		return fmt.Sprintf("%sg protein added manually", numfmt.FormatDecimal(floatOrZero(e.Data.Protein)))
	case model.EntryFavourite:
		return fmt.Sprintf("%s - %d cal, %sg protein", e.Data.FoodName,
			intOrZero(e.Data.Calories), numfmt.FormatDecimal(floatOrZero(e.Data.Protein)))
	}
	return "Unknown entry"
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.Flags().StringVar(&historyDate, "date", "", "Show a single day YYYY-MM-DD")
}
