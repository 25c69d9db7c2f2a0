package foodtrack

import (
	"fmt"

	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/numfmt"
	"github.com/mullermatej/food-tracker-mobile-app/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add calories or protein to today's totals",
}

var addCaloriesCmd = &cobra.Command{
	Use:   "calories <amount>",
	Short: "Add calories to today's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Invalid or negative input coerces to zero, and zero is a no-op:
		// no record mutation, no history entry.
		amount := numfmt.ParseWholeNumber(args[0])
		if amount == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing added.")
			return nil
		}
		return withStores(func(e *env) error {
			today := e.ledger.TodayData()
			rec := e.ledger.UpdateTodayData(store.RecordUpdate{
				Calories: model.IntPtr(today.Calories + amount),
			})
			e.history.AddEntry(model.EntryCalories, model.EntryData{Calories: model.IntPtr(amount)})
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d kcal. Today: %d kcal | %sg protein\n",
				amount, rec.Calories, numfmt.FormatDecimal(rec.Protein))
			return nil
		})
	},
}

var addProteinCmd = &cobra.Command{
	Use:   "protein <grams>",
	Short: "Add protein grams to today's total (comma or dot decimals)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := numfmt.ParseDecimal(args[0])
		if amount == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing added.")
			return nil
		}
		return withStores(func(e *env) error {
			today := e.ledger.TodayData()
			rec := e.ledger.UpdateTodayData(store.RecordUpdate{
				Protein: model.FloatPtr(today.Protein + amount),
			})
			e.history.AddEntry(model.EntryProtein, model.EntryData{Protein: model.FloatPtr(amount)})
			fmt.Fprintf(cmd.OutOrStdout(), "Added %sg protein. Today: %d kcal | %sg protein\n",
				numfmt.FormatDecimal(amount), rec.Calories, numfmt.FormatDecimal(rec.Protein))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addCaloriesCmd)
	addCmd.AddCommand(addProteinCmd)
}
