package foodtrack

import (
	"fmt"

	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/store"
	"github.com/spf13/cobra"
)

var supplementCmd = &cobra.Command{
	Use:   "supplement",
	Short: "Toggle today's supplement checkmarks",
}

var creatineCmd = &cobra.Command{
	Use:   "creatine",
	Short: "Toggle today's creatine checkmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			today := e.ledger.TodayData()
			rec := e.ledger.UpdateTodayData(store.RecordUpdate{
				Creatine: model.BoolPtr(!today.Creatine),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Creatine: %s\n", takenLabel(rec.Creatine))
			return nil
		})
	},
}

var fishOilCmd = &cobra.Command{
	Use:   "fish-oil",
	Short: "Toggle today's fish oil checkmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			today := e.ledger.TodayData()
			rec := e.ledger.UpdateTodayData(store.RecordUpdate{
				FishOil: model.BoolPtr(!today.FishOil),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Fish oil: %s\n", takenLabel(rec.FishOil))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(supplementCmd)
	supplementCmd.AddCommand(creatineCmd)
	supplementCmd.AddCommand(fishOilCmd)
}
