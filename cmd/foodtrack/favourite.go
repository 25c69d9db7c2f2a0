package foodtrack

import (
	"fmt"
	"math"

	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/numfmt"
	"github.com/mullermatej/food-tracker-mobile-app/internal/store"
	"github.com/spf13/cobra"
)

var favouriteCmd = &cobra.Command{
	Use:     "favourite",
	Aliases: []string{"fav"},
	Short:   "Manage and log reusable food presets",
}

var favouriteSort string

var favouriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favourites",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := store.ParseSortMode(favouriteSort)
		if err != nil {
			return err
		}
		return withStores(func(e *env) error {
			items := e.favs.Items(mode)
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favourites yet.")
				return nil
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-20s %5d kcal  %6sg protein\n",
					it.ID, it.Name, it.Calories, numfmt.FormatDecimal(it.Protein))
			}
			return nil
		})
	},
}

var (
	favouriteName     string
	favouriteCalories int
	favouriteProtein  string
)

var favouriteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a favourite",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			item, err := e.favs.Add(favouriteName, favouriteCalories, numfmt.ParseDecimal(favouriteProtein))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added favourite %d: %s (%d kcal, %sg protein)\n",
				item.ID, item.Name, item.Calories, numfmt.FormatDecimal(item.Protein))
			return nil
		})
	},
}

var favouriteRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a favourite by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIntArg("favourite id", args[0])
		if err != nil {
			return err
		}
		return withStores(func(e *env) error {
			if err := e.favs.Remove(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed favourite %d.\n", id)
			return nil
		})
	},
}

var favouriteServings string

var favouriteLogCmd = &cobra.Command{
	Use:   "log <id-or-name>",
	Short: "Add a favourite to today's totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		servings := numfmt.ParseDecimal(favouriteServings)
		if servings == 0 {
			servings = 1
		}
		return withStores(func(e *env) error {
			item, err := e.favs.Resolve(args[0])
			if err != nil {
				return err
			}
			calories := int(math.Round(float64(item.Calories) * servings))
			protein := item.Protein * servings

			unsubscribe := e.ledger.Subscribe(func(dateKey string, rec model.DailyRecord) {
				fmt.Fprintf(cmd.OutOrStdout(), "Today: %d kcal | %sg protein\n",
					rec.Calories, numfmt.FormatDecimal(rec.Protein))
			})
			defer unsubscribe()

			today := e.ledger.TodayData()
			e.ledger.UpdateTodayData(store.RecordUpdate{
				Calories: model.IntPtr(today.Calories + calories),
				Protein:  model.FloatPtr(today.Protein + protein),
			})
			e.history.AddEntry(model.EntryFavourite, model.EntryData{
				Calories: model.IntPtr(calories),
				Protein:  model.FloatPtr(protein),
				FoodName: item.Name,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d kcal, %sg protein).\n",
				item.Name, calories, numfmt.FormatDecimal(protein))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(favouriteCmd)
	favouriteCmd.AddCommand(favouriteListCmd)
	favouriteCmd.AddCommand(favouriteAddCmd)
	favouriteCmd.AddCommand(favouriteRemoveCmd)
	favouriteCmd.AddCommand(favouriteLogCmd)

	favouriteListCmd.Flags().StringVar(&favouriteSort, "sort", "recent", "Sort order: recent or alpha")
	favouriteAddCmd.Flags().StringVar(&favouriteName, "name", "", "Food name")
	favouriteAddCmd.Flags().IntVar(&favouriteCalories, "calories", 0, "Calories per serving")
	favouriteAddCmd.Flags().StringVar(&favouriteProtein, "protein", "0", "Protein grams per serving")
	favouriteLogCmd.Flags().StringVar(&favouriteServings, "servings", "1", "Servings multiplier")
}
