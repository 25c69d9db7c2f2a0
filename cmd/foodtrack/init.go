package foodtrack

import (
	"fmt"

	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local database (safe to run repeatedly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withKV(func(kv *storage.SQLiteKV) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
