package foodtrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset today's nutrition data (calories, protein, supplements)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Fprintln(cmd.OutOrStdout(), "This will clear today's nutrition data. Re-run with --force to confirm.")
			return nil
		}
		return withStores(func(e *env) error {
			e.ledger.ResetDay(time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), "Today's data reset.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip confirmation")
}
