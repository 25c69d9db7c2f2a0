package foodtrack

import (
	"fmt"

	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
	"github.com/spf13/cobra"
)

// Admin commands operate on the persistence layer directly, bypassing the
// stores' in-memory caches.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Inspect or wipe raw local storage",
}

var adminKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List persisted storage keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *storage.SQLiteKV) error {
			keys, err := kv.Keys()
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No keys stored.")
				return nil
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		})
	},
}

var adminGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the raw persisted JSON for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(kv *storage.SQLiteKV) error {
			raw, found, err := kv.Raw(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("key %q not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		})
	},
}

var adminWipeForce bool

var adminWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all persisted data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !adminWipeForce {
			fmt.Fprintln(cmd.OutOrStdout(), "This will delete all local data. Re-run with --force to confirm.")
			return nil
		}
		return withKV(func(kv *storage.SQLiteKV) error {
			if err := kv.Wipe(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Local storage wiped.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminKeysCmd)
	adminCmd.AddCommand(adminGetCmd)
	adminCmd.AddCommand(adminWipeCmd)
	adminWipeCmd.Flags().BoolVar(&adminWipeForce, "force", false, "Skip confirmation")
}
