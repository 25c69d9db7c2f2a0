package foodtrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Show today's food note",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			note, ok := e.notes.Today()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No note for today.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", note.DisplayDate, note.Text)
			return nil
		})
	},
}

var noteSetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Replace today's food note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("note text is required")
		}
		return withStores(func(e *env) error {
			e.notes.Set(text)
			fmt.Fprintln(cmd.OutOrStdout(), "Note saved.")
			return nil
		})
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear today's food note",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			e.notes.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Note cleared.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteSetCmd)
	noteCmd.AddCommand(noteClearCmd)
}
