package foodtrack

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(e *env) error {
			if len(args) == 1 {
				e.theme.SetDark(args[0] == "dark")
			}
			if e.theme.Dark() {
				fmt.Fprintln(cmd.OutOrStdout(), "Theme: dark")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Theme: light")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
