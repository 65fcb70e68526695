package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the display theme preference",
	Long:      "Shows the stored theme, or sets it when dark or light is given. The dark theme draws output boxes with heavy lines.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{themeDark, themeLight},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 1 {
		if err := session.SetDarkMode(cmd.Context(), args[0] == themeDark); err != nil {
			return err
		}
	}

	dark, err := session.DarkMode(cmd.Context())
	if err != nil {
		return err
	}
	theme := themeLight
	if dark {
		theme = themeDark
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
	return nil
}
