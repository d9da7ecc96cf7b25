package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/studytracker/internal/model"
)

func themeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the saved colour theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prefs := s.app.PreferenceService

			var p model.Preferences
			var err error
			switch {
			case len(args) == 0:
				p = prefs.Preferences(ctx)
			case args[0] == "toggle":
				p, err = prefs.ToggleDarkMode(ctx)
			default:
				p, err = prefs.SetDarkMode(ctx, args[0] == "dark")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dark mode %s\n", p.DarkModeValue())
			return nil
		},
	}
}
