package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the theme preference",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one argument")
			}
			if len(args) == 1 && args[0] != engine.ThemeLight && args[0] != engine.ThemeDark {
				return errors.New("theme must be light or dark")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				svc.SetTheme(ctx, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", svc.Data().Theme))
			return nil
		},
	}

	return cmd
}
