package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to erase progress without --yes")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.Reset(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconReset, ui.Warn.Render("All progress erased."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
