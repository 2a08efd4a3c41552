package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup, replacing current progress",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("backup file is required")
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

			unlocked, err := svc.ImportFile(ctx, args[0])
			if err != nil {
				if errors.Is(err, engine.ErrBadDocument) {
					// Rejection is a notification, not a crash; the store
					// is untouched.
					fmt.Fprintln(cmd.OutOrStdout(), ui.Toast(ui.IconWarn, "Import rejected", "select a valid JSON backup file"))
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconImport, ui.Good.Render("Progress restored"))
			for _, a := range unlocked {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Toast(a.Icon, a.Title, a.Description))
			}
			return nil
		},
	}

	return cmd
}
