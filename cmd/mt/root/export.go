package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/ui"
)

func newExportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a JSON backup of all progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := svc.ExportToDir(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconSave, ui.Good.Render("Backup written"), ui.Muted.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", ".", "Directory to write the backup into")

	return cmd
}
