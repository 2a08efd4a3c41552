package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/catalog"
	"medtrack/internal/ui"
)

func newTrophiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trophies",
		Short: "Show the trophy room",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			all := catalog.Achievements()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Trophy Room"))
			unlockedCount := 0
			for _, a := range all {
				if svc.IsUnlocked(a.ID) {
					unlockedCount++
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", a.Icon, ui.Gold.Render(a.Title), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "- 🔒 %s %s\n", ui.Dim.Render(a.Title), ui.Muted.Render(a.Description))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Unlocked", fmt.Sprintf("%d/%d", unlockedCount, len(all))))
			return nil
		},
	}

	return cmd
}
