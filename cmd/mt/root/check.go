package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <subject> <chapter> <task>",
		Short: "Toggle a task done/undone",
		Long: `Toggle the completion state of one task of one chapter.

Checking a task counts as today's study activity and can advance the daily
streak. Unchecking never touches the streak.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("subject, chapter and task ids are required")
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

			res := svc.ToggleTask(ctx, args[0], args[1], args[2])

			icon := ui.IconUncheck
			verb := "Unchecked"
			if res.Checked {
				icon = ui.IconCheck
				verb = "Checked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", icon, ui.Good.Render(verb), ui.Muted.Render(fmt.Sprintf("%s/%s/%s", res.SubjectID, res.ChapterID, res.TaskID)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, res.Streak.Count)))

			for _, a := range res.Unlocked {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Toast(a.Icon, a.Title, a.Description))
			}
			if res.Celebrate {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Celebrate("Milestone reached!"))
			}
			return nil
		},
	}

	return cmd
}
