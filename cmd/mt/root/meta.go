package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

func newMetaCmd() *cobra.Command {
	var priority string
	var difficulty string
	var timeSpent int
	var scheduled string

	cmd := &cobra.Command{
		Use:   "meta <subject> <chapter>",
		Short: "Update chapter metadata (priority, difficulty, time, schedule)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("subject and chapter ids are required")
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

			var patch engine.MetaUpdate
			if cmd.Flags().Changed("priority") {
				p := engine.Priority(priority)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("difficulty") {
				d := engine.Difficulty(difficulty)
				patch.Difficulty = &d
			}
			if cmd.Flags().Changed("time-spent") {
				patch.TimeSpent = &timeSpent
			}
			if cmd.Flags().Changed("scheduled") {
				patch.ScheduledDate = &scheduled
			}

			unlocked := svc.UpdateMeta(ctx, args[0], args[1], patch)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s\n", ui.Good.Render(ui.IconInfo), ui.Muted.Render(args[0]+"/"+args[1]))
			for _, a := range unlocked {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Toast(a.Icon, a.Title, a.Description))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Difficulty (easy|medium|hard)")
	cmd.Flags().IntVarP(&timeSpent, "time-spent", "t", 0, "Total time spent in seconds")
	cmd.Flags().StringVarP(&scheduled, "scheduled", "s", "", "Scheduled date (YYYY-MM-DD)")

	return cmd
}
