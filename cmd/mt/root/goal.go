package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/ui"
)

func newGoalCmd() *cobra.Command {
	var targetDate string
	var dailyGoal int

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Set the target exam date and daily task goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("target") {
				svc.SetTargetDate(ctx, targetDate)
			}
			if cmd.Flags().Changed("daily") {
				svc.SetDailyTaskGoal(ctx, dailyGoal)
			}

			g := svc.Data().Goals
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTarget, "Goals"))
			target := g.TargetDate
			if target == "" {
				target = ui.Muted.Render("not set")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Target date", target))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Daily goal", fmt.Sprintf("%d tasks/day", g.DailyTaskGoal)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetDate, "target", "t", "", "Target exam date (YYYY-MM-DD, empty clears)")
	cmd.Flags().IntVarP(&dailyGoal, "daily", "d", 3, "Daily task goal (display only)")

	return cmd
}
