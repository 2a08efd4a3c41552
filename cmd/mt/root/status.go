package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"medtrack/internal/catalog"
	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress, streak, countdown and focus areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d := svc.Data()
			stats := engine.ComputeStats(d)
			overall := engine.OverallProgress(stats)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, "Study Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Overall", ui.Bar(overall, 30)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, d.Streak.Count)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Study time", ui.FmtDuration(engine.TotalTime(stats))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Daily goal", fmt.Sprintf("%d tasks/day", d.Goals.DailyTaskGoal)))

			tl := engine.ComputeTimeLeft(d.Goals.TargetDate, time.Now())
			switch {
			case !tl.Set:
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Exam", ui.Muted.Render("target date not set")))
			case tl.Expired:
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Exam", ui.Warn.Render("exam time!")))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Exam", fmt.Sprintf("%s %dd %02dh %02dm %02ds left", ui.IconClock, tl.Days, tl.Hours, tl.Minutes, tl.Seconds)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Subjects"))
			for _, st := range stats {
				fmt.Fprintf(cmd.OutOrStdout(), "- %-18s %s  %s\n", st.Name, ui.Bar(st.Percentage, 16), ui.Muted.Render(ui.FmtDuration(st.TotalTime)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			if weak := engine.WeakAreas(stats); len(weak) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("⚠️ Focus areas"))
				for _, w := range weak {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", w.Name, ui.Bad.Render(fmt.Sprintf("%.0f%%", w.Percentage)))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			if sug := engine.SmartSuggestion(d); sug != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Focus on: %s (%s)\n", ui.IconBulb, ui.Key.Render(sug.ChapterName), sug.SubjectName)
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Trophies: %d/%d\n", ui.IconTrophy, len(d.UnlockedAchievements), len(catalog.Achievements()))
			return nil
		},
	}

	return cmd
}
