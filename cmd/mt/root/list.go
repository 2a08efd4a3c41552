package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/catalog"
	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

func newListCmd() *cobra.Command {
	var subjectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects, chapters and task states",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d := svc.Data()
			kinds := catalog.TaskKinds()

			for _, sub := range catalog.Subjects() {
				if subjectID != "" && sub.ID != subjectID {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, sub.Name)+" "+ui.Muted.Render("("+sub.ID+")"))
				subProg := d.Progress[sub.ID]
				for _, chap := range sub.Chapters {
					var prog *engine.ChapterProgress
					if subProg != nil {
						prog = subProg[chap.ID]
					}

					done := 0
					marks := ""
					for _, k := range kinds {
						if prog != nil && prog.Tasks[k.ID] {
							done++
							marks += ui.IconCheck
						} else {
							marks += ui.IconUncheck
						}
					}

					detail := ""
					if prog != nil {
						detail = ui.Muted.Render(fmt.Sprintf("prio=%s diff=%s time=%s", prog.Meta.Priority, prog.Meta.Difficulty, ui.FmtDuration(prog.Meta.TimeSpent)))
						if prog.Meta.ScheduledDate != nil && *prog.Meta.ScheduledDate != "" {
							detail += ui.Muted.Render(" sched=" + *prog.Meta.ScheduledDate)
						}
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %-28s %s %d/%d %s\n", marks, chap.Name, ui.Muted.Render(chap.ID), done, len(kinds), detail)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.Muted.Render("Tasks: "))
			for i, k := range kinds {
				if i > 0 {
					fmt.Fprint(cmd.OutOrStdout(), ui.Muted.Render(", "))
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.Muted.Render(k.ID+" ("+k.Label+")"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			return nil
		},
	}

	cmd.Flags().StringVarP(&subjectID, "subject", "s", "", "Limit to one subject id")

	return cmd
}
