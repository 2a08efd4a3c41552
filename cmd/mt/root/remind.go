package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/ui"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage study reminders",
		Long: `Manage the reminder list. Reminders are stored data only; wiring them to a
system notifier is up to the platform.`,
	}

	cmd.AddCommand(
		newRemindAddCmd(),
		newRemindListCmd(),
		newRemindToggleCmd("on", true),
		newRemindToggleCmd("off", false),
		newRemindRemoveCmd(),
	)

	return cmd
}

func newRemindAddCmd() *cobra.Command {
	var subjectID string

	cmd := &cobra.Command{
		Use:   "add <HH:mm>",
		Short: "Add a reminder",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("time is required (HH:mm)")
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

			r := svc.AddReminder(ctx, subjectID, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added reminder %s at %s\n", ui.IconBell, ui.Muted.Render(r.ID), ui.Key.Render(r.Time))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subjectID, "subject", "s", "", "Attach to a subject id")

	return cmd
}

func newRemindListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reminders := svc.Data().Reminders
			if len(reminders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No reminders."))
				return nil
			}
			for _, r := range reminders {
				state := ui.Good.Render("on")
				if !r.Enabled {
					state = ui.Muted.Render("off")
				}
				subject := ""
				if r.SubjectID != "" {
					subject = " " + ui.Muted.Render("("+r.SubjectID+")")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s [%s]%s %s\n", ui.IconBell, r.Time, state, subject, ui.Muted.Render(r.ID))
			}
			return nil
		},
	}

	return cmd
}

func newRemindToggleCmd(name string, enabled bool) *cobra.Command {
	short := "Enable a reminder"
	if !enabled {
		short = "Disable a reminder"
	}
	cmd := &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reminder id is required")
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

			svc.SetReminderEnabled(ctx, args[0], enabled)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reminder %s: %s\n", ui.IconBell, ui.Muted.Render(args[0]), name)
			return nil
		},
	}

	return cmd
}

func newRemindRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a reminder",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reminder id is required")
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

			svc.RemoveReminder(ctx, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n", ui.IconBell, ui.Muted.Render(args[0]))
			return nil
		},
	}

	return cmd
}
