package engine

import (
	"context"
	"testing"
)

func TestReminderLifecycle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	r1 := svc.AddReminder(ctx, "biology", "07:30")
	r2 := svc.AddReminder(ctx, "", "21:00")

	if r1.ID == "" || r1.ID == r2.ID {
		t.Fatalf("reminder ids not unique: %q %q", r1.ID, r2.ID)
	}
	if !r1.Enabled || r1.Time != "07:30" || r1.SubjectID != "biology" {
		t.Fatalf("reminder=%+v", r1)
	}

	svc.SetReminderEnabled(ctx, r1.ID, false)
	if svc.Data().Reminders[0].Enabled {
		t.Fatalf("disable did not stick")
	}

	// Unknown id is a no-op, not an error.
	svc.SetReminderEnabled(ctx, "nope", true)

	svc.RemoveReminder(ctx, r1.ID)
	left := svc.Data().Reminders
	if len(left) != 1 || left[0].ID != r2.ID {
		t.Fatalf("remove left %+v", left)
	}
}

func TestGoalsAndTheme(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	svc.SetDailyTaskGoal(ctx, 5)
	svc.SetTargetDate(ctx, "2026-10-01")
	svc.SetTheme(ctx, ThemeDark)

	d := svc.Data()
	if d.Goals.DailyTaskGoal != 5 || d.Goals.TargetDate != "2026-10-01" || d.Theme != ThemeDark {
		t.Fatalf("settings=%+v theme=%s", d.Goals, d.Theme)
	}

	// Clearing the target date reads as "not set" downstream.
	svc.SetTargetDate(ctx, "")
	if svc.Data().Goals.TargetDate != "" {
		t.Fatalf("target date not cleared")
	}
}
