package engine

import (
	"context"
	"testing"
	"time"
)

var day0 = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func TestStreakCountsOncePerDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	res := svc.ToggleTask(ctx, "biology", "cell", "read")
	if !res.Checked {
		t.Fatalf("expected first toggle to check")
	}
	if res.Streak.Count != 1 {
		t.Fatalf("streak count=%d, want 1", res.Streak.Count)
	}
	if res.Streak.LastActivityDate == nil || *res.Streak.LastActivityDate != dateStr(day0) {
		t.Fatalf("lastActivityDate=%v, want %s", res.Streak.LastActivityDate, dateStr(day0))
	}

	// More checks on the same day must not move the streak.
	svc.ToggleTask(ctx, "biology", "cell", "practice")
	res = svc.ToggleTask(ctx, "chemistry", "atomic", "read")
	if res.Streak.Count != 1 {
		t.Fatalf("streak count=%d after same-day checks, want 1", res.Streak.Count)
	}
}

func TestStreakContinuesFromYesterday(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, day0)
	svc.ToggleTask(ctx, "biology", "cell", "read")

	setClock(svc, day0.AddDate(0, 0, 1))
	res := svc.ToggleTask(ctx, "biology", "cell", "practice")
	if res.Streak.Count != 2 {
		t.Fatalf("streak count=%d on day+1, want 2", res.Streak.Count)
	}

	// A gap of two or more days resets to 1.
	setClock(svc, day0.AddDate(0, 0, 4))
	res = svc.ToggleTask(ctx, "biology", "cell", "revise")
	if res.Streak.Count != 1 {
		t.Fatalf("streak count=%d after gap, want 1", res.Streak.Count)
	}
	if *res.Streak.LastActivityDate != dateStr(day0.AddDate(0, 0, 4)) {
		t.Fatalf("lastActivityDate=%s, want %s", *res.Streak.LastActivityDate, dateStr(day0.AddDate(0, 0, 4)))
	}
}

func TestUncheckIsStreakNeutral(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, day0)
	svc.ToggleTask(ctx, "biology", "cell", "read")
	before := svc.Data().Streak

	setClock(svc, day0.AddDate(0, 0, 3))
	res := svc.ToggleTask(ctx, "biology", "cell", "read")
	if res.Checked {
		t.Fatalf("expected second toggle to uncheck")
	}
	after := svc.Data().Streak
	if after.Count != before.Count || *after.LastActivityDate != *before.LastActivityDate {
		t.Fatalf("streak changed by uncheck: before=%+v after=%+v", before, after)
	}
}

func TestToggleCreatesChapterWithDefaultMeta(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	svc.ToggleTask(ctx, "physics", "optics", "read")

	ch := svc.Data().Progress["physics"]["optics"]
	if ch == nil {
		t.Fatalf("chapter record not created")
	}
	if ch.Meta.Priority != PriorityMedium || ch.Meta.Difficulty != DifficultyMedium {
		t.Fatalf("default meta=%+v", ch.Meta)
	}
	if ch.Meta.TimeSpent != 0 || ch.Meta.ScheduledDate != nil {
		t.Fatalf("default meta=%+v", ch.Meta)
	}
}

func TestToggleAcceptsUnknownIDs(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	// Unknown ids are stored but never counted by the stats engine.
	svc.ToggleTask(ctx, "alchemy", "lead", "transmute")

	if !svc.Data().Progress["alchemy"]["lead"].Tasks["transmute"] {
		t.Fatalf("unknown task not stored")
	}
	stats := ComputeStats(svc.Data())
	for _, st := range stats {
		if st.Completed != 0 {
			t.Fatalf("unknown task leaked into %s stats", st.SubjectID)
		}
	}
}

func TestUpdateMetaMergesPartialPatch(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	p := PriorityHigh
	svc.UpdateMeta(ctx, "biology", "cell", MetaUpdate{Priority: &p})

	secs := 1800
	svc.UpdateMeta(ctx, "biology", "cell", MetaUpdate{TimeSpent: &secs})

	meta := svc.Data().Progress["biology"]["cell"].Meta
	if meta.Priority != PriorityHigh {
		t.Fatalf("priority=%q, want high (lost by second patch?)", meta.Priority)
	}
	if meta.TimeSpent != 1800 {
		t.Fatalf("timeSpent=%d, want 1800", meta.TimeSpent)
	}
	if meta.Difficulty != DifficultyMedium {
		t.Fatalf("difficulty=%q, want untouched default", meta.Difficulty)
	}
}

func TestUpdateMetaIsPermissive(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	p := Priority("urgent")
	neg := -30
	svc.UpdateMeta(ctx, "biology", "cell", MetaUpdate{Priority: &p, TimeSpent: &neg})

	meta := svc.Data().Progress["biology"]["cell"].Meta
	if meta.Priority != "urgent" || meta.TimeSpent != -30 {
		t.Fatalf("permissive values not stored as-is: %+v", meta)
	}
}
