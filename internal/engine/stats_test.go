package engine

import (
	"context"
	"testing"
	"time"

	"medtrack/internal/catalog"
)

func checkAllTasks(ctx context.Context, svc *Service, subjectID string) {
	sub := catalog.FindSubject(subjectID)
	for _, chap := range sub.Chapters {
		for _, k := range catalog.TaskKinds() {
			svc.ToggleTask(ctx, subjectID, chap.ID, k.ID)
		}
	}
}

func TestPercentageBounds(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	svc.ToggleTask(ctx, "english", "grammar", "read")
	checkAllTasks(ctx, svc, "gk")

	for _, st := range ComputeStats(svc.Data()) {
		if st.Percentage < 0 || st.Percentage > 100 {
			t.Fatalf("%s percentage=%f out of bounds", st.SubjectID, st.Percentage)
		}
	}

	stats := ComputeStats(svc.Data())
	byID := map[string]SubjectStats{}
	for _, st := range stats {
		byID[st.SubjectID] = st
	}
	if byID["gk"].Percentage != 100 {
		t.Fatalf("gk percentage=%f, want 100", byID["gk"].Percentage)
	}
	if byID["biology"].Percentage != 0 {
		t.Fatalf("biology percentage=%f, want 0", byID["biology"].Percentage)
	}
}

func TestOverallProgressIsMeanOfSubjects(t *testing.T) {
	stats := []SubjectStats{
		{Percentage: 100},
		{Percentage: 50},
		{Percentage: 0},
	}
	if got := OverallProgress(stats); got != 50 {
		t.Fatalf("overall=%f, want 50", got)
	}
	if got := OverallProgress(nil); got != 0 {
		t.Fatalf("overall of empty=%f, want 0", got)
	}
}

func TestWeakAreasBoundsAndOrder(t *testing.T) {
	stats := []SubjectStats{
		{SubjectID: "a", Percentage: 0},    // not started: excluded
		{SubjectID: "b", Percentage: 40},   // exactly 40: excluded
		{SubjectID: "c", Percentage: 39.9}, // included
		{SubjectID: "d", Percentage: 5},
		{SubjectID: "e", Percentage: 20},
		{SubjectID: "f", Percentage: 10},
	}

	weak := WeakAreas(stats)
	if len(weak) != 3 {
		t.Fatalf("len(weak)=%d, want 3", len(weak))
	}
	want := []string{"d", "f", "e"}
	for i, id := range want {
		if weak[i].SubjectID != id {
			t.Fatalf("weak[%d]=%s, want %s", i, weak[i].SubjectID, id)
		}
	}
}

func TestSmartSuggestionFollowsCatalogOrder(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	if sug := SmartSuggestion(svc.Data()); sug != nil {
		t.Fatalf("unexpected suggestion on fresh data: %+v", sug)
	}

	// High priority on a later subject and a later chapter of biology;
	// catalog order decides the winner.
	p := PriorityHigh
	svc.UpdateMeta(ctx, "physics", "mechanics", MetaUpdate{Priority: &p})
	svc.UpdateMeta(ctx, "biology", "genetics", MetaUpdate{Priority: &p})

	sug := SmartSuggestion(svc.Data())
	if sug == nil {
		t.Fatalf("expected a suggestion")
	}
	if sug.SubjectID != "biology" || sug.ChapterID != "genetics" {
		t.Fatalf("suggestion=%s/%s, want biology/genetics", sug.SubjectID, sug.ChapterID)
	}

	// A fully completed high-priority chapter is skipped.
	for _, k := range catalog.TaskKinds() {
		svc.ToggleTask(ctx, "biology", "genetics", k.ID)
	}
	sug = SmartSuggestion(svc.Data())
	if sug == nil || sug.SubjectID != "physics" || sug.ChapterID != "mechanics" {
		t.Fatalf("suggestion=%+v, want physics/mechanics", sug)
	}
}

func TestTotalTimeAggregatesChapters(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, day0)

	a, b := 600, 900
	svc.UpdateMeta(ctx, "biology", "cell", MetaUpdate{TimeSpent: &a})
	svc.UpdateMeta(ctx, "biology", "genetics", MetaUpdate{TimeSpent: &b})

	stats := ComputeStats(svc.Data())
	for _, st := range stats {
		if st.SubjectID == "biology" && st.TotalTime != 1500 {
			t.Fatalf("biology totalTime=%d, want 1500", st.TotalTime)
		}
	}
	if got := TotalTime(stats); got != 1500 {
		t.Fatalf("TotalTime=%d, want 1500", got)
	}
}

func TestComputeTimeLeft(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tl := ComputeTimeLeft("", now)
	if tl.Set {
		t.Fatalf("empty target should read as not set")
	}

	tl = ComputeTimeLeft("garbage", now)
	if tl.Set {
		t.Fatalf("malformed target should read as not set")
	}

	tl = ComputeTimeLeft("2026-03-09", now)
	if !tl.Set || !tl.Expired {
		t.Fatalf("past target should be expired: %+v", tl)
	}

	// Midnight at the start of 2026-03-12 is 36h away from noon on the
	// 10th.
	tl = ComputeTimeLeft("2026-03-12", now)
	if tl.Expired {
		t.Fatalf("future target marked expired")
	}
	if tl.Days != 1 || tl.Hours != 12 || tl.Minutes != 0 || tl.Seconds != 0 {
		t.Fatalf("timeLeft=%+v, want 1d 12h", tl)
	}
}
