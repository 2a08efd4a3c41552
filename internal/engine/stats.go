package engine

import (
	"sort"
	"time"

	"medtrack/internal/catalog"
)

// SubjectStats is the derived per-subject view. Percentage is 0..100;
// TotalTime is accumulated seconds across the subject's chapters.
type SubjectStats struct {
	SubjectID  string
	Name       string
	Color      string
	Percentage float64
	Completed  int
	TotalTasks int
	TotalTime  int
}

// ComputeStats derives per-subject completion from the document. Pure
// function of the current state: missing chapters and tasks count as
// incomplete, never as an error, and only catalog entries are counted.
func ComputeStats(d *StudyData) []SubjectStats {
	taskCount := len(catalog.TaskKinds())
	kinds := catalog.TaskKinds()

	subjects := catalog.Subjects()
	out := make([]SubjectStats, 0, len(subjects))
	for _, sub := range subjects {
		st := SubjectStats{
			SubjectID:  sub.ID,
			Name:       sub.Name,
			Color:      sub.Color,
			TotalTasks: len(sub.Chapters) * taskCount,
		}
		subProg := d.Progress[sub.ID]
		for _, chap := range sub.Chapters {
			ch := subProg[chap.ID]
			if ch == nil {
				continue
			}
			for _, k := range kinds {
				if ch.Tasks[k.ID] {
					st.Completed++
				}
			}
			st.TotalTime += ch.Meta.TimeSpent
		}
		if st.TotalTasks > 0 {
			st.Percentage = 100 * float64(st.Completed) / float64(st.TotalTasks)
		}
		out = append(out, st)
	}
	return out
}

// OverallProgress is the arithmetic mean of all subject percentages.
func OverallProgress(stats []SubjectStats) float64 {
	if len(stats) == 0 {
		return 0
	}
	sum := 0.0
	for _, st := range stats {
		sum += st.Percentage
	}
	return sum / float64(len(stats))
}

// WeakAreas returns the subjects that are started but struggling:
// 0 < percentage < 40, ascending, at most three. Exactly 0% means "not
// started" and is excluded.
func WeakAreas(stats []SubjectStats) []SubjectStats {
	var weak []SubjectStats
	for _, st := range stats {
		if st.Percentage > 0 && st.Percentage < 40 {
			weak = append(weak, st)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Percentage < weak[j].Percentage })
	if len(weak) > 3 {
		weak = weak[:3]
	}
	return weak
}

// Suggestion names the chapter the learner should focus on next.
type Suggestion struct {
	SubjectID   string
	SubjectName string
	ChapterID   string
	ChapterName string
}

// SmartSuggestion returns the first chapter in catalog order whose
// priority is high and which still has incomplete tasks, or nil. Catalog
// order is the tie-break, so the result is deterministic.
func SmartSuggestion(d *StudyData) *Suggestion {
	taskCount := len(catalog.TaskKinds())
	kinds := catalog.TaskKinds()

	for _, sub := range catalog.Subjects() {
		subProg := d.Progress[sub.ID]
		for _, chap := range sub.Chapters {
			ch := subProg[chap.ID]
			if ch == nil || ch.Meta.Priority != PriorityHigh {
				continue
			}
			done := 0
			for _, k := range kinds {
				if ch.Tasks[k.ID] {
					done++
				}
			}
			if done < taskCount {
				return &Suggestion{
					SubjectID:   sub.ID,
					SubjectName: sub.Name,
					ChapterID:   chap.ID,
					ChapterName: chap.Name,
				}
			}
		}
	}
	return nil
}

// TotalTime sums accumulated study seconds across all subjects.
func TotalTime(stats []SubjectStats) int {
	total := 0
	for _, st := range stats {
		total += st.TotalTime
	}
	return total
}

// TimeLeft is the countdown to the target exam date.
type TimeLeft struct {
	Set     bool
	Expired bool
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// ComputeTimeLeft breaks down the time remaining until midnight at the
// start of the target date. A malformed or empty target reads as not set.
func ComputeTimeLeft(targetDate string, now time.Time) TimeLeft {
	if targetDate == "" {
		return TimeLeft{}
	}
	target, err := time.ParseInLocation(time.DateOnly, targetDate, now.Location())
	if err != nil {
		return TimeLeft{}
	}

	diff := target.Sub(now)
	if diff <= 0 {
		return TimeLeft{Set: true, Expired: true}
	}
	secs := int(diff.Seconds())
	return TimeLeft{
		Set:     true,
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}
}
