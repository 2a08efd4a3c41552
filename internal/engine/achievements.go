package engine

import (
	"medtrack/internal/catalog"
)

// achievementSatisfied evaluates one unlock predicate against the current
// document and derived statistics. Predicates are pure; unlocking state
// lives on the document, not here.
func achievementSatisfied(id catalog.AchievementID, d *StudyData, stats []SubjectStats, overall float64) bool {
	switch id {
	case catalog.AchFirstStep:
		for _, sub := range d.Progress {
			for _, ch := range sub {
				for _, done := range ch.Tasks {
					if done {
						return true
					}
				}
			}
		}
		return false

	case catalog.AchFirstChapter:
		// Every task kind true for at least one chapter. Counting only
		// catalog task kinds keeps stray ids from finishing a chapter.
		kinds := catalog.TaskKinds()
		for _, sub := range d.Progress {
			for _, ch := range sub {
				done := 0
				for _, k := range kinds {
					if ch.Tasks[k.ID] {
						done++
					}
				}
				if done == len(kinds) {
					return true
				}
			}
		}
		return false

	case catalog.AchHalfwayHero:
		return overall >= 50

	case catalog.AchSubjectMaster:
		for _, st := range stats {
			if st.Percentage >= 100 {
				return true
			}
		}
		return false

	case catalog.AchWeeklyWarrior:
		return d.Streak.Count >= 7

	case catalog.AchMATReady:
		return overall >= 100

	default:
		return false
	}
}

// EvaluateAchievements returns the ids whose condition currently holds, in
// catalog order.
func EvaluateAchievements(d *StudyData, stats []SubjectStats, overall float64) []catalog.AchievementID {
	var satisfied []catalog.AchievementID
	for _, a := range catalog.Achievements() {
		if achievementSatisfied(a.ID, d, stats, overall) {
			satisfied = append(satisfied, a.ID)
		}
	}
	return satisfied
}

// unlockNew recomputes statistics, evaluates every predicate, and appends
// the newly satisfied ids to the unlocked set. Unlocks are append-only and
// idempotent: re-evaluating unchanged state yields an empty delta, and an
// id is never removed even if its condition later turns false.
func (s *Service) unlockNew() []catalog.Achievement {
	stats := ComputeStats(s.data)
	overall := OverallProgress(stats)

	already := make(map[string]bool, len(s.data.UnlockedAchievements))
	for _, id := range s.data.UnlockedAchievements {
		already[id] = true
	}

	var delta []catalog.Achievement
	for _, id := range EvaluateAchievements(s.data, stats, overall) {
		if already[string(id)] {
			continue
		}
		s.data.UnlockedAchievements = append(s.data.UnlockedAchievements, string(id))
		if a := catalog.FindAchievement(id); a != nil {
			delta = append(delta, *a)
		}
	}
	return delta
}

// IsUnlocked reports whether the given achievement id has been earned.
func (s *Service) IsUnlocked(id catalog.AchievementID) bool {
	for _, u := range s.data.UnlockedAchievements {
		if u == string(id) {
			return true
		}
	}
	return false
}
