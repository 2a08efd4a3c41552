package engine

import (
	"context"
	"time"

	"medtrack/internal/catalog"
)

// ToggleResult reports what a single toggle did: the new task state, the
// streak after the side effect, and any achievements that just unlocked.
type ToggleResult struct {
	SubjectID string
	ChapterID string
	TaskID    string
	Checked   bool
	Streak    StreakRecord
	Unlocked  []catalog.Achievement
	// Celebrate is set when any newly unlocked achievement is a
	// celebration milestone.
	Celebrate bool
}

// ensureChapter returns the chapter record, creating it with default
// metadata on first interaction. Updates target this one record; ancestor
// containers are never rebuilt.
func (s *Service) ensureChapter(subjectID, chapterID string) *ChapterProgress {
	sub, ok := s.data.Progress[subjectID]
	if !ok {
		sub = SubjectProgress{}
		s.data.Progress[subjectID] = sub
	}
	ch, ok := sub[chapterID]
	if !ok {
		ch = &ChapterProgress{Tasks: map[string]bool{}, Meta: defaultMeta()}
		sub[chapterID] = ch
	}
	return ch
}

// ToggleTask flips the completion state of one task. Checking (false→true)
// is the qualifying activity that can advance the streak; unchecking never
// touches it. Ids are not validated against the catalog: unknown ids are
// stored and simply contribute to no percentage.
func (s *Service) ToggleTask(ctx context.Context, subjectID, chapterID, taskID string) ToggleResult {
	ch := s.ensureChapter(subjectID, chapterID)

	checking := !ch.Tasks[taskID]
	ch.Tasks[taskID] = checking

	if checking {
		s.touchStreak()
	}

	unlocked := s.unlockNew()
	s.flush(ctx)

	res := ToggleResult{
		SubjectID: subjectID,
		ChapterID: chapterID,
		TaskID:    taskID,
		Checked:   checking,
		Streak:    s.data.Streak,
		Unlocked:  unlocked,
	}
	for _, a := range unlocked {
		if a.Celebrate {
			res.Celebrate = true
		}
	}
	return res
}

// touchStreak applies the daily streak rule: at most one increment per
// calendar day, continuation only from exactly yesterday.
func (s *Service) touchStreak() {
	today := s.today()
	last := s.data.Streak.LastActivityDate
	if last != nil && *last == today {
		return
	}

	yesterday := s.now().AddDate(0, 0, -1).Format(time.DateOnly)
	if last != nil && *last == yesterday {
		s.data.Streak.Count++
	} else {
		s.data.Streak.Count = 1
	}
	s.data.Streak.LastActivityDate = &today
}

// MetaUpdate is a partial metadata patch; nil fields are left untouched.
// Values are accepted as-is, including out-of-range ones.
type MetaUpdate struct {
	Priority      *Priority
	Difficulty    *Difficulty
	TimeSpent     *int
	ScheduledDate *string
}

// UpdateMeta merges the patch into the chapter's metadata, creating the
// chapter record first if needed.
func (s *Service) UpdateMeta(ctx context.Context, subjectID, chapterID string, patch MetaUpdate) []catalog.Achievement {
	ch := s.ensureChapter(subjectID, chapterID)

	if patch.Priority != nil {
		ch.Meta.Priority = *patch.Priority
	}
	if patch.Difficulty != nil {
		ch.Meta.Difficulty = *patch.Difficulty
	}
	if patch.TimeSpent != nil {
		ch.Meta.TimeSpent = *patch.TimeSpent
	}
	if patch.ScheduledDate != nil {
		ch.Meta.ScheduledDate = patch.ScheduledDate
	}

	unlocked := s.unlockNew()
	s.flush(ctx)
	return unlocked
}
