package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"medtrack/internal/storage"
)

// Service owns the study document. It loads the persisted copy once at
// startup and flushes after every mutation. There is exactly one logical
// writer, so no locking.
type Service struct {
	states *storage.StateRepo
	data   *StudyData

	// now is injectable so the calendar-day streak rules are testable.
	now func() time.Time
}

func NewService(ctx context.Context, db *sql.DB) (*Service, error) {
	s := &Service{
		states: storage.NewStateRepo(db),
		now:    time.Now,
	}

	raw, err := s.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.data = decodeOrDefault(raw)
	return s, nil
}

// decodeOrDefault parses the stored document, falling back to the default
// document when nothing is stored or the blob is malformed. A corrupt
// store must never crash startup.
func decodeOrDefault(raw []byte) *StudyData {
	if len(raw) == 0 {
		return DefaultData()
	}
	d := DefaultData()
	if err := json.Unmarshal(raw, d); err != nil {
		return DefaultData()
	}
	normalize(d)
	return d
}

// Data exposes the document for derived computations and rendering.
// Callers must treat it as read-only; mutations go through the operations
// below so statistics, streak and achievements stay consistent within one
// update cycle.
func (s *Service) Data() *StudyData {
	return s.data
}

// flush persists the current document. Best-effort by contract: the write
// is issued after every mutation and its outcome is not inspected.
func (s *Service) flush(ctx context.Context) {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return
	}
	_ = s.states.Save(ctx, raw)
}

func (s *Service) SetTheme(ctx context.Context, theme string) {
	s.data.Theme = theme
	s.flush(ctx)
}

func (s *Service) SetTargetDate(ctx context.Context, date string) {
	s.data.Goals.TargetDate = date
	s.flush(ctx)
}

func (s *Service) SetDailyTaskGoal(ctx context.Context, goal int) {
	s.data.Goals.DailyTaskGoal = goal
	s.flush(ctx)
}

// AddReminder stores a reminder entry. Reminders are pure data to the
// engine; nothing here schedules or dispatches them.
func (s *Service) AddReminder(ctx context.Context, subjectID, at string) Reminder {
	r := Reminder{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Time:      at,
		Enabled:   true,
	}
	s.data.Reminders = append(s.data.Reminders, r)
	s.flush(ctx)
	return r
}

// SetReminderEnabled flips a reminder's enabled flag. Unknown ids are a
// no-op.
func (s *Service) SetReminderEnabled(ctx context.Context, id string, enabled bool) {
	for i := range s.data.Reminders {
		if s.data.Reminders[i].ID == id {
			s.data.Reminders[i].Enabled = enabled
			break
		}
	}
	s.flush(ctx)
}

func (s *Service) RemoveReminder(ctx context.Context, id string) {
	out := s.data.Reminders[:0]
	for _, r := range s.data.Reminders {
		if r.ID != id {
			out = append(out, r)
		}
	}
	s.data.Reminders = out
	s.flush(ctx)
}

// Reset replaces the whole document with the defaults. Confirmation is the
// caller's job.
func (s *Service) Reset(ctx context.Context) {
	s.data = DefaultData()
	s.flush(ctx)
}

// today returns the current calendar date as "YYYY-MM-DD".
func (s *Service) today() string {
	return s.now().Format(time.DateOnly)
}
