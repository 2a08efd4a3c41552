package engine

// Priority and Difficulty are stored as plain strings on purpose: metadata
// updates are permissive and out-of-range values round-trip untouched.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ChapterMeta carries the per-chapter annotations. TimeSpent is seconds.
// ScheduledDate ("YYYY-MM-DD") is stored and exported but read by no
// computation.
type ChapterMeta struct {
	Priority      Priority   `json:"priority"`
	Difficulty    Difficulty `json:"difficulty"`
	TimeSpent     int        `json:"timeSpent"`
	ScheduledDate *string    `json:"scheduledDate"`
}

// ChapterProgress is created lazily on first interaction with a chapter.
// A task id absent from Tasks is equivalent to false.
type ChapterProgress struct {
	Tasks map[string]bool `json:"tasks"`
	Meta  ChapterMeta     `json:"meta"`
}

type SubjectProgress map[string]*ChapterProgress

// StreakRecord counts consecutive calendar days with at least one
// qualifying completion. LastActivityDate is "YYYY-MM-DD" or nil.
type StreakRecord struct {
	Count            int     `json:"count"`
	LastActivityDate *string `json:"lastActivityDate"`
}

type Goals struct {
	DailyTaskGoal int    `json:"dailyTaskGoal"`
	TargetDate    string `json:"targetDate"`
}

// Reminder is opaque to the engine beyond storage: no dispatch logic here.
type Reminder struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId,omitempty"`
	Time      string `json:"time"`
	Enabled   bool   `json:"enabled"`
}

// StudyData is the root document. It is owned by the Service; every other
// component sees read-only views or goes through the mutation operations.
type StudyData struct {
	Progress             map[string]SubjectProgress `json:"progress"`
	Streak               StreakRecord               `json:"streak"`
	Goals                Goals                      `json:"goals"`
	Theme                string                     `json:"theme"`
	Reminders            []Reminder                 `json:"reminders"`
	UnlockedAchievements []string                   `json:"unlockedAchievements"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultDailyTaskGoal is display-only; the engine never enforces it.
	DefaultDailyTaskGoal = 3
)

// DefaultData returns the document a fresh install starts from.
func DefaultData() *StudyData {
	return &StudyData{
		Progress:             map[string]SubjectProgress{},
		Streak:               StreakRecord{},
		Goals:                Goals{DailyTaskGoal: DefaultDailyTaskGoal},
		Theme:                ThemeLight,
		Reminders:            []Reminder{},
		UnlockedAchievements: []string{},
	}
}

func defaultMeta() ChapterMeta {
	return ChapterMeta{
		Priority:   PriorityMedium,
		Difficulty: DifficultyMedium,
	}
}

// normalize backfills missing fields after a load or import so the rest of
// the engine never has to nil-check containers. Applied exactly once per
// document, at the deserialization boundary.
func normalize(d *StudyData) {
	if d.Progress == nil {
		d.Progress = map[string]SubjectProgress{}
	}
	for _, sub := range d.Progress {
		for _, ch := range sub {
			if ch != nil && ch.Tasks == nil {
				ch.Tasks = map[string]bool{}
			}
		}
	}
	// Goals need no backfill here: decoding starts from DefaultData, so an
	// absent key keeps the default while an explicit stored value, zero
	// included, survives the round trip.
	if d.Theme == "" {
		d.Theme = ThemeLight
	}
	if d.Reminders == nil {
		d.Reminders = []Reminder{}
	}
	if d.UnlockedAchievements == nil {
		d.UnlockedAchievements = []string{}
	}
}
