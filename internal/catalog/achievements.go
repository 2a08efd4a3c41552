package catalog

// AchievementID is a closed set; display metadata hangs off the catalog
// entry rather than a runtime string-keyed table.
type AchievementID string

const (
	AchFirstStep     AchievementID = "first_step"
	AchFirstChapter  AchievementID = "first_chapter"
	AchHalfwayHero   AchievementID = "halfway_hero"
	AchSubjectMaster AchievementID = "subject_master"
	AchWeeklyWarrior AchievementID = "weekly_warrior"
	AchMATReady      AchievementID = "mat_ready"
)

type Achievement struct {
	ID          AchievementID
	Title       string
	Description string
	Icon        string
	Color       string
	// Celebrate marks the milestones that trigger the celebration banner
	// (the confetti moments).
	Celebrate bool
}

// Achievements returns the fixed catalog in unlock-report order.
func Achievements() []Achievement {
	return []Achievement{
		{ID: AchFirstStep, Title: "First Step", Description: "Complete your first task", Icon: "👣", Color: "#10b981"},
		{ID: AchFirstChapter, Title: "Chapter Champion", Description: "Finish every task of one chapter", Icon: "🏅", Color: "#3b82f6"},
		{ID: AchHalfwayHero, Title: "Halfway Hero", Description: "Reach 50% overall progress", Icon: "🏆", Color: "#f59e0b", Celebrate: true},
		{ID: AchSubjectMaster, Title: "Subject Master", Description: "Complete an entire subject", Icon: "👑", Color: "#8b5cf6"},
		{ID: AchWeeklyWarrior, Title: "Weekly Warrior", Description: "Keep a 7-day study streak", Icon: "🔥", Color: "#ef4444"},
		{ID: AchMATReady, Title: "MAT Ready", Description: "Reach 100% overall progress", Icon: "🩺", Color: "#059669", Celebrate: true},
	}
}

// FindAchievement returns the catalog entry for id, or nil if unknown.
func FindAchievement(id AchievementID) *Achievement {
	all := Achievements()
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}
