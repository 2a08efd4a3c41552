// Package catalog holds the immutable study catalog: subjects with their
// ordered chapters, the task kinds that apply to every chapter, the
// achievement definitions and the motivational quotes. Pure data; the
// engine never mutates anything in here.
package catalog

type TaskKind struct {
	ID    string
	Label string
}

type Chapter struct {
	ID   string
	Name string
}

type Subject struct {
	ID       string
	Name     string
	Color    string
	Chapters []Chapter
}

// TaskKinds is the fixed ordered list applied uniformly to every chapter.
// A subject's total task count is chapters × len(TaskKinds).
func TaskKinds() []TaskKind {
	return []TaskKind{
		{ID: "read", Label: "Read Notes"},
		{ID: "practice", Label: "Practice MCQs"},
		{ID: "revise", Label: "Revision"},
		{ID: "exam", Label: "Chapter Test"},
	}
}

// Subjects returns the MAT syllabus in display order. Chapter order within
// a subject is the tie-break for the smart suggestion, so it matters.
func Subjects() []Subject {
	return []Subject{
		{
			ID:    "biology",
			Name:  "Biology",
			Color: "#10b981",
			Chapters: []Chapter{
				{ID: "cell", Name: "Cell & Cell Division"},
				{ID: "genetics", Name: "Genetics & Evolution"},
				{ID: "plant_physio", Name: "Plant Physiology"},
				{ID: "animal_tissue", Name: "Animal Tissue & Organs"},
				{ID: "human_physio", Name: "Human Physiology"},
				{ID: "microbes", Name: "Microorganisms"},
				{ID: "ecology", Name: "Ecology & Environment"},
			},
		},
		{
			ID:    "chemistry",
			Name:  "Chemistry",
			Color: "#3b82f6",
			Chapters: []Chapter{
				{ID: "atomic", Name: "Atomic Structure"},
				{ID: "periodic", Name: "Periodic Properties & Bonding"},
				{ID: "equilibrium", Name: "Chemical Equilibrium"},
				{ID: "organic", Name: "Organic Chemistry"},
				{ID: "electrochem", Name: "Electrochemistry"},
				{ID: "qualitative", Name: "Qualitative Analysis"},
			},
		},
		{
			ID:    "physics",
			Name:  "Physics",
			Color: "#8b5cf6",
			Chapters: []Chapter{
				{ID: "mechanics", Name: "Mechanics"},
				{ID: "waves", Name: "Waves & Sound"},
				{ID: "thermo", Name: "Thermodynamics"},
				{ID: "electricity", Name: "Current Electricity"},
				{ID: "optics", Name: "Optics"},
				{ID: "modern", Name: "Modern Physics"},
			},
		},
		{
			ID:    "english",
			Name:  "English",
			Color: "#f59e0b",
			Chapters: []Chapter{
				{ID: "grammar", Name: "Grammar"},
				{ID: "vocabulary", Name: "Vocabulary"},
				{ID: "comprehension", Name: "Comprehension"},
			},
		},
		{
			ID:    "gk",
			Name:  "General Knowledge",
			Color: "#ef4444",
			Chapters: []Chapter{
				{ID: "bangladesh", Name: "Bangladesh Affairs"},
				{ID: "international", Name: "International Affairs"},
				{ID: "science_tech", Name: "Everyday Science"},
			},
		},
	}
}

// FindSubject returns the catalog entry for id, or nil if unknown.
func FindSubject(id string) *Subject {
	subjects := Subjects()
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i]
		}
	}
	return nil
}

// FindChapter returns the chapter within the given subject, or nil.
func FindChapter(subjectID, chapterID string) *Chapter {
	sub := FindSubject(subjectID)
	if sub == nil {
		return nil
	}
	for i := range sub.Chapters {
		if sub.Chapters[i].ID == chapterID {
			return &sub.Chapters[i]
		}
	}
	return nil
}
