package catalog

import "testing"

func TestSubjectAndChapterIDsAreUnique(t *testing.T) {
	seenSub := map[string]bool{}
	for _, sub := range Subjects() {
		if seenSub[sub.ID] {
			t.Fatalf("duplicate subject id %q", sub.ID)
		}
		seenSub[sub.ID] = true
		if len(sub.Chapters) == 0 {
			t.Fatalf("subject %q has no chapters", sub.ID)
		}
		seenCh := map[string]bool{}
		for _, ch := range sub.Chapters {
			if seenCh[ch.ID] {
				t.Fatalf("duplicate chapter id %q in %q", ch.ID, sub.ID)
			}
			seenCh[ch.ID] = true
		}
	}
}

func TestTaskKindIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range TaskKinds() {
		if seen[k.ID] {
			t.Fatalf("duplicate task kind %q", k.ID)
		}
		seen[k.ID] = true
	}
	if len(TaskKinds()) < 2 {
		t.Fatalf("expected multiple task kinds per chapter")
	}
}

func TestFindHelpers(t *testing.T) {
	if FindSubject("biology") == nil {
		t.Fatalf("biology missing from catalog")
	}
	if FindSubject("nope") != nil {
		t.Fatalf("unknown subject found")
	}
	if FindChapter("biology", "cell") == nil {
		t.Fatalf("biology/cell missing")
	}
	if FindChapter("biology", "nope") != nil || FindChapter("nope", "cell") != nil {
		t.Fatalf("unknown chapter found")
	}
}

func TestAchievementCatalog(t *testing.T) {
	seen := map[AchievementID]bool{}
	celebrate := map[AchievementID]bool{}
	for _, a := range Achievements() {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement %q", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" || a.Description == "" || a.Icon == "" {
			t.Fatalf("achievement %q missing display metadata", a.ID)
		}
		if a.Celebrate {
			celebrate[a.ID] = true
		}
	}
	if len(celebrate) != 2 || !celebrate[AchMATReady] || !celebrate[AchHalfwayHero] {
		t.Fatalf("celebrate set=%v, want {mat_ready, halfway_hero}", celebrate)
	}
	if FindAchievement(AchFirstStep) == nil || FindAchievement("nope") != nil {
		t.Fatalf("FindAchievement lookup broken")
	}
}

func TestRandomQuoteReturnsCatalogEntry(t *testing.T) {
	quotes := map[string]bool{}
	for _, q := range Quotes() {
		quotes[q.Text] = true
	}
	for i := 0; i < 20; i++ {
		if !quotes[RandomQuote().Text] {
			t.Fatalf("RandomQuote returned a non-catalog quote")
		}
	}
}
