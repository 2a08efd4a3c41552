package catalog

import "math/rand"

type Quote struct {
	Text   string
	Author string
}

func Quotes() []Quote {
	return []Quote{
		{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
		{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
		{Text: "It always seems impossible until it is done.", Author: "Nelson Mandela"},
		{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
		{Text: "Little by little, a little becomes a lot.", Author: "Tanzanian proverb"},
		{Text: "The expert in anything was once a beginner.", Author: "Helen Hayes"},
		{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
		{Text: "Your future is created by what you do today, not tomorrow.", Author: "Robert Kiyosaki"},
	}
}

// RandomQuote picks a quote for the dashboard header. Cosmetic and
// stateless; not part of any computation.
func RandomQuote() Quote {
	quotes := Quotes()
	return quotes[rand.Intn(len(quotes))]
}
