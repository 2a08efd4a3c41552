package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Medtrack theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBook    = "📖"
	IconCheck   = "✅"
	IconUncheck = "⬜"
	IconFlame   = "🔥"
	IconTrophy  = "🏆"
	IconTarget  = "🎯"
	IconBulb    = "💡"
	IconClock   = "⏳"
	IconBell    = "🔔"
	IconQuote   = "💬"
	IconSparkle = "✨"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSave    = "💾"
	IconImport  = "📥"
	IconReset   = "♻️"
)

var (
	cPrimary = lipgloss.Color("36")  // teal
	cAccent  = lipgloss.Color("42")  // emerald
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BannerUnlock = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Toast renders a transient titled notification line.
func Toast(icon, title, detail string) string {
	line := BannerUnlock.Render(icon+" "+title) + " " + Muted.Render(detail)
	return line
}

// Bar renders a simple percentage bar, e.g. [██████----] 60%.
func Bar(pct float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct/100*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("─", width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", bar, pct)
}

// Celebrate renders the milestone banner: the CLI stand-in for confetti.
func Celebrate(title string) string {
	return Gold.Render(strings.Repeat(IconSparkle, 3) + " " + title + " " + strings.Repeat(IconSparkle, 3))
}

// FmtDuration renders accumulated seconds as "3h 25m".
func FmtDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds / 60 % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}
