package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medtrack/internal/catalog"
	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 34
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 22 {
			leftW = 22
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	d := m.svc.Data()
	stats := engine.ComputeStats(d)
	overall := engine.OverallProgress(stats)

	left := ui.Heading(ui.IconBook, "Medtrack")
	streak := fmt.Sprintf("%s %d day streak", ui.IconFlame, d.Streak.Count)
	bar := ui.Bar(overall, 24)
	countdown := m.renderCountdown()
	return fmt.Sprintf("%s | %s | %s | %s", left, streak, bar, countdown)
}

func (m boardModel) renderCountdown() string {
	d := m.svc.Data()
	tl := engine.ComputeTimeLeft(d.Goals.TargetDate, m.now)
	switch {
	case !tl.Set:
		return ui.Muted.Render(ui.IconClock + " target not set")
	case tl.Expired:
		return ui.Warn.Render(ui.IconClock + " exam time!")
	default:
		return fmt.Sprintf("%s %dd %02dh %02dm %02ds", ui.IconClock, tl.Days, tl.Hours, tl.Minutes, tl.Seconds)
	}
}

func (m boardModel) renderSidebar() string {
	d := m.svc.Data()
	stats := engine.ComputeStats(d)

	lines := []string{ui.H2.Render("Subjects")}
	for _, st := range stats {
		lines = append(lines, fmt.Sprintf("%-18s %s", st.Name, ui.Bar(st.Percentage, 8)))
	}

	if weak := engine.WeakAreas(stats); len(weak) > 0 {
		lines = append(lines, "", ui.H2.Render("Focus areas"))
		for _, w := range weak {
			lines = append(lines, fmt.Sprintf("%s %s (%.0f%%)", ui.IconWarn, w.Name, w.Percentage))
		}
	}

	if sug := engine.SmartSuggestion(d); sug != nil {
		lines = append(lines, "", ui.H2.Render("Suggestion"))
		lines = append(lines, fmt.Sprintf("%s %s (%s)", ui.IconBulb, sug.ChapterName, sug.SubjectName))
	}

	lines = append(lines, "",
		ui.H2.Render("Trophies"),
		fmt.Sprintf("%s %d/%d unlocked", ui.IconTrophy, len(d.UnlockedAchievements), len(catalog.Achievements())),
	)

	lines = append(lines, "",
		ui.H2.Render("Keys"),
		ui.Muted.Render("↑/↓ move  enter expand"),
		ui.Muted.Render("space toggle  r quote  q quit"),
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	rows := m.rows()
	var b strings.Builder
	b.WriteString(ui.H2.Render("Syllabus") + "\n")
	for i, r := range rows {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		line := strings.Repeat("  ", r.depth)
		if r.taskID != "" {
			box := ui.IconUncheck
			if r.checked {
				box = ui.IconCheck
			}
			line += box + " " + r.label
		} else {
			line += r.label
		}
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	quote := ui.Muted.Render(fmt.Sprintf("%s %q — %s", ui.IconQuote, m.quote.Text, m.quote.Author))
	return quote + "\n" + m.lastLog + "\n"
}

// padRight pads to the visible cell width, ignoring ANSI escapes and
// counting wide runes as lipgloss does.
func padRight(s string, w int) string {
	if w <= 0 {
		return s
	}
	vis := lipgloss.Width(s)
	if vis >= w {
		return s
	}
	return s + strings.Repeat(" ", w-vis)
}
