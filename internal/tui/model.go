package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"medtrack/internal/catalog"
	"medtrack/internal/engine"
	"medtrack/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	quote    catalog.Quote
	expanded map[string]bool
	selected int

	now     time.Time
	lastLog string
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		quote:    catalog.RandomQuote(),
		expanded: map[string]bool{},
		now:      time.Now(),
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd drives the 1-second countdown refresh. Ticks re-render only;
// they never mutate the document.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.rows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "r":
			m.quote = catalog.RandomQuote()
			return m, nil
		case "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.taskID == "" {
				m.expanded[row.key] = !m.expanded[row.key]
			}
			return m, nil
		case "c", " ":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.taskID == "" {
				m.lastLog = "Select a task to toggle."
				return m, nil
			}
			// Toggle inline: the document has exactly one logical writer,
			// so every service access stays on the event-loop goroutine.
			// A tea.Cmd would run it concurrently with tick renders.
			res := m.svc.ToggleTask(m.ctx, row.subjectID, row.chapterID, row.taskID)
			m.lastLog = toggleLog(res)
			return m, nil
		}
	}
	return m, nil
}

func toggleLog(res engine.ToggleResult) string {
	if len(res.Unlocked) > 0 {
		names := make([]string, 0, len(res.Unlocked))
		for _, a := range res.Unlocked {
			names = append(names, a.Icon+" "+a.Title)
		}
		log := ui.Toast(ui.IconTrophy, "Unlocked!", strings.Join(names, ", "))
		if res.Celebrate {
			log += "  " + ui.Celebrate("Milestone!")
		}
		return log
	}
	state := "unchecked"
	if res.Checked {
		state = "checked"
	}
	return fmt.Sprintf("%s %s/%s/%s", state, res.SubjectID, res.ChapterID, res.TaskID)
}

// row is one selectable line of the board tree: a subject, a chapter, or
// a task slot.
type row struct {
	key       string
	depth     int
	label     string
	subjectID string
	chapterID string
	taskID    string
	checked   bool
}

func (m boardModel) rows() []row {
	d := m.svc.Data()
	kinds := catalog.TaskKinds()

	var out []row
	for _, sub := range catalog.Subjects() {
		subKey := sub.ID
		out = append(out, row{key: subKey, label: sub.Name, subjectID: sub.ID})
		if !m.expanded[subKey] {
			continue
		}
		for _, chap := range sub.Chapters {
			chKey := subKey + "/" + chap.ID
			out = append(out, row{key: chKey, depth: 1, label: chap.Name, subjectID: sub.ID, chapterID: chap.ID})
			if !m.expanded[chKey] {
				continue
			}
			var prog *engine.ChapterProgress
			if sp := d.Progress[sub.ID]; sp != nil {
				prog = sp[chap.ID]
			}
			for _, k := range kinds {
				checked := prog != nil && prog.Tasks[k.ID]
				out = append(out, row{
					key:       chKey + "/" + k.ID,
					depth:     2,
					label:     k.Label,
					subjectID: sub.ID,
					chapterID: chap.ID,
					taskID:    k.ID,
					checked:   checked,
				})
			}
		}
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}
