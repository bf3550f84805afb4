package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/ui"
)

const (
	tabTasks = iota
	tabAchievements
	tabGoals
	tabCount
)

var tabNames = [tabCount]string{"Tasks", "Achievements", "Goals"}

// boardModel renders one user's progress record. Engine mutations happen
// synchronously inside Update; the engine is single-threaded by contract
// and every operation is a bounded in-process computation.
type boardModel struct {
	ctx context.Context
	eng *gamification.Engine

	rec gamification.Record

	width  int
	height int

	tab      int
	selected int

	lastLog string
}

func newBoardModel(ctx context.Context, eng *gamification.Engine) boardModel {
	return boardModel{
		ctx:     ctx,
		eng:     eng,
		rec:     eng.Record(),
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.selected = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			return m.completeSelected(), nil
		case "s":
			streak := m.eng.UpdateStreak(m.ctx)
			m.rec = m.eng.Record()
			m.lastLog = fmt.Sprintf("Streak: %d day(s).", streak)
			return m, nil
		case "r":
			m.rec = m.eng.Record()
			m.lastLog = "Refreshed."
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) completeSelected() boardModel {
	if m.tab != tabTasks {
		m.lastLog = "Switch to the Tasks tab to complete tasks."
		return m
	}
	pending := gamification.PendingTasks(m.rec)
	if m.selected < 0 || m.selected >= len(pending) {
		m.lastLog = "Nothing to complete."
		return m
	}
	res := m.eng.CompleteTask(m.ctx, pending[m.selected].ID)
	m.rec = m.eng.Record()
	if res == nil {
		m.lastLog = "Already done."
		return m
	}
	m.lastLog = fmt.Sprintf("Completed %q: +%d XP", res.Title, res.XPReward)
	if res.XP.LevelUp {
		m.lastLog += "  " + ui.BadgeLevelUp
	}
	return m
}

func (m boardModel) rowCount() int {
	switch m.tab {
	case tabTasks:
		return len(gamification.PendingTasks(m.rec))
	case tabAchievements:
		return len(m.rec.Achievements)
	case tabGoals:
		return len(m.rec.FinancialGoals)
	}
	return 0
}

func (m boardModel) View() string {
	header := m.renderHeader()
	tabs := m.renderTabs()
	main := m.renderMain()
	footer := m.renderFooter()
	return header + "\n" + tabs + "\n\n" + main + "\n" + footer
}

func (m boardModel) renderHeader() string {
	cur := gamification.CurrentLevel(m.rec)
	next := gamification.NextLevel(m.rec)

	span := 1
	into := 0
	if next != nil {
		span = next.XPRequired - cur.XPRequired
		into = m.rec.XP - cur.XPRequired
	} else {
		into = 1
	}
	bar := ui.ProgressBar(into, span, 30)

	line := fmt.Sprintf("NextStep | Level %d %s | XP %d %s", cur.Level, cur.Title, m.rec.XP, bar)
	if m.rec.Streak > 0 {
		line += fmt.Sprintf(" | %s %d day streak", ui.IconFire, m.rec.Streak)
	}
	return line
}

func (m boardModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == m.tab {
			parts = append(parts, ui.Key.Render("["+name+"]"))
		} else {
			parts = append(parts, ui.Muted.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m boardModel) renderMain() string {
	switch m.tab {
	case tabTasks:
		return m.renderTasks()
	case tabAchievements:
		return m.renderAchievements()
	case tabGoals:
		return m.renderGoals()
	}
	return ""
}

func (m boardModel) renderTasks() string {
	pending := gamification.PendingTasks(m.rec)
	if len(pending) == 0 {
		return ui.Muted.Render("All tasks done. 🎉")
	}
	var out []string
	for i, t := range pending {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %s (+%d XP, %s)", cursor, ui.IconTask, t.Title, t.XPReward, ui.PriorityText(string(t.Priority))))
	}
	done := len(gamification.CompletedTasks(m.rec))
	out = append(out, "", ui.Muted.Render(fmt.Sprintf("%d/%d completed", done, len(m.rec.Tasks))))
	return strings.Join(out, "\n")
}

func (m boardModel) renderAchievements() string {
	var out []string
	for i, a := range m.rec.Achievements {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := ui.IconLocked
		title := ui.Muted.Render(a.Title)
		if a.Unlocked {
			mark = a.Icon
			title = ui.Good.Render(a.Title)
		}
		out = append(out, fmt.Sprintf("%s%s %s %s", cursor, mark, title, ui.Muted.Render(fmt.Sprintf("(+%d XP)", a.XPReward))))
	}
	unlocked := len(gamification.UnlockedAchievements(m.rec))
	out = append(out, "", ui.Muted.Render(fmt.Sprintf("%d/%d unlocked", unlocked, len(m.rec.Achievements))))
	return strings.Join(out, "\n")
}

func (m boardModel) renderGoals() string {
	if len(m.rec.FinancialGoals) == 0 {
		return ui.Muted.Render("No financial goals yet. Add one with `ns goals add`.")
	}
	var out []string
	for i, g := range m.rec.FinancialGoals {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		bar := ui.ProgressBar(int(g.CurrentAmount), int(g.TargetAmount), 16)
		status := ""
		if g.Completed {
			status = " " + ui.Good.Render("done")
		}
		out = append(out, fmt.Sprintf("%s%s %s $%.2f/$%.2f %s%s", cursor, ui.IconGoal, g.Title, g.CurrentAmount, g.TargetAmount, bar, status))
	}
	out = append(out, "", ui.Muted.Render(fmt.Sprintf("Total earned: $%.2f", gamification.TotalGoalAmount(m.rec))))
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := "tab: switch  j/k: move  c: complete  s: streak  r: refresh  q: quit"
	return "\n" + ui.Muted.Render(keys) + "\n" + m.lastLog
}
