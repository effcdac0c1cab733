package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/tracker"
)

const defaultWidth = 100

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render("Kid") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true).Render("Quest")
}

func (m Model) layoutWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) frame(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// boxed renders content in a bordered frame whose outer width is width. The
// content itself gets width-4 cells.
func (m Model) boxed(content string, width int, border lipgloss.Color) string {
	f := m.frame(border)
	inner := width - f.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return f.Width(inner).Render(content)
}

func (m Model) renderHeader() string {
	stats := m.store.Stats()
	width := m.layoutWidth()

	bar := progress.New(
		progress.WithGradient(m.theme.ProgressFrom, m.theme.ProgressTo),
		progress.WithWidth(config.HeaderProgressWidth),
	)
	title := fmt.Sprintf("%s v%s  %s", renderLogo(), versionLabel(), m.theme.Dim.Render("Family mission control"))

	statLine := strings.Join([]string{
		fmt.Sprintf("Missions left: %s %s",
			m.theme.Header.Render(fmt.Sprint(stats.Remaining)),
			m.theme.Dim.Render(fmt.Sprintf("(%d%% complete)", stats.Progress))),
		fmt.Sprintf("High-five streak: %s", m.theme.Header.Render(formatStreak(stats.HighestStreak))),
		fmt.Sprintf("Points bank: %s", m.theme.Reward.Render(fmt.Sprintf("%d pts", stats.TotalPoints))),
	}, "  |  ")

	lines := []string{title, statLine, bar.ViewAs(float64(stats.Progress) / 100), m.theme.Focused.Render("Next up")}
	upcoming := m.store.Upcoming()
	if len(upcoming) == 0 {
		lines = append(lines, m.theme.Celebrate.Render("All missions completed — time for a dance party!"))
	}
	for _, task := range upcoming {
		line := formatUpcoming(task, m.store.KidName(task.AssignedKidID))
		lines = append(lines, "  "+truncate(line, width-8))
	}
	return m.boxed(strings.Join(lines, "\n"), width, m.theme.Border)
}

func (m Model) renderKidCard(r tracker.KidRollup, width int) string {
	kid := r.Kid
	inner := width - 4
	nameStyle := m.theme.Header
	if kid.FavoriteColor != "" {
		nameStyle = nameStyle.Foreground(lipgloss.Color(kid.FavoriteColor))
	}

	barWidth := config.KidProgressWidth
	if barWidth > inner {
		barWidth = inner
	}
	fill := kid.FavoriteColor
	if fill == "" {
		fill = m.theme.ProgressFrom
	}
	bar := progress.New(progress.WithSolidFill(fill), progress.WithWidth(barWidth))

	lines := []string{
		truncate(nameStyle.Render(fmt.Sprintf("%s %s", kid.Icon, kid.Name))+m.theme.Dim.Render(fmt.Sprintf(" · %d", kid.Age)), inner),
		truncate(m.theme.Dim.Render(kid.Focus), inner),
		m.theme.Focused.Render(fmt.Sprintf("Level %d", r.Level)),
		bar.ViewAs(float64(r.Progress) / 100),
		truncate(fmt.Sprintf("%d pts · %d day streak", kid.Points, kid.Streak), inner),
		truncate(fmt.Sprintf("%d left today", r.Remaining), inner),
	}
	if badges := formatBadges(kid.Badges); badges != "" {
		lines = append(lines, truncate(m.theme.Badge.Render(badges), inner))
	}
	if r.NextMission != nil {
		lines = append(lines, truncate("Next up: "+r.NextMission.Title, inner))
	} else {
		lines = append(lines, m.theme.Celebrate.Render(truncate("All missions done — cue the confetti!", inner)))
	}

	border := m.theme.Border
	if r.Leader {
		border = m.theme.LeaderBorder
		lines[0] = truncate(lines[0]+" "+m.theme.Reward.Render("★ Leader"), inner)
	}
	return m.boxed(strings.Join(lines, "\n"), width, border)
}

func (m Model) renderKids() string {
	rollups := m.store.Rollups()
	if len(rollups) == 0 {
		return m.boxed(m.theme.Dim.Render("No kids on the crew yet. Import a backup with [i]."), m.layoutWidth(), m.theme.Border)
	}
	width := m.layoutWidth()
	cardWidth := width / len(rollups)
	if width < config.CompactModeThreshold || cardWidth < config.MinKidCardWidth {
		cards := make([]string, 0, len(rollups))
		for _, r := range rollups {
			cards = append(cards, m.renderKidCard(r, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	cards := make([]string, 0, len(rollups))
	for _, r := range rollups {
		cards = append(cards, m.renderKidCard(r, cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderTabs() string {
	state := m.store.State()
	counts := m.store.FilterCounts()
	var tabs []string
	for i, opt := range models.FilterOptions {
		label := fmt.Sprintf("[%d] %s %d", i+1, opt.Label, counts.For(opt.ID))
		if opt.ID == state.Filter {
			tabs = append(tabs, m.theme.Focused.Underline(true).Render(label)+" "+m.theme.Dim.Render(opt.Hint))
		} else {
			tabs = append(tabs, m.theme.Dim.Render(label))
		}
	}
	return strings.Join(tabs, "   ")
}

func (m Model) renderTask(task models.Task, selected bool, inner int) string {
	cursor := "  "
	if selected {
		cursor = m.theme.Focused.Render("› ")
	}
	titleStyle := m.theme.Task
	action := m.theme.Highlight.Render("[Complete]")
	if task.Done() {
		titleStyle = m.theme.CompletedTask
		action = m.theme.Dim.Render("[Undo]")
	}
	if selected {
		titleStyle = titleStyle.Bold(true)
	}
	meta := fmt.Sprintf(" · %s · %s", m.store.KidName(task.AssignedKidID), task.DueLabel)
	head := fmt.Sprintf("%s%s %s  %s%s  %s %s",
		cursor, task.Icon, titleStyle.Render(task.Title),
		m.theme.CategoryStyle(task.Category).Render(string(task.Category)), m.theme.Dim.Render(meta),
		m.theme.Reward.Render(formatPoints(task.Reward)), action)
	desc := "    " + m.theme.Dim.Render(task.Description)
	return truncate(head, inner) + "\n" + truncate(desc, inner)
}

func (m Model) renderBoard() string {
	width := m.layoutWidth()
	inner := width - 4
	lines := []string{m.theme.Header.Render("Mission board"), m.renderTabs(), ""}

	visible := m.store.VisibleTasks()
	switch {
	case len(visible) == 0 && m.store.Celebrating():
		lines = append(lines,
			m.theme.Celebrate.Render("🎉 Everything is wrapped!"),
			m.theme.Dim.Render("Every mission is done. Press [b] to view bonus missions."))
	case len(visible) == 0:
		lines = append(lines, m.theme.Dim.Render("No tasks here yet"))
	default:
		end := m.offset + config.MaxVisibleTasks
		if end > len(visible) {
			end = len(visible)
		}
		if m.offset > 0 {
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  ↑ %d more", m.offset)))
		}
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderTask(visible[i], i == m.cursor, inner))
		}
		if rest := len(visible) - end; rest > 0 {
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  ↓ %d more", rest)))
		}
	}
	return m.boxed(strings.Join(lines, "\n"), width, m.theme.Border)
}

func (m Model) renderFooter() string {
	width := m.layoutWidth()
	var lines []string
	if err := m.store.LastPersistError(); err != nil {
		lines = append(lines, m.theme.Error.Render(truncate("Progress not saved: "+err.Error(), width-4)))
	}
	if m.statusMessage != "" {
		style := m.theme.Reward
		if m.statusIsError {
			style = m.theme.Error
		}
		lines = append(lines, style.Render(truncate(m.statusMessage, width-4)))
	}
	if m.mode == viewBoard {
		help := strings.ReplaceAll(m.keys.HelpForView(m.mode), "|", " | ")
		lines = append(lines, m.theme.Dim.Render(help))
	}
	if len(lines) == 0 {
		return ""
	}
	return m.boxed(strings.Join(lines, "\n"), width, m.theme.Border)
}

func (m Model) View() string {
	body := m.renderBoard()
	if m.mode == viewForm {
		body = lipgloss.PlaceHorizontal(m.layoutWidth(), lipgloss.Center, m.form.View(m.theme))
	}
	sections := []string{m.renderHeader(), m.renderKids(), body}
	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
