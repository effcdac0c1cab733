package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/tracker"
)

func filterIndex(filter models.FilterID) int {
	for i, opt := range models.FilterOptions {
		if opt.ID == filter {
			return i
		}
	}
	return 0
}

func (m Model) withFilter(filter models.FilterID) Model {
	m.store.Dispatch(m.ctx, tracker.SetFilter{Filter: filter})
	m.cursor, m.offset = 0, 0
	return m
}

func handleNextFilter(m Model, key string) (Model, tea.Cmd, bool) {
	n := len(models.FilterOptions)
	step := 1
	if key == "shift+tab" {
		step = n - 1
	}
	idx := (filterIndex(m.store.State().Filter) + step) % n
	return m.withFilter(models.FilterOptions[idx].ID), nil, true
}

func handlePickFilter(m Model, key string) (Model, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(models.FilterOptions) {
		return m, nil, false
	}
	return m.withFilter(models.FilterOptions[idx].ID), nil, true
}

func handleBonus(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.withFilter(models.FilterBonus), nil, true
}

func handleCursorUp(m Model, _ string) (Model, tea.Cmd, bool) {
	m.cursor--
	m.clampCursor()
	return m, nil, true
}

func handleCursorDown(m Model, _ string) (Model, tea.Cmd, bool) {
	m.cursor++
	m.clampCursor()
	return m, nil, true
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	m.store.Dispatch(m.ctx, tracker.ToggleTask{ID: task.ID})
	name := m.store.KidName(task.AssignedKidID)
	if task.Done() {
		m.setStatus(fmt.Sprintf("%s is back on the list for %s", task.Title, name))
	} else {
		m.setStatus(fmt.Sprintf("High five, %s! +%d pts", name, task.Reward))
	}
	m.clampCursor()
	return m, nil, true
}

func handleNewMission(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.openForm()
	return next, cmd, true
}

func handleReport(m Model, _ string) (Model, tea.Cmd, bool) {
	m.setStatus("Writing mission report...")
	return m, m.reportCmd(), true
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	m.setStatus("Saving backup...")
	return m, m.exportCmd(), true
}

func handleImport(m Model, _ string) (Model, tea.Cmd, bool) {
	m.setStatus("Importing latest backup...")
	return m, m.importCmd(), true
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	m.themeName = nextThemeName(m.themeName)
	SetTheme(m.themeName)
	m.theme = CurrentTheme
	m.setStatus("Theme: " + m.theme.Name)
	return m, nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	board := []viewMode{viewBoard}
	bind := func(key, desc string, h KeyHandler) {
		r.Register(KeyBinding{Key: key, Handler: h, Description: desc, ViewModes: board})
	}
	bind("tab", "Filter", handleNextFilter)
	bind("shift+tab", "", handleNextFilter)
	bind("1", "Today", handlePickFilter)
	bind("2", "High fives", handlePickFilter)
	bind("3", "Bonus", handlePickFilter)
	bind("up", "", handleCursorUp)
	bind("k", "", handleCursorUp)
	bind("down", "", handleCursorDown)
	bind("j", "", handleCursorDown)
	bind("enter", "Done/Undo", handleToggle)
	bind(" ", "", handleToggle)
	bind("n", "New mission", handleNewMission)
	bind("b", "Bonus", handleBonus)
	bind("p", "Report", handleReport)
	bind("x", "Backup", handleExport)
	bind("i", "Import", handleImport)
	bind("t", "Theme", handleTheme)
	bind("q", "Quit", handleQuit)
	return r
}
