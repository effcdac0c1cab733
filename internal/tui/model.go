// Package tui is the KidQuest terminal dashboard: kid cards, the mission
// board and the mission builder, driving a tracker.Store from one update loop.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/kidquest/internal/backup"
	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/tracker"
)

type viewMode int

const (
	viewBoard viewMode = iota
	viewForm
)

// Options configures the dashboard.
type Options struct {
	Theme      string
	BackupKey  string
	ReportsDir string
	Now        func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	ctx   context.Context
	store *tracker.Store
	keys  *HandlerRegistry

	mode   viewMode
	form   missionForm
	cursor int
	offset int

	width  int
	height int

	themeName string
	theme     Theme

	statusMessage string
	statusIsError bool

	backupKey  string
	reportsDir string
	now        func() time.Time
}

// Messages carrying the results of file work done off the update loop.
type (
	reportWrittenMsg struct {
		path string
		err  error
	}
	backupExportedMsg struct {
		path string
		err  error
	}
	backupImportedMsg struct {
		path  string
		state models.TrackerState
		err   error
	}
)

func New(ctx context.Context, store *tracker.Store, opts Options) Model {
	m := Model{
		ctx:        ctx,
		store:      store,
		keys:       defaultBindings(),
		themeName:  "default",
		backupKey:  opts.BackupKey,
		reportsDir: opts.ReportsDir,
		now:        opts.Now,
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Theme != "" && SetTheme(opts.Theme) {
		m.themeName = opts.Theme
	} else {
		SetTheme(m.themeName)
	}
	m.theme = CurrentTheme
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case reportWrittenMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("Report failed: %v", msg.err))
		} else {
			m.setStatus("Report written: " + msg.path)
		}
		return m, nil
	case backupExportedMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("Backup failed: %v", msg.err))
		} else {
			m.setStatus("Backup saved: " + msg.path)
		}
		return m, nil
	case backupImportedMsg:
		return m.applyImport(msg), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == viewForm {
			return m.updateForm(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	if m.mode == viewForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) applyImport(msg backupImportedMsg) Model {
	switch {
	case errors.Is(msg.err, backup.ErrNoBackups):
		m.setStatusError("No backups found in " + m.reportsDir)
	case errors.Is(msg.err, backup.ErrPassphraseRequired):
		m.setStatusError("Backup is encrypted; set KIDQUEST_BACKUP_KEY to import it")
	case errors.Is(msg.err, backup.ErrWrongPassphrase):
		m.setStatusError("Backup passphrase did not match")
	case msg.err != nil:
		m.setStatusError(fmt.Sprintf("Import failed: %v", msg.err))
	default:
		m.store.Dispatch(m.ctx, tracker.RestoreState{State: msg.state})
		m.cursor, m.offset = 0, 0
		m.setStatus("Backup imported: " + msg.path)
	}
	return m
}

func (m Model) openForm() (Model, tea.Cmd) {
	state := m.store.State()
	m.form = newMissionForm(state.Draft, state.Kids)
	m.mode = viewForm
	m.clearStatus()
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = viewBoard
		m.setStatus("Mission builder closed")
		return m, nil
	case tea.KeyEnter:
		m.store.Dispatch(m.ctx, tracker.UpdateDraft{Draft: m.form.Draft()})
		draft := m.store.State().Draft
		if !m.store.Dispatch(m.ctx, tracker.CreateTask{}) {
			if draft.AssignedKidID == "" {
				m.setStatusError("Add a kid to the crew before creating missions")
			} else {
				m.setStatusError("Give your mission a name first")
			}
			return m, nil
		}
		m.mode = viewBoard
		m.cursor, m.offset = 0, 0
		m.setStatus(fmt.Sprintf("New mission for %s!", m.store.KidName(draft.AssignedKidID)))
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.store.Dispatch(m.ctx, tracker.UpdateDraft{Draft: m.form.Draft()})
	return m, cmd
}

// clampCursor keeps the cursor on the board and inside the scroll window.
func (m *Model) clampCursor() {
	n := len(m.store.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+config.MaxVisibleTasks {
		m.offset = m.cursor - config.MaxVisibleTasks + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) selectedTask() (models.Task, bool) {
	visible := m.store.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.Task{}, false
	}
	return visible[m.cursor], true
}

func (m Model) reportCmd() tea.Cmd {
	state := m.store.State().TrackerState()
	dir, now := m.reportsDir, m.now()
	return func() tea.Msg {
		path, err := backup.SaveReport(dir, state, now)
		return reportWrittenMsg{path: path, err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	state := m.store.State().TrackerState()
	dir, key, now := m.reportsDir, m.backupKey, m.now()
	return func() tea.Msg {
		path, err := backup.Export(dir, state, key, now)
		return backupExportedMsg{path: path, err: err}
	}
}

func (m Model) importCmd() tea.Cmd {
	dir, key := m.reportsDir, m.backupKey
	return func() tea.Msg {
		path, err := backup.Latest(dir)
		if err != nil {
			return backupImportedMsg{err: err}
		}
		state, err := backup.Import(path, key)
		return backupImportedMsg{path: path, state: state, err: err}
	}
}
