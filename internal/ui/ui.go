package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"taskring/internal/config"
	"taskring/internal/logging"
	"taskring/internal/tasklist"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

const (
	rejectFlashDuration = 400 * time.Millisecond
	defaultListHeight   = 8
	defaultHeaderWidth  = 40
	// Lines used by everything except the task rows.
	chromeHeight = 19
)

// rejectResetMsg ends the flash started by a blank submit.
type rejectResetMsg struct{}

type Model struct {
	store *tasklist.Store
	cfg   config.Config
	keys  keyMap
	theme Theme
	help  help.Model
	bar   progress.Model
	input textinput.Model
	edit  textinput.Model

	focus      focus
	filter     tasklist.Filter
	cursor     int
	offset     int
	listHeight int
	width      int
	reject     bool
	status     string

	saver Saver
	log   *log.Logger
	now   func() time.Time
}

func NewModel(store *tasklist.Store, cfg config.Config, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task…"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	ei := textinput.New()
	ei.Prompt = ""
	ei.CharLimit = 256
	ei.Width = 40

	m := Model{
		store:      store,
		cfg:        cfg,
		keys:       newKeyMap(cfg.Keys),
		theme:      DefaultTheme(),
		help:       help.New(),
		bar:        progress.New(progress.WithSolidFill(string(colorAccent)), progress.WithoutPercentage(), progress.WithWidth(defaultHeaderWidth)),
		input:      ti,
		edit:       ei,
		focus:      focusInput,
		filter:     cfg.Filter(),
		listHeight: defaultListHeight,
		status:     fmt.Sprintf("Type a task and press enter. %s switches to the list.", label(cfg.Keys.FocusSwitch)),
		log:        logging.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func Run(m Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}
		if m.editing() {
			return m.updateEditMode(msg)
		}
		if m.focus == focusInput {
			return m.updateInputMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-12)
		m.edit.Width = max(10, msg.Width-14)
		m.bar.Width = max(10, min(msg.Width-4, 60))
		m.help.Width = msg.Width
		m.listHeight = max(3, msg.Height-chromeHeight)
		m.scroll(len(m.visible()))
		return m, nil
	case rejectResetMsg:
		m.reject = false
		return m, nil
	}

	var inCmd, editCmd tea.Cmd
	m.input, inCmd = m.input.Update(msg)
	m.edit, editCmd = m.edit.Update(msg)
	return m, tea.Batch(inCmd, editCmd)
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		return m.submit()
	case key.Matches(msg, m.keys.focusSwitch), key.Matches(msg, m.keys.cancel):
		m.focus = focusList
		m.input.Blur()
		m.status = "List: space toggles, e edits, d deletes."
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	t, err := m.store.Add(m.input.Value())
	if err != nil {
		m.reject = true
		m.status = "Task cannot be empty"
		m.log.Debug("add rejected", "err", err)
		return m, tea.Tick(rejectFlashDuration, func(time.Time) tea.Msg {
			return rejectResetMsg{}
		})
	}
	m.input.SetValue("")
	m.status = "Added task"
	m.log.Debug("task added", "id", t.ID)

	visible := m.visible()
	for i, v := range visible {
		if v.ID == t.ID {
			m.cursor = i
			break
		}
	}
	m.scroll(len(visible))
	return m.persist(), nil
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	m.cursor = clampCursor(m.cursor, len(visible))

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.focusSwitch), key.Matches(msg, m.keys.add):
		m.focus = focusInput
		m.status = "Add mode: type a task and press enter"
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.up):
		m.cursor = clampCursor(m.cursor-1, len(visible))
	case key.Matches(msg, m.keys.down):
		m.cursor = clampCursor(m.cursor+1, len(visible))
	case key.Matches(msg, m.keys.toggle):
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[m.cursor]
		m.store.Toggle(t.ID)
		m.status = "Marked done"
		if t.Done {
			m.status = "Marked active"
		}
		m.log.Debug("task toggled", "id", t.ID, "done", !t.Done)
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m = m.persist()
	case key.Matches(msg, m.keys.remove):
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[m.cursor]
		m.store.Remove(t.ID)
		m.status = fmt.Sprintf("Deleted %q", t.Text)
		m.log.Debug("task removed", "id", t.ID)
		m.cursor = clampCursor(m.cursor, len(visible)-1)
		m = m.persist()
	case key.Matches(msg, m.keys.edit):
		if len(visible) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.beginEdit(visible[m.cursor])
	case key.Matches(msg, m.keys.nextFilter):
		m.setFilter(m.filter.Next())
	case key.Matches(msg, m.keys.prevFilter):
		m.setFilter(m.filter.Prev())
	case key.Matches(msg, m.keys.filterAll):
		m.setFilter(tasklist.All)
	case key.Matches(msg, m.keys.filterAct):
		m.setFilter(tasklist.Active)
	case key.Matches(msg, m.keys.filterDone):
		m.setFilter(tasklist.Done)
	case key.Matches(msg, m.keys.clearDone):
		n := m.store.ClearCompleted()
		if n == 0 {
			return m, nil
		}
		m.status = fmt.Sprintf("Cleared %d completed", n)
		m.log.Debug("cleared completed", "count", n)
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m = m.persist()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.scroll(len(m.visible()))
	return m, nil
}

func (m Model) beginEdit(t tasklist.Task) (tea.Model, tea.Cmd) {
	if !m.store.BeginEdit(t.ID) {
		return m, nil
	}
	m.edit.SetValue(t.Text)
	m.edit.CursorEnd()
	m.status = fmt.Sprintf("Editing: %s to save, %s to cancel", label(m.cfg.Keys.Confirm), label(m.cfg.Keys.Cancel))
	cmd := m.edit.Focus()
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, _, _ := m.store.Editing()
	switch {
	case key.Matches(msg, m.keys.confirm):
		return m.finishEdit(id), nil
	case key.Matches(msg, m.keys.cancel):
		m.store.CancelEdit()
		m.edit.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case key.Matches(msg, m.keys.focusSwitch):
		// Leaving the row confirms the edit.
		m = m.finishEdit(id)
		m.focus = focusInput
		cmd := m.input.Focus()
		return m, cmd
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m = m.finishEdit(id)
		return m.updateListMode(msg)
	default:
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		m.store.SetEditBuffer(m.edit.Value())
		return m, cmd
	}
}

func (m Model) finishEdit(id int) Model {
	// A blank buffer is dropped without a message.
	changed := m.store.ConfirmEdit(id)
	m.edit.Blur()
	m.edit.SetValue("")
	m.status = ""
	if changed {
		m.status = "Saved edit"
		m.log.Debug("task edited", "id", id)
		m = m.persist()
	}
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	return m
}

func (m *Model) setFilter(f tasklist.Filter) {
	m.filter = f
	m.cursor = 0
	m.offset = 0
	m.status = "Showing " + f.String()
}

func (m Model) persist() Model {
	if m.saver == nil {
		return m
	}
	if err := m.saver.Save(context.Background(), m.store.Tasks()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.log.Warn("save failed", "err", err)
	}
	return m
}

func (m Model) editing() bool {
	_, _, ok := m.store.Editing()
	return ok
}

func (m Model) visible() []tasklist.Task {
	return tasklist.Apply(m.store.Tasks(), m.filter)
}

// scroll keeps the cursor inside the rendered window.
func (m *Model) scroll(n int) {
	m.cursor = clampCursor(m.cursor, n)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.listHeight {
		m.offset = m.cursor - m.listHeight + 1
	}
	m.offset = clampCursor(m.offset, max(1, n-m.listHeight+1))
}

func (m Model) View() string {
	tasks := m.store.Tasks()
	stats := tasklist.ComputeStats(tasks)

	var b strings.Builder
	b.WriteString(m.renderHeader(stats))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats(stats))
	b.WriteString("\n\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n\n")
	b.WriteString(m.renderFilters(stats))
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskList(tasklist.Apply(tasks, m.filter)))
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render(fmt.Sprintf("%s or %s on a task to edit it", label(m.cfg.Keys.Edit), label(m.cfg.Keys.Confirm))))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader(stats tasklist.Stats) string {
	width := defaultHeaderWidth
	if m.width > 0 {
		width = max(20, m.width-ringCols-4)
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Date.Render(strings.ToUpper(m.now().Format("Monday, January 2"))),
		m.theme.Title.Render(m.cfg.Title),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width).Render(left),
		m.renderRing(stats.Progress),
	)
}

func (m Model) renderStats(stats tasklist.Stats) string {
	dot := m.theme.StatDot.Render(" · ")
	line := m.theme.StatTotal.Render(fmt.Sprintf("%d total", stats.Total)) +
		dot + m.theme.StatActive.Render(fmt.Sprintf("%d active", stats.Active)) +
		dot + m.theme.StatDone.Render(fmt.Sprintf("%d done", stats.Done))
	return line + "\n" + m.bar.ViewAs(float64(stats.Progress)/100)
}

func (m Model) renderInput() string {
	style := m.theme.Input
	if m.focus == focusInput && !m.editing() {
		style = m.theme.InputFocus
	}
	if m.reject {
		style = m.theme.InputReject
	}
	return style.Render(m.input.View())
}

func (m Model) renderFilters(stats tasklist.Stats) string {
	var b strings.Builder
	for _, f := range tasklist.Filters() {
		style := m.theme.Tab
		if f == m.filter {
			style = m.theme.TabSelected
		}
		b.WriteString(style.Render(f.String()))
	}
	if stats.Done > 0 {
		b.WriteString(m.theme.Clear.Render(fmt.Sprintf("Clear done (%s)", label(m.cfg.Keys.ClearCompleted))))
	}
	return b.String()
}

func (m Model) renderTaskList(visible []tasklist.Task) string {
	if len(visible) == 0 {
		if m.filter == tasklist.Done {
			return m.theme.Empty.Render("Nothing completed yet.")
		}
		return m.theme.Empty.Render("All clear!")
	}

	editID, _, editing := m.store.Editing()
	cursor := clampCursor(m.cursor, len(visible))
	start := clampCursor(m.offset, len(visible))
	end := min(len(visible), start+m.listHeight)

	var b strings.Builder
	if start > 0 {
		b.WriteString(m.theme.Hint.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		t := visible[i]
		check := m.theme.Check.Render("[ ]")
		text := m.theme.Text.Render(t.Text)
		if t.Done {
			check = m.theme.CheckDone.Render("[x]")
			text = m.theme.TextDone.Render(t.Text)
		}
		if editing && editID == t.ID {
			text = m.theme.EditInput.Render(m.edit.View())
		}
		row := check + " " + text
		if i == cursor && (m.focus == focusList || editing) {
			b.WriteString(m.theme.RowCursor.String() + row)
		} else {
			b.WriteString(m.theme.Row.Render(row))
		}
		b.WriteString("\n")
	}
	if end < len(visible) {
		b.WriteString(m.theme.Hint.Render(fmt.Sprintf("  ↓ %d more", len(visible)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
