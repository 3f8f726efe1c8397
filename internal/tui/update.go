package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.taskList.SetSize(msg.Width-4, msg.Height-6)
		if m.mode == ModeDetail {
			m.initDetailViewport()
		}
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.now = msg.Now
		m.updateTaskList()
		if m.mode == ModeDetail {
			// The position may now point at a different task, or at
			// nothing. Fall back to the list rather than guess.
			if m.detailPos > m.tasks.Len() {
				m.mode = ModeList
			} else {
				m.detail.SetContent(m.detailContent())
			}
		}
		return m, nil

	case MsgTaskDeleted:
		m.mode = ModeList
		m.confirmPos = 0
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeList
		m.confirmPos = 0
		return m, nil

	case MsgFileChanged:
		// Reload and re-arm the watcher.
		return m, tea.Batch(m.loadTasks(), waitForFileChange(m.watcher, m.storePath))
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeList:
		return m.handleListMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	}

	return m, nil
}

// handleListMode handles keys in the task list.
func (m *Model) handleListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is open it owns the keyboard.
	if m.taskList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.closeWatcher()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Enter):
		m.openDetail()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task, pos := m.SelectedItem(); task != nil {
			m.mode = ModeConfirm
			m.confirmPos = pos
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadTasks()
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// handleDetailMode handles keys in the detail view.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeList
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.mode = ModeConfirm
		m.confirmPos = m.detailPos
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleConfirmMode handles keys in the delete confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteTask(m.confirmPos)

	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		m.mode = ModeList
		m.confirmPos = 0
		return m, nil
	}

	return m, nil
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}
