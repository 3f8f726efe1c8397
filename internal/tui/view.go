package tui

import (
	"fmt"
	"strings"
)

// View renders the task browser.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeDetail:
		content = m.viewDetail()
	case ModeList, ModeConfirm:
		content = m.viewList()
	}

	return m.styles.App.Render(content)
}

// viewList renders the main task list view.
func (m *Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.tasks.IsEmpty() {
		b.WriteString(m.styles.EmptyState.Render("No tasks yet. Add some with: tasktab add"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.taskList.View())
	}

	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))

	return b.String()
}

// viewHeader renders the title line with the task count.
func (m *Model) viewHeader() string {
	count := fmt.Sprintf("%d tasks", m.tasks.Len())
	if m.tasks.Len() == 1 {
		count = "1 task"
	}
	return m.styles.Header.Render(
		m.styles.HeaderText.Render("tasktab") + "  " +
			m.styles.Footer.Render(count),
	)
}

// viewDetail renders the single task view.
func (m *Model) viewDetail() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.detail.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("esc back · d delete · q list"))

	return b.String()
}

// viewConfirmDialog renders the delete confirmation.
func (m *Model) viewConfirmDialog() string {
	task, err := m.tasks.Get(m.confirmPos)
	if err != nil {
		return ""
	}
	prompt := fmt.Sprintf("Delete task %d (%s)? (y/n)", m.confirmPos, task.Summary())
	return m.styles.Dialog.Render(m.styles.DialogPrompt.Render(prompt))
}
