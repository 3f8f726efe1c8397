package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/usecase"
)

// Model is the main bubbletea model for the task browser.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	watcher   *fsnotify.Watcher
	tasks     *domain.TaskList
	err       error

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model
	detail   viewport.Model

	// State
	now        time.Time
	storePath  string
	mode       Mode
	width      int
	height     int
	confirmPos int
	detailPos  int
}

// New creates a new browser Model with the given container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()
	delegate := newTaskDelegate(styles)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(true)
	taskList.DisableQuitKeybindings()

	storePath := domain.DefaultStoreFile
	if c.Config != nil && c.Config.Store.Path != "" {
		storePath = c.Config.Store.Path
	}

	return &Model{
		container: c,
		watcher:   newStoreWatcher(storePath),
		tasks:     domain.NewTaskList(),
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		storePath: storePath,
		mode:      ModeList,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		waitForFileChange(m.watcher, m.storePath),
	)
}

// loadTasks returns a command that loads tasks from the store. The
// browser shows its own empty state, so an empty list is not an error
// here.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			if errors.Is(err, domain.ErrEmptyList) {
				return MsgTasksLoaded{Tasks: domain.NewTaskList(), Now: m.container.Clock.Now()}
			}
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Now: out.Now}
	}
}

// deleteTask returns a command that deletes the task at the position.
func (m *Model) deleteTask(pos int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(
			context.Background(),
			usecase.DeleteTaskInput{Position: pos},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{Position: pos, Remaining: out.Remaining}
	}
}

// SelectedItem returns the currently selected task and its position,
// or nil if nothing is selected.
func (m *Model) SelectedItem() (*domain.Task, int) {
	if m.taskList.SelectedItem() == nil {
		return nil, 0
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task, ti.position
	}
	return nil, 0
}

// updateTaskList rebuilds the list items from the loaded tasks.
func (m *Model) updateTaskList() {
	items := make([]list.Item, 0, m.tasks.Len())
	for i, task := range m.tasks.Tasks() {
		items = append(items, taskItem{task: task, now: m.now, position: i + 1})
	}
	m.taskList.SetItems(items)
}

// openDetail switches to the detail view for the selected task.
func (m *Model) openDetail() {
	task, pos := m.SelectedItem()
	if task == nil {
		return
	}
	m.detailPos = pos
	m.initDetailViewport()
}

func (m *Model) initDetailViewport() {
	width := m.width - 8
	height := m.height - 8
	if width < 40 {
		width = 40
	}
	if height < 10 {
		height = 10
	}
	m.detail = viewport.New(width, height)
	m.detail.SetContent(m.detailContent())
	m.mode = ModeDetail
}

// detailContent renders the label/value block for the detail view.
func (m *Model) detailContent() string {
	task, err := m.tasks.Get(m.detailPos)
	if err != nil {
		return "No task selected"
	}

	label := func(name, value string) string {
		return m.styles.DetailLabel.Render(name) + m.styles.DetailValue.Render(value)
	}

	lines := []string{
		m.styles.DetailTitle.Render(fmt.Sprintf("Task %d", m.detailPos)),
		label("Due", task.Date.String()+" "+task.Time.String()),
		label("Priority", "") + m.styles.PriorityStyle(task.Priority).Render(task.Priority.Display()),
		label("State", "") + m.styles.DueStyle(task.DueState(m.now)).Render(task.DueState(m.now).Display()),
		"",
	}
	for _, line := range task.Description {
		lines = append(lines, m.styles.DetailValue.Render(line))
	}

	result := ""
	for i, line := range lines {
		result += line
		if i < len(lines)-1 {
			result += "\n"
		}
	}
	return result
}
