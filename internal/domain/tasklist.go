package domain

import "fmt"

// TaskList is the ordered collection of tasks. Insertion order is
// display order, and every position shown to the user is 1-based.
// The list exclusively owns its tasks.
type TaskList struct {
	tasks []*Task
}

// NewTaskList returns an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{}
}

// NewTaskListWith returns a list holding the given tasks in order.
func NewTaskListWith(tasks ...*Task) *TaskList {
	return &TaskList{tasks: tasks}
}

// Add appends a task to the end of the list.
func (l *TaskList) Add(t *Task) {
	l.tasks = append(l.tasks, t)
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list holds no tasks.
func (l *TaskList) IsEmpty() bool {
	return len(l.tasks) == 0
}

// Get returns the task at the 1-based position.
func (l *TaskList) Get(pos int) (*Task, error) {
	if err := l.checkPos(pos); err != nil {
		return nil, err
	}
	return l.tasks[pos-1], nil
}

// Delete removes and returns the task at the 1-based position. Every
// task after it moves down one position.
func (l *TaskList) Delete(pos int) (*Task, error) {
	if err := l.checkPos(pos); err != nil {
		return nil, err
	}
	removed := l.tasks[pos-1]
	l.tasks = append(l.tasks[:pos-1], l.tasks[pos:]...)
	return removed, nil
}

// Tasks returns the tasks in display order. The returned slice is the
// list's own backing storage; callers must not modify it.
func (l *TaskList) Tasks() []*Task {
	return l.tasks
}

// checkPos distinguishes the structural empty-list case from a plain
// out-of-range position on a non-empty list.
func (l *TaskList) checkPos(pos int) error {
	if l.IsEmpty() {
		return ErrEmptyList
	}
	if pos < 1 || pos > len(l.tasks) {
		return fmt.Errorf("%w: %d (list has %d)", ErrIndexOutOfRange, pos, len(l.tasks))
	}
	return nil
}
