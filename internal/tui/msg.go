package tui

import (
	"time"

	"github.com/okanos/tasktab/internal/domain"
)

// Msg is the sealed interface for all browser messages. All message
// types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the store.
type MsgTasksLoaded struct {
	Tasks *domain.TaskList
	Now   time.Time
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskDeleted is sent when a task has been deleted.
type MsgTaskDeleted struct {
	Position  int
	Remaining int
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgFileChanged is sent when the store file changes on disk.
type MsgFileChanged struct{}

func (MsgFileChanged) sealed() {}
