package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/okanos/tasktab/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	Position int // 1-based position in the list (required)
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task     *domain.Task // The task details
	Now      time.Time    // Reference time for due state rendering
	Position int          // Echoed back for display
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.TaskStore, clock domain.Clock) *ShowTask {
	return &ShowTask{
		store: store,
		clock: clock,
	}
}

// Execute retrieves the task at the given position.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task, err := list.Get(in.Position)
	if err != nil {
		return nil, err
	}

	return &ShowTaskOutput{
		Task:     task,
		Now:      uc.clock.Now(),
		Position: in.Position,
	}, nil
}
