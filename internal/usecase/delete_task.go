package usecase

import (
	"context"
	"fmt"

	"github.com/okanos/tasktab/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Position int // 1-based position in the list (required)
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task      *domain.Task // The removed task
	Remaining int          // Number of tasks left in the list
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.TaskStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		store:  store,
		logger: logger,
	}
}

// Execute removes the task at the given position. Tasks after it
// shift down by one.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task, err := list.Delete(in.Position)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted task %d (due %s)", in.Position, task.Date))
	}

	return &DeleteTaskOutput{Task: task, Remaining: list.Len()}, nil
}
