// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/okanos/tasktab/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Date        string   // Due date (required)
	Time        string   // Due time of day (required)
	Priority    string   // Priority code or name (required)
	Description []string // Description lines (at least one non-empty)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task     *domain.Task // The created task
	Position int          // 1-based position of the task in the list
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskStore, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		logger: logger,
	}
}

// Execute validates the input and appends the new task to the list.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := domain.NewTask(in.Date, in.Time, in.Priority, in.Description)
	if err != nil {
		return nil, err
	}

	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	list.Add(task)

	if err := uc.store.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added: due %s %s, priority %s", task.Date, task.Time, task.Priority.Display()))
	}

	return &AddTaskOutput{Task: task, Position: list.Len()}, nil
}
