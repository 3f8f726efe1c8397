package usecase

import (
	"context"
	"fmt"

	"github.com/okanos/tasktab/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// Exactly one field is changed per edit; the rest keep their values.
type EditTaskInput struct {
	Field    domain.Field // Which field to change (required)
	Value    string       // New value for date, time or priority
	Lines    []string     // New description lines (FieldDescription only)
	Position int          // 1-based position in the list (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.TaskStore, logger domain.Logger) *EditTask {
	return &EditTask{
		store:  store,
		logger: logger,
	}
}

// Execute replaces one field of the task at the given position. The
// new value goes through the same validation as task creation.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task, err := list.Get(in.Position)
	if err != nil {
		return nil, err
	}

	if err := task.SetField(in.Field, in.Value, in.Lines); err != nil {
		return nil, err
	}

	if err := uc.store.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("edited %s of task %d", in.Field, in.Position))
	}

	return &EditTaskOutput{Task: task}, nil
}
