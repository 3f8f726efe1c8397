package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/okanos/tasktab/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	// Empty for now; filters may be added later
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks *domain.TaskList // All tasks in display order
	Now   time.Time        // Reference time for due state rendering
}

// ListTasks is the use case for listing all tasks.
type ListTasks struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore, clock domain.Clock) *ListTasks {
	return &ListTasks{
		store: store,
		clock: clock,
	}
}

// Execute returns the full task list. Listing an empty collection is
// an error so callers can report it instead of printing a bare table.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	if list.IsEmpty() {
		return nil, domain.ErrEmptyList
	}

	return &ListTasksOutput{
		Tasks: list,
		Now:   uc.clock.Now(),
	}, nil
}
