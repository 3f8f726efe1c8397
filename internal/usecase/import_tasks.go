package usecase

import (
	"context"
	"fmt"

	"github.com/okanos/tasktab/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks from a
// draft file.
type ImportTasksInput struct {
	Content string // Draft file content (YAML frontmatter blocks)
	DryRun  bool   // If true, parse and validate without saving
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Parsed tasks, in file order
	Total int            // List size after the import
}

// ImportTasks is the use case for bulk-creating tasks from a file.
type ImportTasks struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(store domain.TaskStore, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		store:  store,
		logger: logger,
	}
}

// Execute parses the draft content and appends every task to the
// list. A parse error in any block rejects the whole file; nothing is
// saved.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	tasks, err := domain.ParseDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	if in.DryRun {
		return &ImportTasksOutput{Tasks: tasks}, nil
	}

	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	for _, task := range tasks {
		list.Add(task)
	}

	if err := uc.store.Save(list); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("import", fmt.Sprintf("imported %d tasks", len(tasks)))
	}

	return &ImportTasksOutput{Tasks: tasks, Total: list.Len()}, nil
}
