// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/infra/config"
	"github.com/okanos/tasktab/internal/infra/jsonstore"
	"github.com/okanos/tasktab/internal/infra/logging"
	"github.com/okanos/tasktab/internal/render"
	"github.com/okanos/tasktab/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store   domain.TaskStore
	Checker domain.StoreChecker
	Clock   domain.Clock
	Logger  domain.Logger

	// Presentation
	Styles render.Styles

	// Configuration
	Config *domain.Config

	fileLogger *logging.Logger // retained for Close
}

// New creates a new Container for the given working directory, with
// configuration merged from the global and local config files.
func New(workDir string) (*Container, error) {
	loader := config.NewLoader(workDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewFromConfig(cfg), nil
}

// NewFromConfig creates a new Container from an already-loaded config.
func NewFromConfig(cfg *domain.Config) *Container {
	store := jsonstore.New(cfg.Store.Path)
	logger := logging.New(cfg.Log.Path, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Store:      store,
		Checker:    store,
		Clock:      domain.RealClock{},
		Logger:     logger,
		Styles:     render.StylesFromConfig(cfg.Colors),
		Config:     cfg,
		fileLogger: logger,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.TaskStore, checker domain.StoreChecker, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Store:   store,
		Checker: checker,
		Clock:   clock,
		Logger:  logger,
		Styles:  render.PlainStyles(),
		Config:  cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Clock)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store, c.Clock)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Store, c.Logger)
}

// StatsUseCase returns a new Stats use case.
func (c *Container) StatsUseCase() *usecase.Stats {
	return usecase.NewStats(c.Store, c.Clock)
}

// ValidateStoreUseCase returns a new ValidateStore use case.
func (c *Container) ValidateStoreUseCase() *usecase.ValidateStore {
	return usecase.NewValidateStore(c.Checker)
}
