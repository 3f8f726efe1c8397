package domain

import "time"

// TaskStore persists the task list as a single document.
type TaskStore interface {
	// Load reads the stored task list. A missing store file yields an
	// empty list, not an error.
	Load() (*TaskList, error)

	// Save writes the entire task list, replacing the previous contents.
	Save(list *TaskList) error
}

// StoreChecker validates the persisted form of the task list.
type StoreChecker interface {
	// Check inspects the store file and reports every problem found.
	// A missing file is not a problem; the list just starts empty.
	Check() (*StoreCheck, error)
}

// StoreCheck reports the outcome of a store file integrity check.
// Fields are ordered to minimize memory padding.
type StoreCheck struct {
	Problems []string // Human-readable problems, in file order
	Tasks    int      // Number of tasks seen in the file
	Missing  bool     // Store file does not exist yet
}

// Valid reports whether the check found no problems.
func (c *StoreCheck) Valid() bool {
	return len(c.Problems) == 0
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration. Missing config files are
	// not an error; defaults fill the gaps.
	Load() (*Config, error)
}

// Logger records application events by category.
type Logger interface {
	// Debug logs a debug message.
	Debug(category, msg string)

	// Info logs an info message.
	Info(category, msg string)

	// Warn logs a warning message.
	Warn(category, msg string)

	// Error logs an error message.
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
