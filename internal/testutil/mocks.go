// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/okanos/tasktab/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskStore is a test double for domain.TaskStore backed by an
// in-memory list.
type MockTaskStore struct {
	List    *domain.TaskList
	Saved   []*domain.TaskList // Every list passed to Save, in call order
	LoadErr error
	SaveErr error
}

// NewMockTaskStore creates a new MockTaskStore seeded with the given tasks.
func NewMockTaskStore(tasks ...*domain.Task) *MockTaskStore {
	return &MockTaskStore{
		List: domain.NewTaskListWith(tasks...),
	}
}

// Load returns the in-memory list.
func (m *MockTaskStore) Load() (*domain.TaskList, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.List, nil
}

// Save records the list and keeps it for the next Load.
func (m *MockTaskStore) Save(list *domain.TaskList) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.List = list
	m.Saved = append(m.Saved, list)
	return nil
}

// SaveCount returns how many times Save succeeded.
func (m *MockTaskStore) SaveCount() int {
	return len(m.Saved)
}

// MockStoreChecker is a test double for domain.StoreChecker.
type MockStoreChecker struct {
	Result   *domain.StoreCheck
	CheckErr error
}

// Check returns the configured result.
func (m *MockStoreChecker) Check() (*domain.StoreCheck, error) {
	if m.CheckErr != nil {
		return nil, m.CheckErr
	}
	return m.Result, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) {
	m.record("DEBUG", category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) {
	m.record("INFO", category, msg)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) {
	m.record("WARN", category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) {
	m.record("ERROR", category, msg)
}

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}
