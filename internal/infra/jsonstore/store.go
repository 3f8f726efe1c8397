// Package jsonstore provides a JSON file-based implementation of TaskStore.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/okanos/tasktab/internal/domain"
)

// Store implements domain.TaskStore using a single JSON file holding
// an array of task objects in display order.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole task list. A missing store file yields an empty
// list, not an error.
func (s *Store) Load() (*domain.TaskList, error) {
	var list *domain.TaskList
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				list = domain.NewTaskList()
				return nil
			}
			return fmt.Errorf("read store file: %w", err)
		}

		var tasks []*domain.Task
		if err := json.Unmarshal(content, &tasks); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)
		}

		list = domain.NewTaskListWith(tasks...)
		return nil
	})
	return list, err
}

// Save writes the entire task list, replacing the previous contents.
func (s *Store) Save(list *domain.TaskList) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		tasks := list.Tasks()
		if tasks == nil {
			// An empty list stores as [], not null.
			tasks = []*domain.Task{}
		}

		content, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal tasks: %w", err)
		}

		return s.write(content)
	})
}

// withLock executes fn while holding a flock of the given type on the
// lock file next to the store.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) write(content []byte) error {
	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements the storage ports.
var (
	_ domain.TaskStore    = (*Store)(nil)
	_ domain.StoreChecker = (*Store)(nil)
)
