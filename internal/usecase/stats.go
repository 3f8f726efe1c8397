package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/okanos/tasktab/internal/domain"
)

// StatsInput contains the parameters for computing list statistics.
type StatsInput struct {
	// Empty for now; date range filters may be added later
}

// StatsOutput contains counts over the task list.
type StatsOutput struct {
	ByPriority map[domain.Priority]int // Task count per priority
	ByDueState map[domain.DueState]int // Task count per due state
	Now        time.Time               // Reference time the due states were computed against
	Total      int                     // Total number of tasks
}

// Stats is the use case for summarizing the task list.
type Stats struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewStats creates a new Stats use case.
func NewStats(store domain.TaskStore, clock domain.Clock) *Stats {
	return &Stats{
		store: store,
		clock: clock,
	}
}

// Execute counts tasks by priority and by due state. Due states are
// computed fresh against the current clock, never from stored data.
func (uc *Stats) Execute(_ context.Context, _ StatsInput) (*StatsOutput, error) {
	list, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	if list.IsEmpty() {
		return nil, domain.ErrEmptyList
	}

	now := uc.clock.Now()
	out := &StatsOutput{
		ByPriority: make(map[domain.Priority]int),
		ByDueState: make(map[domain.DueState]int),
		Now:        now,
		Total:      list.Len(),
	}

	for _, task := range list.Tasks() {
		out.ByPriority[task.Priority]++
		out.ByDueState[task.DueState(now)]++
	}

	return out, nil
}
