package usecase

import (
	"context"
	"fmt"

	"github.com/okanos/tasktab/internal/domain"
)

// ValidateStoreInput contains the parameters for validating the store file.
type ValidateStoreInput struct {
	// Empty for now
}

// ValidateStoreOutput contains the result of the store validation.
type ValidateStoreOutput struct {
	Check *domain.StoreCheck // Problems found, if any
}

// ValidateStore is the use case for checking store file integrity.
type ValidateStore struct {
	checker domain.StoreChecker
}

// NewValidateStore creates a new ValidateStore use case.
func NewValidateStore(checker domain.StoreChecker) *ValidateStore {
	return &ValidateStore{
		checker: checker,
	}
}

// Execute inspects the store file and reports every problem found.
// Problems are data, not errors; the error return covers only I/O
// failures reading the file.
func (uc *ValidateStore) Execute(_ context.Context, _ ValidateStoreInput) (*ValidateStoreOutput, error) {
	check, err := uc.checker.Check()
	if err != nil {
		return nil, fmt.Errorf("check store: %w", err)
	}

	return &ValidateStoreOutput{Check: check}, nil
}
