package domain

import "errors"

// Domain errors.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrBlankDescription = errors.New("description must contain at least one non-empty line")
	ErrIndexOutOfRange  = errors.New("no task at that position")
	ErrEmptyList        = errors.New("the task list is empty")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownAction    = errors.New("unknown action")
	ErrNoDrafts         = errors.New("no task blocks found in file")
	ErrEmptyDraftFile   = errors.New("draft file is empty")
	ErrStoreCorrupt     = errors.New("store file is not valid task data")
)
