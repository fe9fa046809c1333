package domain

import "errors"

var (
	// ErrNotFound indicates a mutation or lookup referenced an entity id that
	// does not exist. Transition operations report this instead of silently
	// ignoring the request.
	ErrNotFound = errors.New("entity not found")

	// ErrValidation indicates a field failed intake validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStage indicates a stage value outside the enumeration.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrLossReason indicates a loss confirmation without a valid reason.
	ErrLossReason = errors.New("loss reason required")

	// ErrRRTIssued indicates an attempt to re-issue an already issued RRT.
	ErrRRTIssued = errors.New("rrt already issued")
)
