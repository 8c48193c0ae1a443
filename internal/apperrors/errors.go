package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and controllers. Controllers map
// these to HTTP statuses with errors.Is.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidType      = errors.New("invalid question type")
	ErrInternal         = errors.New("internal error")
)

// Validation sub-reasons, surfaced to clients so they can tell which rule a
// submission broke.
const (
	ReasonMissingPayload = "missing_or_malformed_payload"
	ReasonWrongLength    = "wrong_length"
	ReasonOutOfRange     = "out_of_range"
	ReasonDuplicate      = "duplicate"
	ReasonUnknownOption  = "unknown_option"
	ReasonEmptySelection = "empty_selection"
)

// ValidationError describes a malformed or out-of-range submitted answer.
// It is always recovered at the submission boundary and surfaced as rejected
// input, never as a crash.
type ValidationError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s' (%s): %s", e.Field, e.Reason, e.Message)
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func NewValidationError(field, reason, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

// StateError signals an out-of-contract scoring attempt, e.g. scoring input
// whose indices were never validated. It is fatal for the submission and must
// not be coerced into a zero score.
type StateError struct {
	Op      string `json:"op"`
	Message string `json:"message"`
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error in %s: %s", e.Op, e.Message)
}

func NewStateError(op, message string) *StateError {
	return &StateError{Op: op, Message: message}
}
