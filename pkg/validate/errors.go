package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every validation failure via errors.Is.
var ErrInvalid = errors.New("invalid seed document")

// ProbabilityWeightMismatchError reports a study whose experiment weights do
// not add up to TotalProbability.
type ProbabilityWeightMismatchError struct {
	Study string
	Sum   uint64
}

func (e *ProbabilityWeightMismatchError) Error() string {
	return fmt.Sprintf("study %q: probability weights sum to %d, want %d", e.Study, e.Sum, TotalProbability)
}

func (e *ProbabilityWeightMismatchError) Is(target error) bool { return target == ErrInvalid }

// UnsupportedChannelError reports a filter channel outside the channel table.
type UnsupportedChannelError struct {
	Study string
	Value string
}

func (e *UnsupportedChannelError) Error() string {
	return fmt.Sprintf("study %q: unsupported channel %q", e.Study, e.Value)
}

func (e *UnsupportedChannelError) Is(target error) bool { return target == ErrInvalid }

// UnsupportedPlatformError reports a filter platform outside the platform table.
type UnsupportedPlatformError struct {
	Study string
	Value string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("study %q: unsupported platform %q", e.Study, e.Value)
}

func (e *UnsupportedPlatformError) Is(target error) bool { return target == ErrInvalid }

// DuplicateStudyError reports a study name used more than once.
type DuplicateStudyError struct {
	Study string
}

func (e *DuplicateStudyError) Error() string {
	return fmt.Sprintf("study %q: name is used more than once", e.Study)
}

func (e *DuplicateStudyError) Is(target error) bool { return target == ErrInvalid }

// InvalidDateError reports a filter date that does not parse or an inverted
// start/end range.
type InvalidDateError struct {
	Study  string
	Field  string
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("study %q: invalid %s %q: %s", e.Study, e.Field, e.Value, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool { return target == ErrInvalid }

// Errors is the list of failures found in one document, in document order.
type Errors []error

func (e Errors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	return e
}
