package rankfast

import (
	"errors"
	"fmt"
)

// ErrNoStrictPreference is the cause recorded in an OracleError when the
// oracle returns a value that is neither PreferA nor PreferB. Ties are
// not modeled; an oracle that cannot strictly order a pair must fail.
var ErrNoStrictPreference = errors.New("oracle returned no strict preference")

// ErrNoPendingQuestion is returned by Session.Answer when there is no
// unanswered question outstanding.
var ErrNoPendingQuestion = errors.New("no pending question to answer")

// OracleError represents a failed comparison: the oracle returned an
// error, an invalid preference, or the run's context was cancelled
// while a question was outstanding. It is fatal to the run; no partial
// ranking is produced.
type OracleError struct {
	// A and B are the items the failed question was about.
	A, B any
	// Cause is the underlying oracle or context error.
	Cause error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle failure comparing %v and %v: %v", e.A, e.B, e.Cause)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}

// NewOracleError creates an OracleError for the pair (a, b).
func NewOracleError(cause error, a, b any) error {
	return &OracleError{A: a, B: b, Cause: cause}
}

// DuplicateItemError reports that the input collection contains the
// same item identity twice. It is raised before any comparison is
// issued.
type DuplicateItemError struct {
	// Item is the duplicated value.
	Item any
	// First and Second are the input indices of the two occurrences.
	First, Second int
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("duplicate item %v at input positions %d and %d", e.Item, e.First, e.Second)
}

// NewDuplicateItemError creates a DuplicateItemError for item at the
// given input positions.
func NewDuplicateItemError(item any, first, second int) error {
	return &DuplicateItemError{Item: item, First: first, Second: second}
}

// InconsistentComparatorError reports that two resolutions of the same
// unordered pair disagreed. The cache forbids overwriting a stored
// result, so this can only surface from the defensive insert-if-absent
// check and indicates a broken oracle.
type InconsistentComparatorError struct {
	// A and B are the items whose cached and new results conflict.
	A, B any
}

func (e *InconsistentComparatorError) Error() string {
	return fmt.Sprintf("inconsistent comparator: conflicting results for %v and %v", e.A, e.B)
}

// NewInconsistentComparatorError creates an InconsistentComparatorError
// for the pair (a, b).
func NewInconsistentComparatorError(a, b any) error {
	return &InconsistentComparatorError{A: a, B: b}
}
