// Package rerr holds the error types raised for conditions a caller can
// reasonably recover from — resource and size limits — as distinct from the
// panics used elsewhere in this module for invariant violations that are
// always a programming bug.
package rerr

import "fmt"

// BudgetError reports that an operation could not proceed within a resource
// budget. In this module frame.Render returns it for a non-positive frame
// size or a frame dimension over its ceiling.
type BudgetError struct {
	Op      string
	Limit   int
	Wanted  int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("rerr: %s exceeded budget (wanted %d, limit %d)", e.Op, e.Wanted, e.Limit)
}

// NewBudgetError builds a BudgetError for op, which wanted more than limit.
func NewBudgetError(op string, wanted, limit int) *BudgetError {
	return &BudgetError{Op: op, Limit: limit, Wanted: wanted}
}
