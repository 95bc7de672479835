package analytics

import (
	"errors"
	"fmt"
)

// ErrAggregationFailed marks every store fault raised while computing a summary.
var ErrAggregationFailed = errors.New("analytics aggregation failed")

// AggregationError records which query failed. It matches ErrAggregationFailed
// and unwraps to the store error.
type AggregationError struct {
	Step string
	Err  error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrAggregationFailed, e.Step, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

func (e *AggregationError) Is(target error) bool {
	return target == ErrAggregationFailed
}

func aggregationError(step string, err error) error {
	return &AggregationError{Step: step, Err: err}
}
