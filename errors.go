package kmedian

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmedian/model"
)

var (
	// ErrInvalidInput is the category sentinel for all input validation
	// failures. errors.Is(err, ErrInvalidInput) matches every typed
	// validation error below.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = fmt.Errorf("%w: k must be >= 1", ErrInvalidInput)

	// ErrNoNodes is returned when the input node set is empty.
	ErrNoNodes = fmt.Errorf("%w: no nodes", ErrInvalidInput)
)

// ErrNonFiniteCoordinate indicates a node with a NaN or infinite
// coordinate. Validation fails fast so non-finite values never reach a
// distance function.
type ErrNonFiniteCoordinate struct {
	Index int
	Point model.Point
}

func (e *ErrNonFiniteCoordinate) Error() string {
	return fmt.Sprintf("non-finite coordinate at node %d: %v", e.Index, e.Point)
}

func (e *ErrNonFiniteCoordinate) Unwrap() error { return ErrInvalidInput }

// ErrInvalidWeight indicates a negative or non-finite node weight.
type ErrInvalidWeight struct {
	Index  int
	Weight float64
}

func (e *ErrInvalidWeight) Error() string {
	return fmt.Sprintf("invalid weight at node %d: %g", e.Index, e.Weight)
}

func (e *ErrInvalidWeight) Unwrap() error { return ErrInvalidInput }

// ErrTooFewDistinctPositions indicates that a discrete candidate policy
// cannot place k centers because the input has fewer distinct node
// positions than k.
type ErrTooFewDistinctPositions struct {
	K        int
	Distinct int
}

func (e *ErrTooFewDistinctPositions) Error() string {
	return fmt.Sprintf("k (%d) exceeds the %d distinct node positions available under a discrete policy", e.K, e.Distinct)
}

func (e *ErrTooFewDistinctPositions) Unwrap() error { return ErrInvalidInput }
