package tuist

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNode is reported when a nil node is passed where a node is required.
	ErrNilNode = errors.New("nil node")
	// ErrCycle is reported when an insertion would make a node its own ancestor.
	ErrCycle = errors.New("node would become its own ancestor")
	// ErrNilAction is reported when a nil func is dispatched to the host.
	ErrNilAction = errors.New("nil action")
	// ErrNilTerminal is reported when a host is created without a terminal or
	// input reader.
	ErrNilTerminal = errors.New("nil terminal or input reader")
)

// PreconditionError describes a violated API contract. These are programming
// errors and are raised with panic rather than returned.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("tuist: %s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func precondition(op string, err error) {
	panic(&PreconditionError{Op: op, Err: err})
}
