package fork_join

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrTaskPanicked is wrapped by every *PanicError.
	ErrTaskPanicked = errors.New("fork_join: task panicked")
	// ErrPoolClosed is returned for work submitted to a closed pool.
	ErrPoolClosed = errors.New("fork_join: pool is closed")
)

// PanicError carries a value recovered from a task together with the
// stack of the goroutine that panicked.
type PanicError struct {
	Value interface{}
	Stack []byte
}

// NewPanicError must be called from the deferred function that recovered p.
func NewPanicError(p interface{}) *PanicError {
	return &PanicError{Value: p, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTaskPanicked, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrTaskPanicked
}
