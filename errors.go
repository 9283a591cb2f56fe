package iouring

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrQueueFull is returned by a stage operation when the SQ has no
	// free slots for the requested batch.
	ErrQueueFull = errors.New("submission queue full")

	// ErrCQOverflow is terminal: the kernel reports the completion queue
	// overflowed and the registry may have lost entries whose callbacks
	// will never fire.
	ErrCQOverflow = errors.New("completion queue overflow")

	// ErrAwaitCompletions is a non-error intermediate result from
	// submitAndWait meaning the kernel returned EAGAIN/EBUSY; the caller
	// should drain completions and retry.
	ErrAwaitCompletions = errors.New("await completions")

	// ErrDisposed is returned by operations attempted after the ring has
	// begun or finished shutting down.
	ErrDisposed = errors.New("ring disposed")
)

// ErrnoError wraps a raw syscall errno surfaced from the kernel.
type ErrnoError struct {
	Errno error
	Op    string
}

func (e *ErrnoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Errno)
}

func (e *ErrnoError) Unwrap() error { return e.Errno }

func wrapErrno(op string, errno error) error {
	if errno == nil {
		return nil
	}
	return &ErrnoError{Errno: errno, Op: op}
}
