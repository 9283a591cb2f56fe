// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// Nop submits a no-op SQE. It is mostly useful for exercising the ring's
// submit/complete path without touching a real fd.
func (r *Ring) Nop(cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Nop,
		Fd:     -1,
	}
	return r.stage(entry, cb, state)
}
