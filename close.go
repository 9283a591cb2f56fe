// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// CloseFd submits a close(2) against fd through the ring rather than
// calling it directly. Named to avoid colliding with (*Ring).Close,
// the ring's own lifecycle teardown.
func (r *Ring) CloseFd(fd int, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Close,
		Fd:     int32(fd),
	}
	return r.stage(entry, cb, state)
}
