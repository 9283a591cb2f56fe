// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Timeout submits a TIMEOUT op that completes after count prior
// submissions have completed, or ts expires, whichever comes first.
// ts must stay alive until the callback fires.
func (r *Ring) Timeout(ts *KernelTimespec, count uint32, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Timeout,
		Fd:     -1,
		Off:    uint64(count),
		Addr:   uint64(uintptr(unsafe.Pointer(ts))),
		Len:    1,
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}

// TimeoutRemove cancels the pending timeout identified by target, the
// token returned by the Timeout call that queued it.
func (r *Ring) TimeoutRemove(target uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.TimeoutRemove,
		Fd:     -1,
		Addr:   target,
	}
	return r.stage(entry, cb, state)
}

// LinkTimeout stages a LINK_TIMEOUT op on its own, through a
// single-entry stage; it does not link it to any earlier submission.
// The kernel binds a LINK_TIMEOUT to whichever SQE directly precedes it
// in the same linked chain, so a bounded pair is staged together as one
// StageLinked batch.
func (r *Ring) LinkTimeout(ts *KernelTimespec, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.LinkTimeout,
		Fd:     -1,
		Addr:   uint64(uintptr(unsafe.Pointer(ts))),
		Len:    1,
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}
