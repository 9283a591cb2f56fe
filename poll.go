// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// PollAdd submits a poll against fd for the given epoll-style event
// mask.
func (r *Ring) PollAdd(fd int, mask uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.PollAdd,
		Fd:     int32(fd),
		UFlags: mask,
	}
	return r.stage(entry, cb, state)
}

// PollRemove cancels the pending poll identified by target, the token
// returned by the PollAdd that queued it.
func (r *Ring) PollRemove(target uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.PollRemove,
		Fd:     -1,
		Addr:   target,
	}
	return r.stage(entry, cb, state)
}
