// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// Fadvise submits a fadvise(2) against fd covering length bytes from
// offset.
func (r *Ring) Fadvise(fd int, offset uint64, length uint32, advice uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Fadvise,
		Fd:     int32(fd),
		Off:    offset,
		Len:    length,
		UFlags: advice,
	}
	return r.stage(entry, cb, state)
}

// Madvise submits a madvise(2) against the memory region starting at
// addr covering length bytes.
func (r *Ring) Madvise(addr uintptr, length uint32, advice uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Madvise,
		Fd:     -1,
		Addr:   uint64(addr),
		Len:    length,
		UFlags: advice,
	}
	return r.stage(entry, cb, state)
}
