// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// Fallocate submits a fallocate(2) against fd.
func (r *Ring) Fallocate(fd int, mode uint32, offset uint64, length uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Fallocate,
		Fd:     int32(fd),
		Off:    offset,
		Addr:   length,
		Len:    mode,
	}
	return r.stage(entry, cb, state)
}
