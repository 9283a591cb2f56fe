// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// Fsync submits an fsync(2)/fdatasync(2)-equivalent flush against fd.
// Pass FsyncDatasync in flags for the fdatasync variant.
func (r *Ring) Fsync(fd int, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Fsync,
		Fd:     int32(fd),
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}
