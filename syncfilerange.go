// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// SyncFileRange submits a sync_file_range(2) against fd covering
// nbytes starting at offset.
func (r *Ring) SyncFileRange(fd int, offset uint64, nbytes uint32, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.SyncFileRange,
		Fd:     int32(fd),
		Off:    offset,
		Len:    nbytes,
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}
