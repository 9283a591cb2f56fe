// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// FilesUpdate updates the ring's registered fixed fileset starting at
// offset with fds. fds must stay alive until the callback fires.
func (r *Ring) FilesUpdate(offset uint32, fds []int32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.FilesUpdate,
		Fd:     -1,
		Off:    uint64(offset),
		Addr:   uint64(uintptr(unsafe.Pointer(&fds[0]))),
		Len:    uint32(len(fds)),
	}
	return r.stage(entry, cb, state)
}
