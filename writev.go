// +build linux

package iouring

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ringcore/iouring/internal/sys"
)

// Writev submits a gather write against fd at the given byte offset.
// iovecs must stay alive and unmoved until the callback fires.
func (r *Ring) Writev(fd int, iovecs []unix.Iovec, offset uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Writev,
		Fd:     int32(fd),
		Off:    offset,
		Addr:   uint64(uintptr(unsafe.Pointer(&iovecs[0]))),
		Len:    uint32(len(iovecs)),
	}
	return r.stage(entry, cb, state)
}
