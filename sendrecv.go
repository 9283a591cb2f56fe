// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Send submits a send(2)-equivalent write against a connected socket
// fd. buf must stay alive and unmoved until the callback fires.
func (r *Ring) Send(fd int, buf []byte, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Send,
		Fd:     int32(fd),
		Addr:   uint64(uintptr(unsafe.Pointer(&buf[0]))),
		Len:    uint32(len(buf)),
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}

// Recv submits a recv(2)-equivalent read against a connected socket
// fd. buf must stay alive and unmoved until the callback fires.
func (r *Ring) Recv(fd int, buf []byte, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Recv,
		Fd:     int32(fd),
		Addr:   uint64(uintptr(unsafe.Pointer(&buf[0]))),
		Len:    uint32(len(buf)),
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}
