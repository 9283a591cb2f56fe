// +build linux

package iouring

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ringcore/iouring/internal/sys"
)

// RecvMsg submits a recvmsg(2) against fd.
func (r *Ring) RecvMsg(fd int, msg *unix.Msghdr, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.RecvMsg,
		Fd:     int32(fd),
		Addr:   uint64(uintptr(unsafe.Pointer(msg))),
		Len:    1,
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}

// SendMsg submits a sendmsg(2) against fd.
func (r *Ring) SendMsg(fd int, msg *unix.Msghdr, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.SendMsg,
		Fd:     int32(fd),
		Addr:   uint64(uintptr(unsafe.Pointer(msg))),
		Len:    1,
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}
