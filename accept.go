// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Accept submits an accept(2) against fd. addr and addrlen must point at
// a kernel-ABI sockaddr buffer and its length, kept alive by the caller
// until the callback fires.
func (r *Ring) Accept(fd int, addr unsafe.Pointer, addrlen *uint32, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Accept,
		Fd:     int32(fd),
		Off:    uint64(uintptr(unsafe.Pointer(addrlen))),
		Addr:   uint64(uintptr(addr)),
		UFlags: flags,
	}
	return r.stage(entry, cb, state)
}
