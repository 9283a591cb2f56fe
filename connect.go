// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Connect submits a connect(2) against fd, targeting the sockaddr at
// addr of length addrlen. The buffer must stay alive until the
// callback fires.
func (r *Ring) Connect(fd int, addr unsafe.Pointer, addrlen uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Connect,
		Fd:     int32(fd),
		Off:    uint64(addrlen),
		Addr:   uint64(uintptr(addr)),
	}
	return r.stage(entry, cb, state)
}
