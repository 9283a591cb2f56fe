// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Read submits a single-buffer read against fd at the given byte
// offset. buf must stay alive and unmoved until the callback fires.
func (r *Ring) Read(fd int, buf []byte, offset uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Read,
		Fd:     int32(fd),
		Off:    offset,
		Addr:   uint64(uintptr(unsafe.Pointer(&buf[0]))),
		Len:    uint32(len(buf)),
	}
	return r.stage(entry, cb, state)
}

// ReadFixed submits a read against fd into buf, a buffer previously
// registered with the ring at bufIndex.
func (r *Ring) ReadFixed(fd int, buf []byte, offset uint64, bufIndex uint16, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode:   sys.ReadFixed,
		Fd:       int32(fd),
		Off:      offset,
		Addr:     uint64(uintptr(unsafe.Pointer(&buf[0]))),
		Len:      uint32(len(buf)),
		BufIndex: bufIndex,
	}
	return r.stage(entry, cb, state)
}
