// +build linux

package iouring

import (
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Write submits a single-buffer write against fd at the given byte
// offset. buf must stay alive and unmoved until the callback fires.
func (r *Ring) Write(fd int, buf []byte, offset uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Write,
		Fd:     int32(fd),
		Off:    offset,
		Addr:   uint64(uintptr(unsafe.Pointer(&buf[0]))),
		Len:    uint32(len(buf)),
	}
	return r.stage(entry, cb, state)
}

// WriteFixed submits a write against fd from buf, a buffer previously
// registered with the ring at bufIndex.
func (r *Ring) WriteFixed(fd int, buf []byte, offset uint64, bufIndex uint16, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode:   sys.WriteFixed,
		Fd:       int32(fd),
		Off:      offset,
		Addr:     uint64(uintptr(unsafe.Pointer(&buf[0]))),
		Len:      uint32(len(buf)),
		BufIndex: bufIndex,
	}
	return r.stage(entry, cb, state)
}
