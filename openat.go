// +build linux

package iouring

import (
	"runtime"
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// Openat submits an openat(2) resolving path relative to dfd. path
// must stay alive until the callback fires.
func (r *Ring) Openat(dfd int, path string, mode uint32, flags uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Openat,
		Fd:     int32(dfd),
		Len:    mode,
		UFlags: flags,
	}
	b := saferStringToBytes(&path)
	entry.Addr = uint64(uintptr(unsafe.Pointer(&b[0])))
	token, err := r.stage(entry, cb, state)
	runtime.KeepAlive(path)
	return token, err
}

// Openat2 submits an openat2(2) resolving path relative to dfd using
// the open_how structure at how. path and how must stay alive until
// the callback fires.
func (r *Ring) Openat2(dfd int, path string, how unsafe.Pointer, howSize uint32, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Openat2,
		Fd:     int32(dfd),
		Off:    uint64(uintptr(how)),
		Len:    howSize,
	}
	b := saferStringToBytes(&path)
	entry.Addr = uint64(uintptr(unsafe.Pointer(&b[0])))
	token, err := r.stage(entry, cb, state)
	runtime.KeepAlive(path)
	return token, err
}
