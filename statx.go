// +build linux

package iouring

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ringcore/iouring/internal/sys"
)

// Statx submits a statx(2) for path resolved relative to dfd. path and
// statxbuf must stay alive until the callback fires; the callback
// itself is responsible for calling runtime.KeepAlive if it needs them
// to survive past that point.
func (r *Ring) Statx(dfd int, path string, flags uint32, mask uint32, statxbuf *unix.Statx_t, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.Statx,
		Fd:     int32(dfd),
		Off:    uint64(uintptr(unsafe.Pointer(statxbuf))),
		Len:    mask,
		UFlags: flags,
	}
	if path != "" {
		b := saferStringToBytes(&path)
		entry.Addr = uint64(uintptr(unsafe.Pointer(&b[0])))
	}
	token, err := r.stage(entry, cb, state)
	runtime.KeepAlive(path)
	return token, err
}
