// +build linux

package iouring

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ringcore/iouring/internal/sys"
)

// EpollCtl submits an epoll_ctl(2) against epfd targeting fd with op
// (EPOLL_CTL_ADD/MOD/DEL) and event. event must stay alive until the
// callback fires.
func (r *Ring) EpollCtl(epfd int, fd int, op uint32, event *unix.EpollEvent, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.EpollCtl,
		Fd:     int32(epfd),
		Off:    uint64(fd),
		Addr:   uint64(uintptr(unsafe.Pointer(event))),
		Len:    op,
	}
	return r.stage(entry, cb, state)
}
