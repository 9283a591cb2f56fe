package iouring

import (
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/ringcore/iouring/internal/sys"
)

// unblockHandle lets a reaper parked in io_uring_enter(min_complete=1)
// be woken by a producer without that producer issuing a kernel-visible
// submission of its own. A single 8-byte READ against an eventfd is
// permanently pending in the ring; its completion callback re-arms
// another read. A producer wakes the parked reaper with a plain
// write(2) on the eventfd.
//
// fd doubles as a disposed sentinel: 0 means torn down.
type unblockHandle struct {
	fd      atomic.Int64
	sqa     *submissionQueueAdapter
	readBuf [8]byte
}

func newUnblockHandle() (*unblockHandle, error) {
	fd, err := sys.Eventfd(0, syscall.O_CLOEXEC|syscall.O_NONBLOCK)
	if err != nil {
		return nil, wrapErrno("eventfd", err)
	}
	h := &unblockHandle{}
	h.fd.Store(int64(fd))
	return h, nil
}

// arm stages the handle's first READ against the ring. sqa must be set
// before arm is called; it is used both now and by rearm on every
// subsequent completion.
func (h *unblockHandle) arm(sqa *submissionQueueAdapter, pool *operationPool) {
	h.sqa = sqa
	h.submitRead(pool)
}

func (h *unblockHandle) submitRead(pool *operationPool) {
	fd := int32(h.fd.Load())
	if fd == 0 {
		return
	}
	entry := sys.SubmitEntry{
		Opcode: sys.Read,
		Fd:     fd,
		Addr:   uint64(uintptr(unsafe.Pointer(&h.readBuf[0]))),
		Len:    uint32(len(h.readBuf)),
	}
	rec := pool.Get()
	rec.opcode = sys.Read
	rec.callback = func(_ interface{}, result int32) {
		// -EBADFD (post-close teardown race) is swallowed without
		// re-arming; every other result, -EINTR and a clean read
		// included, re-arms so the read stays pending.
		if result != -int32(syscall.EBADFD) {
			h.submitRead(pool)
		}
	}
	h.sqa.stageOne(&entry, rec)
}

// signal wakes a parked reaper via a direct write on the eventfd. It
// is a no-op once the handle has been disposed.
func (h *unblockHandle) signal() error {
	fd := int(h.fd.Load())
	if fd == 0 {
		return nil
	}
	buf := [8]byte{1, 0, 0, 0, 0, 0, 0, 0}
	for {
		_, _, errno := syscall.Syscall(syscall.SYS_WRITE, uintptr(fd), uintptr(unsafe.Pointer(&buf[0])), 8)
		if errno == 0 {
			return nil
		}
		if errno == syscall.EINTR {
			continue
		}
		if errno == syscall.EBADF {
			return nil
		}
		return wrapErrno("eventfd write", errno)
	}
}

// dispose closes the eventfd and marks the handle torn down. Callers
// must write to the handle (step 2 of ring disposal) before calling
// dispose so any parked boss is released first.
func (h *unblockHandle) dispose() error {
	fd := int(h.fd.Swap(0))
	if fd == 0 {
		return nil
	}
	return syscall.Close(fd)
}
