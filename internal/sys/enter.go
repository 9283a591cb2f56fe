// +build linux

package sys

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Enter invokes io_uring_enter and returns the number of submissions the
// kernel consumed.
func Enter(fd int, toSubmit uint32, minComplete uint32, flags uint32, sigset *unix.Sigset_t) (int, error) {
	res, _, errno := syscall.Syscall6(
		EnterSyscall,
		uintptr(fd),
		uintptr(toSubmit),
		uintptr(minComplete),
		uintptr(flags),
		uintptr(unsafe.Pointer(sigset)),
		unsafe.Sizeof(unix.Sigset_t{}),
	)
	if errno != 0 {
		return 0, errno
	}
	return int(res), nil
}
