// +build linux

package sys

import (
	"syscall"
	"unsafe"
)

// RegisterFiles registers a fixed fileset with the ring.
func RegisterFiles(fd int, files []int32) error {
	_, _, errno := syscall.Syscall6(
		RegisterSyscall,
		uintptr(fd),
		uintptr(RegOpRegisterFiles),
		uintptr(unsafe.Pointer(&files[0])),
		uintptr(len(files)),
		0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}

// RegisterEventFd registers an eventfd that the kernel signals on every
// completion.
func RegisterEventFd(fd int, eventFd int) error {
	evFd := int32(eventFd)
	_, _, errno := syscall.Syscall6(
		RegisterSyscall,
		uintptr(fd),
		uintptr(RegOpRegisterEventFd),
		uintptr(unsafe.Pointer(&evFd)),
		1,
		0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}

// Eventfd creates a new eventfd with the given initial value and flags.
func Eventfd(initval uint, flags int) (int, error) {
	fd, _, errno := syscall.Syscall(
		syscall.SYS_EVENTFD2,
		uintptr(initval),
		uintptr(flags),
		0,
	)
	if errno != 0 {
		return 0, errno
	}
	return int(fd), nil
}
