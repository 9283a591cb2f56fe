// +build linux

package iouring

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestConnect(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	fd, err := syscall.Socket(syscall.AF_INET, syscall.SOCK_STREAM, syscall.IPPROTO_TCP)
	require.NoError(t, err)
	defer syscall.Close(fd)

	addr := unix.RawSockaddrInet4{Family: unix.AF_INET, Port: 80}
	token, err := r.Connect(fd, unsafe.Pointer(&addr), uint32(unsafe.Sizeof(addr)), func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}
