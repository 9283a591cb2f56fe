// +build linux

package iouring

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestAccept(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	fd, err := syscall.Socket(syscall.AF_INET, syscall.SOCK_STREAM, syscall.IPPROTO_TCP)
	require.NoError(t, err)
	defer syscall.Close(fd)
	require.NoError(t, syscall.Bind(fd, &syscall.SockaddrInet4{Port: 0}))
	require.NoError(t, syscall.Listen(fd, 1))

	var raw unix.RawSockaddrAny
	addrlen := uint32(unsafe.Sizeof(raw))

	token, err := r.Accept(fd, unsafe.Pointer(&raw), &addrlen, 0, func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}
