// +build linux

package iouring

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRecvMsg(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	require.NoError(t, err)
	defer syscall.Close(fds[0])
	defer syscall.Close(fds[1])

	buf := make([]byte, 64)
	iov := []unix.Iovec{{Base: &buf[0]}}
	iov[0].SetLen(len(buf))
	msg := &unix.Msghdr{}
	msg.Iov = &iov[0]
	msg.Iovlen = uint64(len(iov))

	token, err := r.RecvMsg(fds[0], msg, 0, func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}

func TestSendMsg(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	require.NoError(t, err)
	defer syscall.Close(fds[0])
	defer syscall.Close(fds[1])

	data := []byte("ping")
	iov := []unix.Iovec{{Base: &data[0]}}
	iov[0].SetLen(len(data))
	msg := &unix.Msghdr{}
	msg.Iov = &iov[0]
	msg.Iovlen = uint64(len(iov))

	token, err := r.SendMsg(fds[0], msg, 0, func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}
