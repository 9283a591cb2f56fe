// +build linux

package iouring

import (
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPollAdd(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	pipeFds := make([]int, 2)
	require.NoError(t, unix.Pipe(pipeFds))
	defer syscall.Close(pipeFds[0])
	defer syscall.Close(pipeFds[1])

	var wg sync.WaitGroup
	wg.Add(1)
	token, err := r.PollAdd(pipeFds[0], unix.POLLIN, func(_ interface{}, result int32) {
		require.True(t, result >= 0)
		wg.Done()
	}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))

	_, err = syscall.Write(pipeFds[1], []byte("foo"))
	require.NoError(t, err)

	waitWithTimeout(t, &wg, 2*time.Second)
}

func TestPollRemove(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	pipeFds := make([]int, 2)
	require.NoError(t, unix.Pipe(pipeFds))
	defer syscall.Close(pipeFds[0])
	defer syscall.Close(pipeFds[1])

	token, err := r.PollAdd(pipeFds[0], unix.POLLIN, func(interface{}, int32) {}, nil)
	require.NoError(t, err)

	removeToken, err := r.PollRemove(token, func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, removeToken > uint64(0))
}
