// +build linux

package iouring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeout(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	ts := &KernelTimespec{Sec: 1}
	token, err := r.Timeout(ts, 1, 0, func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}

func TestTimeoutRemove(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	ts := &KernelTimespec{Sec: 5}
	target, err := r.Timeout(ts, 1, 0, func(interface{}, int32) {}, nil)
	require.NoError(t, err)

	token, err := r.TimeoutRemove(target, func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}
