// +build linux

package iouring

import (
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestWritev(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	f, err := ioutil.TempFile("", "example")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	data := []byte("hello")
	iovecs := []unix.Iovec{{Base: &data[0]}}
	iovecs[0].SetLen(len(data))

	var wg sync.WaitGroup
	wg.Add(1)
	token, err := r.Writev(int(f.Fd()), iovecs, 0, func(_ interface{}, result int32) {
		require.Equal(t, int32(len(data)), result)
		wg.Done()
	}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))

	waitWithTimeout(t, &wg, 2*time.Second)
}
