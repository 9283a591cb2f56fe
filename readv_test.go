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

func TestReadv(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	data := []byte("testing...1,2,3")
	f, err := ioutil.TempFile("", "example")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.Write(data)
	require.NoError(t, err)

	buf := make([]byte, len(data))
	iovecs := []unix.Iovec{{Base: &buf[0]}}
	iovecs[0].SetLen(len(buf))

	var wg sync.WaitGroup
	wg.Add(1)
	token, err := r.Readv(int(f.Fd()), iovecs, 0, func(_ interface{}, result int32) {
		require.Equal(t, int32(len(data)), result)
		wg.Done()
	}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))

	waitWithTimeout(t, &wg, 2*time.Second)
	require.Equal(t, data, buf)
}
