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

func TestStatx(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	path, err := os.Getwd()
	require.NoError(t, err)

	f, err := ioutil.TempFile(path, "statx")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.Write([]byte("test"))
	require.NoError(t, err)

	d, err := os.Open(path)
	require.NoError(t, err)
	defer d.Close()

	var x1, x2 unix.Statx_t
	var wg sync.WaitGroup
	wg.Add(1)
	_, err = r.Statx(int(d.Fd()), path, 0, unix.STATX_ALL, &x1, func(_ interface{}, result int32) {
		require.Equal(t, int32(0), result)
		wg.Done()
	}, nil)
	require.NoError(t, err)

	waitWithTimeout(t, &wg, 2*time.Second)

	require.NoError(t, unix.Statx(int(d.Fd()), path, 0, unix.STATX_ALL, &x2))
	require.Equal(t, x2.Mode, x1.Mode)
}
