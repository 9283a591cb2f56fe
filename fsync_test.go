// +build linux

package iouring

import (
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFsync(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	f, err := ioutil.TempFile("", "fsync")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	var wg sync.WaitGroup
	wg.Add(1)
	_, err = r.Fsync(int(f.Fd()), 0, func(_ interface{}, result int32) {
		require.Equal(t, int32(0), result)
		wg.Done()
	}, nil)
	require.NoError(t, err)

	waitWithTimeout(t, &wg, 2*time.Second)
}
