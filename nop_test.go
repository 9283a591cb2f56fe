// +build linux

package iouring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	r, err := New(WithEntries(2048))
	require.NoError(t, err)
	defer r.Close()

	token, err := r.Nop(func(interface{}, int32) {}, nil)
	require.NoError(t, err)
	require.True(t, token > uint64(0))
}

func BenchmarkNop(b *testing.B) {
	r, err := New(WithEntries(2048))
	require.NoError(b, err)
	defer r.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Nop(func(interface{}, int32) {}, nil); err != nil {
			b.Fatal(err)
		}
	}
}
