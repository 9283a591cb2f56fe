// +build linux

package iouring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New(WithEntries(8))
	require.NoError(t, err)
	require.NotNil(t, r)
	defer r.Close()

	require.Equal(t, uint32(8), r.SubmissionQueueSize())
	require.NotZero(t, r.CompletionQueueSize())
}

func TestNewInvalidEntries(t *testing.T) {
	_, err := New(WithEntries(3))
	require.Error(t, err)
}

// Smoke (size=8, threads=1, inline): 6 NOPs, each decrementing a
// countdown; the ring must drain within 2s.
func TestSmokeInline(t *testing.T) {
	r, err := New(WithEntries(8))
	require.NoError(t, err)
	defer r.Close()

	var wg sync.WaitGroup
	wg.Add(6)
	for i := 0; i < 6; i++ {
		_, err := r.Nop(func(_ interface{}, result int32) {
			require.Equal(t, int32(0), result)
			wg.Done()
		}, nil)
		require.NoError(t, err)
	}

	waitWithTimeout(t, &wg, 2*time.Second)
}

// Smoke (size=8, threads=4, async): same as above with 4 reapers and
// asynchronous dispatch.
func TestSmokeAsync(t *testing.T) {
	r, err := New(WithEntries(8), WithReaperCount(4), WithAsyncDispatch())
	require.NoError(t, err)
	defer r.Close()

	var wg sync.WaitGroup
	wg.Add(6)
	for i := 0; i < 6; i++ {
		_, err := r.Nop(func(_ interface{}, result int32) {
			require.Equal(t, int32(0), result)
			wg.Done()
		}, nil)
		require.NoError(t, err)
	}

	waitWithTimeout(t, &wg, 2*time.Second)
}

// Large (size=16384, threads=4, async): 16382 NOPs must all complete
// and dispose must terminate within 2s.
func TestLargeNopRun(t *testing.T) {
	r, err := New(WithEntries(16384), WithReaperCount(4), WithAsyncDispatch())
	require.NoError(t, err)

	const n = 16382
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		_, err := r.Nop(func(_ interface{}, result int32) {
			require.Equal(t, int32(0), result)
			wg.Done()
		}, nil)
		require.NoError(t, err)
	}

	waitWithTimeout(t, &wg, 2*time.Second)

	done := make(chan struct{})
	go func() {
		r.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispose did not terminate in time")
	}
}

// Linked pairs (size=8): 3 pairs of {Nop(Link), Nop()}; all 6
// callbacks must fire with result == 0.
func TestLinkedPairs(t *testing.T) {
	r, err := New(WithEntries(8))
	require.NoError(t, err)
	defer r.Close()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(2)
		cb := func(_ interface{}, result int32) {
			require.Equal(t, int32(0), result)
			wg.Done()
		}
		first := SubmitEntry{Opcode: Nop, Fd: -1, Flags: SqeIOLink}
		second := SubmitEntry{Opcode: Nop, Fd: -1}
		tokens, err := r.StageLinked(
			[]SubmitEntry{first, second},
			[]Callback{cb, cb},
			[]interface{}{nil, nil},
		)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
	}

	waitWithTimeout(t, &wg, 2*time.Second)
}

// Queue-full: with size=8, staging 8 NOPs then waiting for them to
// drain frees a slot for the next submit.
func TestQueueFull(t *testing.T) {
	r, err := New(WithEntries(8))
	require.NoError(t, err)
	defer r.Close()

	var wg sync.WaitGroup
	wg.Add(8)
	for i := 0; i < 8; i++ {
		_, err := r.Nop(func(_ interface{}, _ int32) { wg.Done() }, nil)
		require.NoError(t, err)
	}

	waitWithTimeout(t, &wg, 2*time.Second)

	_, err = r.Nop(func(_ interface{}, _ int32) {}, nil)
	require.NoError(t, err)
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for completions")
	}
}
