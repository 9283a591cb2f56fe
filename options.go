package iouring

import (
	"github.com/pkg/errors"

	"github.com/ringcore/iouring/internal/logging"
	"github.com/ringcore/iouring/internal/sys"
)

// ringConfig collects everything the functional options can set before
// Setup is called. It is validated by New.
type ringConfig struct {
	entries       uint32
	reaperCount   int
	asyncDispatch bool
	dispatchSize  int
	sqPollCPU     uint32
	sqPollIdleMs  uint32
	sqPoll        bool
	ioPoll        bool
	logger        *logging.Logger
	observer      Observer
}

func defaultRingConfig() *ringConfig {
	return &ringConfig{
		entries:     256,
		reaperCount: 1,
		logger:      logging.Noop(),
		observer:    NoopObserver{},
	}
}

// RingOption configures a Ring at construction time.
type RingOption func(*ringConfig) error

// WithEntries sets the SQ size. It must be a power of two between 1 and
// 32768 inclusive; the CQ is sized by the kernel (usually 2x).
func WithEntries(entries uint32) RingOption {
	return func(c *ringConfig) error {
		if entries == 0 || entries > 32768 || entries&(entries-1) != 0 {
			return sys.ErrInvalidEntries
		}
		c.entries = entries
		return nil
	}
}

// WithReaperCount sets the number of reaper goroutines, N >= 1. Thread
// 0 of the pool is always the boss.
func WithReaperCount(n int) RingOption {
	return func(c *ringConfig) error {
		if n < 1 {
			return errors.New("reaper count must be >= 1")
		}
		c.reaperCount = n
		return nil
	}
}

// WithAsyncDispatch switches completion callbacks from running inline
// on a reaper goroutine to running on a background worker pool.
func WithAsyncDispatch() RingOption {
	return func(c *ringConfig) error {
		c.asyncDispatch = true
		return nil
	}
}

// WithDispatchPoolSize bounds the worker pool used by async dispatch.
// It implies WithAsyncDispatch.
func WithDispatchPoolSize(size int) RingOption {
	return func(c *ringConfig) error {
		if size < 1 {
			return errors.New("dispatch pool size must be >= 1")
		}
		c.asyncDispatch = true
		c.dispatchSize = size
		return nil
	}
}

// WithSQPoll enables kernel-side SQ polling, pinning the poll thread to
// cpu and letting it idle for idleMs before sleeping.
func WithSQPoll(cpu uint32, idleMs uint32) RingOption {
	return func(c *ringConfig) error {
		c.sqPoll = true
		c.sqPollCPU = cpu
		c.sqPollIdleMs = idleMs
		return nil
	}
}

// WithIOPoll enables polled I/O completion (IORING_SETUP_IOPOLL).
func WithIOPoll() RingOption {
	return func(c *ringConfig) error {
		c.ioPoll = true
		return nil
	}
}

// WithLogger installs a structured logger. The default is a no-op.
func WithLogger(l *logging.Logger) RingOption {
	return func(c *ringConfig) error {
		c.logger = l
		return nil
	}
}

// WithObserver installs a metrics Observer. The default discards
// everything.
func WithObserver(o Observer) RingOption {
	return func(c *ringConfig) error {
		c.observer = o
		return nil
	}
}
