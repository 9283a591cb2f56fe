package iouring

import "sync/atomic"

// Observer receives lifecycle events from a Ring: submit and queue-full
// events from the producer's submit call, completion and overflow events
// from the reapers. Implementations must not block; they run on the hot
// path.
type Observer interface {
	ObserveSubmit(op Opcode)
	ObserveComplete(op Opcode, latencyNs int64, result int32)
	ObserveQueueFull()
	ObserveOverflow()
}

// NoopObserver discards every event. It is the default Observer for a Ring
// that was not given a WithObserver option.
type NoopObserver struct{}

func (NoopObserver) ObserveSubmit(Opcode)                 {}
func (NoopObserver) ObserveComplete(Opcode, int64, int32) {}
func (NoopObserver) ObserveQueueFull()                    {}
func (NoopObserver) ObserveOverflow()                     {}

// CountingObserver accumulates simple counters with atomics so it can be
// shared across reaper goroutines without a lock.
type CountingObserver struct {
	Submitted  atomic.Int64
	Completed  atomic.Int64
	Errors     atomic.Int64
	QueueFulls atomic.Int64
	Overflows  atomic.Int64
}

func NewCountingObserver() *CountingObserver {
	return &CountingObserver{}
}

func (c *CountingObserver) ObserveSubmit(Opcode) {
	c.Submitted.Add(1)
}

func (c *CountingObserver) ObserveComplete(_ Opcode, _ int64, result int32) {
	c.Completed.Add(1)
	if result < 0 {
		c.Errors.Add(1)
	}
}

func (c *CountingObserver) ObserveQueueFull() {
	c.QueueFulls.Add(1)
}

func (c *CountingObserver) ObserveOverflow() {
	c.Overflows.Add(1)
}
