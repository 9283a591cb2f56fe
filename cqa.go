package iouring

import (
	"sync"
	"sync/atomic"

	"github.com/ringcore/iouring/internal/sys"
)

// completion is a dequeued CQE. It carries no timestamp, so the reapers
// report a latency of 0 to the Observer.
type completion struct {
	entry sys.CompletionEntry
}

// completionQueueAdapter wraps the mmap'd CQ ring. Exactly one head
// increment happens per completion observed; overflow is terminal,
// since the registry may have lost entries whose callbacks will never
// fire.
type completionQueueAdapter struct {
	mu sync.Mutex

	fd       int
	cq       *sys.CQRing
	mask     uint32
	ioPolled bool
}

func newCompletionQueueAdapter(fd int, cq *sys.CQRing, ioPolled bool) *completionQueueAdapter {
	return &completionQueueAdapter{
		fd:       fd,
		cq:       cq,
		mask:     atomic.LoadUint32(cq.Mask),
		ioPolled: ioPolled,
	}
}

// empty reports whether the CQ currently has no completions waiting.
// It is a plain snapshot, not a guarantee that stays true.
func (c *completionQueueAdapter) empty() bool {
	return atomic.LoadUint32(c.cq.Head) == atomic.LoadUint32(c.cq.Tail)
}

// tryRead dequeues at most one completion without blocking. ok is false
// when the CQ is empty; err is non-nil only on overflow.
func (c *completionQueueAdapter) tryRead() (completion, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	head := atomic.LoadUint32(c.cq.Head)
	tail := atomic.LoadUint32(c.cq.Tail)
	if head == tail && c.ioPolled {
		sys.Enter(c.fd, 0, 0, sys.EnterGetevents, nil)
		tail = atomic.LoadUint32(c.cq.Tail)
	}
	if head == tail {
		return completion{}, false, nil
	}

	if atomic.LoadUint32(c.cq.Overflow) != 0 {
		return completion{}, false, ErrCQOverflow
	}

	entry := c.cq.Cqes[head&c.mask]
	atomic.StoreUint32(c.cq.Head, head+1)
	return completion{entry: entry}, true, nil
}

// read blocks until a completion is available, calling io_uring_enter
// between misses so the kernel has a chance to produce one.
func (c *completionQueueAdapter) read() (completion, error) {
	for {
		comp, ok, err := c.tryRead()
		if err != nil {
			return completion{}, err
		}
		if ok {
			return comp, nil
		}
		if _, err := sys.Enter(c.fd, 0, 1, sys.EnterGetevents, nil); err != nil {
			return completion{}, wrapErrno("io_uring_enter", err)
		}
	}
}
