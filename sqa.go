package iouring

import (
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/ringcore/iouring/internal/sys"
)

// submissionQueueAdapter wraps the mmap'd SQ ring and offers two-phase
// submission: entries are staged behind an internal tail, then notify
// publishes them by advancing the kernel-visible tail.
//
// All mutating operations serialize on mu; it is the adapter's monitor.
// Producers acquire it on the hot path anyway, so non-blocking readers
// of in-flight counts take it too rather than adding a second lock.
type submissionQueueAdapter struct {
	mu sync.Mutex

	fd       int
	sq       *sys.SQRing
	entries  uint32
	mask     uint32
	sqPolled bool
	ioPolled bool

	tailInternal uint32
	headInternal uint32

	registry *pendingRegistry
	unblock  *unblockHandle

	shouldUnblock bool
}

func newSubmissionQueueAdapter(fd int, sq *sys.SQRing, p *sys.Params, registry *pendingRegistry, unblock *unblockHandle) *submissionQueueAdapter {
	return &submissionQueueAdapter{
		fd:       fd,
		sq:       sq,
		entries:  atomic.LoadUint32(sq.Entries),
		mask:     atomic.LoadUint32(sq.Mask),
		sqPolled: p.Flags&sys.SetupSQPoll != 0,
		ioPolled: p.Flags&sys.SetupIOPoll != 0,
		registry: registry,
		unblock:  unblock,
	}
}

// effectiveHead returns the head the adapter should compare tailInternal
// against: the kernel-visible head when SQ polling is enabled (the
// kernel owns visibility), otherwise the locally tracked headInternal.
func (s *submissionQueueAdapter) effectiveHead() uint32 {
	if s.sqPolled {
		return atomic.LoadUint32(s.sq.Head)
	}
	return s.headInternal
}

// stageOne copies entry into the next free SQE slot and registers rec
// under the token it assigns. It returns the token and true, or 0 and
// false if the queue has no room; on false, nothing was mutated.
func (s *submissionQueueAdapter) stageOne(entry *sys.SubmitEntry, rec *operationRecord) (uint64, bool) {
	s.mu.Lock()

	next := s.tailInternal + 1
	if next-s.effectiveHead() > s.entries {
		s.mu.Unlock()
		return 0, false
	}

	token := (uint64(uint32(entry.Fd)) << 32) | uint64(s.tailInternal)
	entry.UserData = token
	s.sq.Sqes[s.tailInternal&s.mask] = *entry
	s.registry.insert(token, rec)
	s.tailInternal = next

	unblock := s.shouldUnblock
	s.shouldUnblock = false
	s.mu.Unlock()

	if unblock {
		s.unblock.signal()
	}
	return token, true
}

// stageMany stages a batch atomically: either every entry fits, or none
// are staged. This is required to keep linked chains from being split
// across a queue-full boundary.
func (s *submissionQueueAdapter) stageMany(batch []sys.SubmitEntry, recs []*operationRecord) ([]uint64, bool) {
	s.mu.Lock()

	next := s.tailInternal + uint32(len(batch))
	if next-s.effectiveHead() > s.entries {
		s.mu.Unlock()
		return nil, false
	}

	tokens := make([]uint64, len(batch))
	for i := range batch {
		entry := &batch[i]
		token := (uint64(uint32(entry.Fd)) << 32) | uint64(s.tailInternal)
		entry.UserData = token
		s.sq.Sqes[s.tailInternal&s.mask] = *entry
		s.registry.insert(token, recs[i])
		tokens[i] = token
		s.tailInternal++
	}

	unblock := s.shouldUnblock
	s.shouldUnblock = false
	s.mu.Unlock()

	if unblock {
		s.unblock.signal()
	}
	return tokens, true
}

// notify drains staged-but-unpublished entries into the kernel-visible
// array and returns the kernel's current view of in-flight entries
// (tail - head).
func (s *submissionQueueAdapter) notify() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.headInternal != s.tailInternal {
		tail := atomic.LoadUint32(s.sq.Tail)
		s.sq.Array[tail&s.mask] = s.headInternal & s.mask
		atomic.StoreUint32(s.sq.Tail, tail+1)
		s.headInternal++
	}
	return atomic.LoadUint32(s.sq.Tail) - atomic.LoadUint32(s.sq.Head)
}

// markShouldUnblock arms the producer-side wake mechanism: the next
// producer to stage an entry will signal the unblock handle after
// publishing it, rather than the boss doing so itself while possibly
// still holding this lock.
func (s *submissionQueueAdapter) markShouldUnblock() {
	s.mu.Lock()
	s.shouldUnblock = true
	s.mu.Unlock()
}

// shouldEnter reports whether submitAndWait needs to call io_uring_enter
// at all, and with which additional flags.
func (s *submissionQueueAdapter) shouldEnter() (bool, uint32) {
	if !s.sqPolled {
		return true, 0
	}
	if atomic.LoadUint32(s.sq.Flags)&sys.SqNeedWakeup != 0 {
		return true, sys.EnterSQWakeup
	}
	return false, 0
}

// entriesUsed and entriesAvailable report the SQA's view of occupancy
// for diagnostics; they take the lock like everything else here.
func (s *submissionQueueAdapter) entriesUsed() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tailInternal - s.effectiveHead()
}

func (s *submissionQueueAdapter) entriesAvailable() uint32 {
	return s.entries - s.entriesUsed()
}

// submitAndWait publishes staged entries and, if needed, blocks in
// io_uring_enter for minComplete completions. It retries EINTR in place
// and converts EAGAIN/EBUSY into ErrAwaitCompletions.
func (s *submissionQueueAdapter) submitAndWait(minComplete uint32) (int, error) {
	toSubmit := s.notify()

	enter, flags := s.shouldEnter()
	if minComplete > 0 {
		flags |= sys.EnterGetevents
		enter = true
	}
	if !enter {
		return 0, nil
	}

	for {
		n, err := sys.Enter(s.fd, toSubmit, minComplete, flags, nil)
		if err == nil {
			return n, nil
		}
		if err == syscall.EINTR {
			continue
		}
		if err == syscall.EAGAIN || err == syscall.EBUSY {
			return 0, ErrAwaitCompletions
		}
		return 0, wrapErrno("io_uring_enter", err)
	}
}
