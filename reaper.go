package iouring

import (
	"sync"
	"sync/atomic"

	"github.com/ringcore/iouring/internal/logging"
)

// reaperPool drives the kernel submit/reap loop and dispatches
// completions. Thread 0 is the boss: each cycle it performs the
// submit-and-wait syscall on behalf of the whole pool, then every
// reaper (boss included) crosses a cyclic barrier and cooperatively
// drains the CQ.
type reaperPool struct {
	sqa  *submissionQueueAdapter
	cqa  *completionQueueAdapter
	reg  *pendingRegistry
	pool *operationPool
	disp dispatcher
	obs  Observer
	log  *logging.Logger

	barrier *cyclicBarrier
	n       int

	disposed atomic.Bool
	wg       sync.WaitGroup
}

func newReaperPool(n int, sqa *submissionQueueAdapter, cqa *completionQueueAdapter, reg *pendingRegistry, pool *operationPool, disp dispatcher, obs Observer, log *logging.Logger) *reaperPool {
	if n < 1 {
		n = 1
	}
	return &reaperPool{
		sqa:     sqa,
		cqa:     cqa,
		reg:     reg,
		pool:    pool,
		disp:    disp,
		obs:     obs,
		log:     log,
		barrier: newCyclicBarrier(n),
		n:       n,
	}
}

func (p *reaperPool) start() {
	for i := 0; i < p.n; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
}

func (p *reaperPool) run(id int) {
	defer p.wg.Done()
	log := p.log.WithReaper(id)
	boss := id == 0

	for {
		if boss {
			if p.disposed.Load() {
				p.barrier.Dispose()
				return
			}
			if err := p.synchronize(); err != nil && err != ErrAwaitCompletions {
				log.WithError(err).Msg("synchronize failed")
			}
		}

		if err := p.barrier.Wait(); err != nil {
			return
		}

		if err := p.drain(); err != nil {
			p.barrier.Dispose()
			return
		}
	}
}

// synchronize is the boss-only step: publish staged entries, decide
// whether a parked wait is warranted, and perform the blocking
// io_uring_enter.
func (p *reaperPool) synchronize() error {
	minComplete := uint32(0)
	if p.cqa.empty() {
		minComplete = 1
		p.sqa.markShouldUnblock()
	}
	_, err := p.sqa.submitAndWait(minComplete)
	return err
}

// drain is run by every reaper after the barrier releases. Multiple
// reapers drain the CQ concurrently; the CQA's internal lock serializes
// each individual dequeue. It returns ErrCQOverflow on overflow, which
// stops every reaper.
func (p *reaperPool) drain() error {
	for {
		comp, ok, err := p.cqa.tryRead()
		if err != nil {
			p.obs.ObserveOverflow()
			p.log.Error("completion queue overflow")
			return err
		}
		if !ok {
			return nil
		}

		rec, found := p.reg.remove(comp.entry.UserData)
		if !found {
			continue
		}
		p.obs.ObserveComplete(rec.opcode, 0, comp.entry.Res)
		p.disp.dispatch(rec, comp.entry.Res, p.pool)
	}
}

func (p *reaperPool) dispose() {
	p.disposed.Store(true)
}

func (p *reaperPool) join() {
	p.wg.Wait()
}
