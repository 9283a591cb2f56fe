package iouring

import (
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/pkg/errors"

	"github.com/ringcore/iouring/internal/logging"
	"github.com/ringcore/iouring/internal/sys"
)

// Ring is the public entry point: a concurrent io_uring coordinator
// that multiple producer goroutines can submit operations against,
// with one or more dedicated reaper goroutines dispatching completions
// via callback.
type Ring struct {
	fd int

	sqRing *sys.SQRing
	cqRing *sys.CQRing
	params *sys.Params

	sqa  *submissionQueueAdapter
	cqa  *completionQueueAdapter
	reg  *pendingRegistry
	pool *operationPool
	ub   *unblockHandle
	rp   *reaperPool

	obs Observer
	log *logging.Logger

	singleMmap bool

	closeOnce sync.Once
	closeErr  error
	disposed  atomic.Bool
}

// New constructs a Ring, performing io_uring_setup, mapping the SQ/CQ
// rings, and spawning its reaper pool. Callers must call Close when
// done to release the ring fd and its mappings.
func New(opts ...RingOption) (*Ring, error) {
	cfg := defaultRingConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	params := &sys.Params{}
	if cfg.sqPoll {
		params.Flags |= sys.SetupSQPoll | sys.SetupSQAFF
		params.SqThreadCPU = cfg.sqPollCPU
		params.SqThreadIdle = cfg.sqPollIdleMs
	}
	if cfg.ioPoll {
		params.Flags |= sys.SetupIOPoll
	}

	fd, err := sys.Setup(cfg.entries, params)
	if err != nil {
		return nil, errors.Wrap(err, "new ring")
	}

	sqRing, cqRing, err := sys.MmapRing(fd, params)
	if err != nil {
		syscall.Close(fd)
		return nil, errors.Wrap(err, "new ring")
	}

	r := &Ring{
		fd:         fd,
		sqRing:     sqRing,
		cqRing:     cqRing,
		params:     params,
		obs:        cfg.observer,
		log:        cfg.logger.WithRing(fd),
		singleMmap: params.Features&sys.FeatSingleMmap != 0,
	}

	r.reg = newPendingRegistry()
	r.pool = newOperationPool()

	r.ub, err = newUnblockHandle()
	if err != nil {
		sys.Unmap(sqRing, cqRing, r.singleMmap)
		syscall.Close(fd)
		return nil, err
	}

	r.sqa = newSubmissionQueueAdapter(fd, sqRing, params, r.reg, r.ub)
	r.cqa = newCompletionQueueAdapter(fd, cqRing, params.Flags&sys.SetupIOPoll != 0)

	r.ub.arm(r.sqa, r.pool)

	var disp dispatcher
	if cfg.asyncDispatch {
		disp = newAsyncDispatcher(cfg.dispatchSize)
	} else {
		disp = inlineDispatcher{}
	}

	r.rp = newReaperPool(cfg.reaperCount, r.sqa, r.cqa, r.reg, r.pool, disp, r.obs, r.log)
	r.rp.start()

	return r, nil
}

// stage is the shared entry point every per-opcode encoder calls. It
// returns the completion token on success, and ErrQueueFull when the
// SQ has no room.
func (r *Ring) stage(entry sys.SubmitEntry, cb Callback, state interface{}) (uint64, error) {
	if r.disposed.Load() {
		return 0, ErrDisposed
	}
	rec := r.pool.Get()
	rec.callback = cb
	rec.state = state
	rec.opcode = entry.Opcode

	token, ok := r.sqa.stageOne(&entry, rec)
	if !ok {
		r.pool.Put(rec)
		r.obs.ObserveQueueFull()
		return 0, ErrQueueFull
	}
	r.obs.ObserveSubmit(entry.Opcode)
	return token, nil
}

// stageBatch stages a group of pre-encoded entries atomically, used by
// linked-chain submission helpers.
func (r *Ring) stageBatch(entries []sys.SubmitEntry, cbs []Callback, states []interface{}) ([]uint64, error) {
	if r.disposed.Load() {
		return nil, ErrDisposed
	}
	recs := make([]*operationRecord, len(entries))
	for i := range entries {
		rec := r.pool.Get()
		rec.callback = cbs[i]
		rec.state = states[i]
		rec.opcode = entries[i].Opcode
		recs[i] = rec
	}

	tokens, ok := r.sqa.stageMany(entries, recs)
	if !ok {
		for _, rec := range recs {
			r.pool.Put(rec)
		}
		r.obs.ObserveQueueFull()
		return nil, ErrQueueFull
	}
	for _, e := range entries {
		r.obs.ObserveSubmit(e.Opcode)
	}
	return tokens, nil
}

// SubmissionQueueSize returns the total number of SQ slots.
func (r *Ring) SubmissionQueueSize() uint32 {
	return atomic.LoadUint32(r.sqRing.Entries)
}

// CompletionQueueSize returns the total number of CQ slots.
func (r *Ring) CompletionQueueSize() uint32 {
	return atomic.LoadUint32(r.cqRing.Entries)
}

// SubmissionEntriesUsed returns the SQA's current view of in-flight
// staged entries.
func (r *Ring) SubmissionEntriesUsed() uint32 {
	return r.sqa.entriesUsed()
}

// SubmissionEntriesAvailable returns free SQ capacity.
func (r *Ring) SubmissionEntriesAvailable() uint32 {
	return r.sqa.entriesAvailable()
}

// SingleMmap reports whether the kernel aliased the SQ and CQ mappings
// (IORING_FEAT_SINGLE_MMAP).
func (r *Ring) SingleMmap() bool { return r.singleMmap }

// NoDrop reports IORING_FEAT_NODROP.
func (r *Ring) NoDrop() bool { return r.params.Features&sys.FeatNoDrop != 0 }

// SubmitStable reports IORING_FEAT_SUBMIT_STABLE.
func (r *Ring) SubmitStable() bool { return r.params.Features&sys.FeatSubmitStable != 0 }

// Close disposes the ring: it marks the ring disposed, wakes any
// parked boss reaper, tears down the cyclic barrier, joins every
// reaper goroutine, closes the ring fd, and unmaps the SQ/CQ/SQE
// regions, in that mandatory order.
func (r *Ring) Close() error {
	r.closeOnce.Do(func() {
		r.disposed.Store(true)
		r.rp.dispose()
		if err := r.ub.signal(); err != nil {
			r.closeErr = err
		}
		r.rp.join()
		if err := r.ub.dispose(); err != nil && r.closeErr == nil {
			r.closeErr = err
		}
		if err := syscall.Close(r.fd); err != nil && r.closeErr == nil {
			r.closeErr = errors.Wrap(err, "close ring fd")
		}
		if err := sys.Unmap(r.sqRing, r.cqRing, r.singleMmap); err != nil && r.closeErr == nil {
			r.closeErr = err
		}
	})
	return r.closeErr
}
