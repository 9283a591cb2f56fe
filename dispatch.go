package iouring

import (
	"context"

	"github.com/bytedance/gopkg/util/gopool"
)

// dispatcher delivers a completed operationRecord's callback and
// returns the record to the pool afterward. Exactly one of the two
// implementations owns a given record between dequeue and return;
// neither path double-returns it.
type dispatcher interface {
	dispatch(rec *operationRecord, result int32, pool *operationPool)
}

// inlineDispatcher calls the callback directly on the reaper goroutine.
// Callbacks that block or panic impair reaper throughput; that is the
// caller's responsibility, not this package's.
type inlineDispatcher struct{}

func (inlineDispatcher) dispatch(rec *operationRecord, result int32, pool *operationPool) {
	if rec.callback != nil {
		rec.callback(rec.state, result)
	}
	pool.Put(rec)
}

// asyncDispatcher stashes the result and hands the callback to
// bytedance/gopkg's gopool, grounded on cloudwego/netpoll's selection
// of that package as its default goroutine-pool backend for exactly
// this kind of off-reaper continuation.
type asyncDispatcher struct{}

func newAsyncDispatcher(size int) *asyncDispatcher {
	if size > 0 {
		gopool.SetCap(int32(size))
	}
	return &asyncDispatcher{}
}

func (d *asyncDispatcher) dispatch(rec *operationRecord, result int32, pool *operationPool) {
	if rec.callback == nil {
		pool.Put(rec)
		return
	}
	gopool.CtxGo(context.Background(), func() {
		rec.callback(rec.state, result)
		pool.Put(rec)
	})
}
