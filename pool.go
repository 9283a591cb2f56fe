package iouring

import "sync"

// Callback is invoked exactly once per submitted operation, with the
// kernel's raw completion result: non-negative on success, a negated
// errno on failure.
type Callback func(state interface{}, result int32)

// operationRecord is held exclusively by at most one of {the registry,
// the dispatch path, the pool} at any moment. It never owns payload
// buffers; those are the caller's responsibility.
type operationRecord struct {
	callback     Callback
	state        interface{}
	cachedResult int32
	opcode       Opcode
	stagedAt     int64
}

// operationPool is a freelist of reusable operationRecords, grounded on
// the ring's original sync.Pool-backed SQE scratch pool, generalized to
// hand out fully-formed records rather than bare SQEs.
type operationPool struct {
	pool sync.Pool
}

func newOperationPool() *operationPool {
	return &operationPool{
		pool: sync.Pool{
			New: func() interface{} { return &operationRecord{} },
		},
	}
}

func (p *operationPool) Get() *operationRecord {
	rec := p.pool.Get().(*operationRecord)
	return rec
}

func (p *operationPool) Put(rec *operationRecord) {
	rec.callback = nil
	rec.state = nil
	rec.cachedResult = 0
	rec.opcode = 0
	rec.stagedAt = 0
	p.pool.Put(rec)
}
