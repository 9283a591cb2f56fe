package iouring

import "sync"

// pendingRegistry is a concurrent mapping from user-data token to
// operationRecord, looked up on completion. It replaces the teacher's
// linear-scan CompletionQueue.EntryBy with an O(1), concurrency-safe
// lookup.
//
// Invariants: keys are unique while live; every key corresponds to an
// SQE that has been staged but not yet observed as a completion; a key
// is removed by exactly one reaper when its CQE is dequeued.
type pendingRegistry struct {
	m sync.Map // uint64 -> *operationRecord
}

func newPendingRegistry() *pendingRegistry {
	return &pendingRegistry{}
}

func (r *pendingRegistry) insert(token uint64, rec *operationRecord) {
	r.m.Store(token, rec)
}

// remove looks up and deletes token in one step so exactly one reaper
// observes a given completion's record.
func (r *pendingRegistry) remove(token uint64) (*operationRecord, bool) {
	v, ok := r.m.LoadAndDelete(token)
	if !ok {
		return nil, false
	}
	return v.(*operationRecord), true
}

// len is approximate; it exists for diagnostics and tests, not for the
// hot path.
func (r *pendingRegistry) len() int {
	n := 0
	r.m.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
