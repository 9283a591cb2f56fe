// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// StageLinked submits a pre-built batch of SQEs as a single atomic
// group: either every entry fits in the SQ or none are staged, which
// is required to keep a linked chain (entries with SqeIOLink set on
// all but the last) from being split across a queue-full boundary.
//
// Callers build entries directly, e.g. a linked NOP pair:
//
//	first := SubmitEntry{Opcode: Nop, Fd: -1, Flags: SqeIOLink}
//	second := SubmitEntry{Opcode: Nop, Fd: -1}
//	r.StageLinked([]SubmitEntry{first, second}, []Callback{cb1, cb2}, []interface{}{nil, nil})
func (r *Ring) StageLinked(entries []sys.SubmitEntry, cbs []Callback, states []interface{}) ([]uint64, error) {
	return r.stageBatch(entries, cbs, states)
}
