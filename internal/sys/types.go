// +build linux

package sys

// Params mirrors struct io_uring_params.
type Params struct {
	SqEntries    uint32
	CqEntries    uint32
	Flags        uint32
	SqThreadCPU  uint32
	SqThreadIdle uint32
	Features     uint32
	WqFd         uint32
	Resv         [3]uint32
	SqOffset     SQRingOffset
	CqOffset     CQRingOffset
}

// SQRingOffset mirrors struct io_sqring_offsets.
type SQRingOffset struct {
	Head        uint32
	Tail        uint32
	RingMask    uint32
	RingEntries uint32
	Flags       uint32
	Dropped     uint32
	Array       uint32
	Resv1       uint32
	Resv2       uint64
}

// CQRingOffset mirrors struct io_cqring_offsets.
type CQRingOffset struct {
	Head        uint32
	Tail        uint32
	RingMask    uint32
	RingEntries uint32
	Overflow    uint32
	Cqes        uint32
	Resv        [2]uint64
}

// SubmitEntry is the 64-byte wire layout of a submission queue entry.
// Its fields are filled in by the per-opcode encoders in the root
// package and copied byte-for-byte into the mmap'd SQE slot array; this
// type never itself touches the kernel.
type SubmitEntry struct {
	Opcode   Opcode
	Flags    uint8
	Ioprio   uint16
	Fd       int32
	Off      uint64
	Addr     uint64
	Len      uint32
	UFlags   uint32
	UserData uint64
	BufIndex uint16
	_        [22]byte
}

// Reset zeroes a SubmitEntry in place so it can be restaged for a new op.
func (e *SubmitEntry) Reset() {
	*e = SubmitEntry{}
}

// CompletionEntry is the wire layout of a completion queue entry.
type CompletionEntry struct {
	UserData uint64
	Res      int32
	Flags    uint32
}

// KernelTimespec mirrors struct __kernel_timespec.
type KernelTimespec struct {
	Sec  int64
	Nsec int64
}
