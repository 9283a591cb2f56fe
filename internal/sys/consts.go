// +build linux

// Package sys contains the raw io_uring syscall and mmap plumbing: the
// "external collaborator" layer the core ring coordinator builds on top
// of. Nothing in this package understands callbacks, registries, or
// reaper scheduling; it only knows how to talk to the kernel.
package sys

// Opcode is an io_uring submission opcode.
type Opcode uint8

const (
	SetupSyscall    = 425
	EnterSyscall    = 426
	RegisterSyscall = 427
)

const (
	Nop Opcode = iota
	Readv
	Writev
	Fsync
	ReadFixed
	WriteFixed
	PollAdd
	PollRemove
	SyncFileRange
	SendMsg
	RecvMsg
	Timeout
	TimeoutRemove
	Accept
	AsyncCancel
	LinkTimeout
	Connect
	Fallocate
	Openat
	Close
	FilesUpdate
	Statx
	Read
	Write
	Fadvise
	Madvise
	Send
	Recv
	Openat2
	EpollCtl
)

const (
	// SqeFixedFile uses the fixed fileset registered with the ring.
	SqeFixedFile uint8 = 1 << 0
	// SqeIODrain issues this SQE only after all prior SQEs have completed.
	SqeIODrain uint8 = 1 << 1
	// SqeIOLink chains this SQE's completion ordering to the next SQE.
	SqeIOLink uint8 = 1 << 2
	// SqeIOHardlink is like SqeIOLink but does not sever the chain on error.
	SqeIOHardlink uint8 = 1 << 3
	// SqeAsync forces async execution of this SQE.
	SqeAsync uint8 = 1 << 4

	// SetupIOPoll configures the io_context to be polled.
	SetupIOPoll uint32 = 1 << 0
	// SetupSQPoll configures a kernel-side SQ poll thread.
	SetupSQPoll uint32 = 1 << 1
	// SetupSQAFF pins the SQ poll thread to SqThreadCPU.
	SetupSQAFF uint32 = 1 << 2

	// FeatSingleMmap indicates the SQ and CQ rings share one mmap.
	FeatSingleMmap uint32 = 1 << 0
	// FeatNoDrop indicates the kernel will not drop CQEs on overflow.
	FeatNoDrop uint32 = 1 << 1
	// FeatSubmitStable indicates SQE data is consumed by the time enter returns.
	FeatSubmitStable uint32 = 1 << 2

	// FsyncDatasync requests an fdatasync-equivalent flush.
	FsyncDatasync uint32 = 1 << 0

	// TimeoutAbs interprets the timespec as absolute rather than relative.
	TimeoutAbs uint32 = 1 << 0

	// SqRingOffset is the mmap offset of the submission queue ring.
	SqRingOffset uint64 = 0
	// CqRingOffset is the mmap offset of the completion queue ring.
	CqRingOffset uint64 = 0x8000000
	// SqeOffset is the mmap offset of the submission queue entry array.
	SqeOffset uint64 = 0x10000000

	// SqNeedWakeup signals that the SQ poll thread is sleeping and needs
	// an io_uring_enter wakeup to notice newly staged entries.
	SqNeedWakeup uint32 = 1 << 0
	// SqCQOverflow signals the CQ ring has overflowed.
	SqCQOverflow uint32 = 1 << 1

	// EnterGetevents asks enter to also reap completions.
	EnterGetevents uint32 = 1 << 0
	// EnterSQWakeup wakes a sleeping SQ poll thread.
	EnterSQWakeup uint32 = 1 << 1

	// Register opcodes passed as the second argument to io_uring_register.
	RegOpRegisterBuffers    = 0
	RegOpUnregisterBuffers  = 1
	RegOpRegisterFiles      = 2
	RegOpUnregisterFiles    = 3
	RegOpRegisterEventFd    = 4
	RegOpUnregisterEventFd  = 5
	RegOpRegisterEventFdAsync = 7
)
