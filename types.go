package iouring

import "github.com/ringcore/iouring/internal/sys"

// Opcode identifies an io_uring submission opcode. Re-exported from
// internal/sys so call sites never need to import the syscall layer
// directly.
type Opcode = sys.Opcode

const (
	Nop           = sys.Nop
	Readv         = sys.Readv
	Writev        = sys.Writev
	Fsync         = sys.Fsync
	ReadFixed     = sys.ReadFixed
	WriteFixed    = sys.WriteFixed
	PollAdd       = sys.PollAdd
	PollRemove    = sys.PollRemove
	SyncFileRange = sys.SyncFileRange
	SendMsg       = sys.SendMsg
	RecvMsg       = sys.RecvMsg
	Timeout       = sys.Timeout
	TimeoutRemove = sys.TimeoutRemove
	Accept        = sys.Accept
	AsyncCancel   = sys.AsyncCancel
	LinkTimeout   = sys.LinkTimeout
	Connect       = sys.Connect
	Fallocate     = sys.Fallocate
	Openat        = sys.Openat
	Close         = sys.Close
	FilesUpdate   = sys.FilesUpdate
	Statx         = sys.Statx
	Read          = sys.Read
	Write         = sys.Write
	Fadvise       = sys.Fadvise
	Madvise       = sys.Madvise
	Send          = sys.Send
	Recv          = sys.Recv
	Openat2       = sys.Openat2
	EpollCtl      = sys.EpollCtl
)

// SqeFlags control per-submission chaining and draining behavior. They
// flow from the encoder unchanged into the kernel's SQE flags byte.
type SqeFlags = uint8

const (
	SqeFixedFile  = sys.SqeFixedFile
	SqeIODrain    = sys.SqeIODrain
	SqeIOLink     = sys.SqeIOLink
	SqeIOHardlink = sys.SqeIOHardlink
	SqeAsync      = sys.SqeAsync
)

// KernelTimespec mirrors struct __kernel_timespec, used by TIMEOUT and
// LINK_TIMEOUT encoders.
type KernelTimespec = sys.KernelTimespec

const (
	SetupIOPoll = sys.SetupIOPoll
	SetupSQPoll = sys.SetupSQPoll
	SetupSQAFF  = sys.SetupSQAFF

	FeatSingleMmap   = sys.FeatSingleMmap
	FeatNoDrop       = sys.FeatNoDrop
	FeatSubmitStable = sys.FeatSubmitStable

	FsyncDatasync = sys.FsyncDatasync
	TimeoutAbs    = sys.TimeoutAbs

	EnterGetevents = sys.EnterGetevents
	EnterSQWakeup  = sys.EnterSQWakeup
)

// SubmitEntry is the fixed-layout submission record encoders fill in
// before handing it to the Submission Queue Adapter.
type SubmitEntry = sys.SubmitEntry

// CompletionEntry is the fixed-layout record the kernel writes on
// completion.
type CompletionEntry = sys.CompletionEntry
