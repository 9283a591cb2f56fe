// +build linux

package sys

import (
	"reflect"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidEntries is returned when entries is not a power of two in [1, 32768].
	ErrInvalidEntries = errors.New("entries must be a power of 2 from 1 to 32768, inclusive")

	uint32Size = unsafe.Sizeof(uint32(0))
	cqeSize    = unsafe.Sizeof(CompletionEntry{})
	sqeSize    = unsafe.Sizeof(SubmitEntry{})
)

// Setup invokes io_uring_setup and returns the ring fd.
func Setup(entries uint32, params *Params) (int, error) {
	fd, _, errno := syscall.Syscall(
		SetupSyscall,
		uintptr(entries),
		uintptr(unsafe.Pointer(params)),
		uintptr(0),
	)
	if errno != 0 {
		return 0, errors.Wrap(errno, "io_uring_setup")
	}
	return int(fd), nil
}

// SQRing is the mmap'd view of the submission queue ring and its SQE array.
type SQRing struct {
	Size    uint32
	Head    *uint32
	Tail    *uint32
	Mask    *uint32
	Entries *uint32
	Flags   *uint32
	Dropped *uint32
	Array   []uint32
	Sqes    []SubmitEntry
	ptr     uintptr
	sqesPtr uintptr
	sqesLen uint32
}

// CQRing is the mmap'd view of the completion queue ring.
type CQRing struct {
	Size     uint32
	Head     *uint32
	Tail     *uint32
	Mask     *uint32
	Entries  *uint32
	Overflow *uint32
	Cqes     []CompletionEntry
	ptr      uintptr
}

// MmapRing maps the SQ ring, CQ ring, and SQE array for fd, aliasing the
// SQ and CQ mappings when the kernel reports IORING_FEAT_SINGLE_MMAP.
func MmapRing(fd int, p *Params) (*SQRing, *CQRing, error) {
	singleMmap := p.Features&FeatSingleMmap != 0

	sqSize := uint32(uint(p.SqOffset.Array) + uint(p.SqEntries)*uint(uint32Size))
	cqSize := uint32(uint(p.CqOffset.Cqes) + uint(p.CqEntries)*uint(cqeSize))
	if singleMmap {
		if cqSize > sqSize {
			sqSize = cqSize
		} else {
			cqSize = sqSize
		}
	}

	sqPtr, err := mmap(fd, int64(SqRingOffset), int(sqSize))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to mmap sq ring")
	}

	var cqPtr uintptr
	if singleMmap {
		cqPtr = sqPtr
	} else {
		cqPtr, err = mmap(fd, int64(CqRingOffset), int(cqSize))
		if err != nil {
			munmap(sqPtr, uintptr(sqSize))
			return nil, nil, errors.Wrap(err, "failed to mmap cq ring")
		}
	}

	sqesSize := uint32(p.SqEntries) * uint32(sqeSize)
	sqesPtr, err := mmap(fd, int64(SqeOffset), int(sqesSize))
	if err != nil {
		munmap(sqPtr, uintptr(sqSize))
		if !singleMmap {
			munmap(cqPtr, uintptr(cqSize))
		}
		return nil, nil, errors.Wrap(err, "failed to mmap sqes")
	}

	sq := &SQRing{
		Size:    sqSize,
		Head:    (*uint32)(unsafe.Pointer(sqPtr + uintptr(p.SqOffset.Head))),
		Tail:    (*uint32)(unsafe.Pointer(sqPtr + uintptr(p.SqOffset.Tail))),
		Mask:    (*uint32)(unsafe.Pointer(sqPtr + uintptr(p.SqOffset.RingMask))),
		Entries: (*uint32)(unsafe.Pointer(sqPtr + uintptr(p.SqOffset.RingEntries))),
		Flags:   (*uint32)(unsafe.Pointer(sqPtr + uintptr(p.SqOffset.Flags))),
		Dropped: (*uint32)(unsafe.Pointer(sqPtr + uintptr(p.SqOffset.Dropped))),
		ptr:     sqPtr,
		sqesPtr: sqesPtr,
		sqesLen: sqesSize,
	}
	sq.Array = *(*[]uint32)(unsafe.Pointer(&reflect.SliceHeader{
		Data: sqPtr + uintptr(p.SqOffset.Array),
		Len:  int(p.SqEntries),
		Cap:  int(p.SqEntries),
	}))
	sq.Sqes = *(*[]SubmitEntry)(unsafe.Pointer(&reflect.SliceHeader{
		Data: sqesPtr,
		Len:  int(p.SqEntries),
		Cap:  int(p.SqEntries),
	}))

	cq := &CQRing{
		Size:     cqSize,
		Head:     (*uint32)(unsafe.Pointer(cqPtr + uintptr(p.CqOffset.Head))),
		Tail:     (*uint32)(unsafe.Pointer(cqPtr + uintptr(p.CqOffset.Tail))),
		Mask:     (*uint32)(unsafe.Pointer(cqPtr + uintptr(p.CqOffset.RingMask))),
		Entries:  (*uint32)(unsafe.Pointer(cqPtr + uintptr(p.CqOffset.RingEntries))),
		Overflow: (*uint32)(unsafe.Pointer(cqPtr + uintptr(p.CqOffset.Overflow))),
		ptr:      cqPtr,
	}
	cq.Cqes = *(*[]CompletionEntry)(unsafe.Pointer(&reflect.SliceHeader{
		Data: cqPtr + uintptr(p.CqOffset.Cqes),
		Len:  int(p.CqEntries),
		Cap:  int(p.CqEntries),
	}))

	return sq, cq, nil
}

// Unmap unmaps the SQ ring, SQE array, and CQ regions (the CQ region is
// skipped when it is aliased onto the SQ mapping).
func Unmap(sq *SQRing, cq *CQRing, singleMmap bool) error {
	if sq != nil {
		if err := munmap(sq.ptr, uintptr(sq.Size)); err != nil {
			return errors.Wrap(err, "failed to munmap sq ring")
		}
		if err := munmap(sq.sqesPtr, uintptr(sq.sqesLen)); err != nil {
			return errors.Wrap(err, "failed to munmap sqes")
		}
	}
	if cq != nil && !singleMmap {
		if err := munmap(cq.ptr, uintptr(cq.Size)); err != nil {
			return errors.Wrap(err, "failed to munmap cq ring")
		}
	}
	return nil
}

func mmap(fd int, offset int64, size int) (uintptr, error) {
	ptr, _, errno := syscall.Syscall6(
		syscall.SYS_MMAP,
		uintptr(0),
		uintptr(size),
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_SHARED|syscall.MAP_POPULATE,
		uintptr(fd),
		uintptr(offset),
	)
	if errno != 0 {
		return 0, errno
	}
	return ptr, nil
}

func munmap(ptr uintptr, size uintptr) error {
	_, _, errno := syscall.Syscall6(
		syscall.SYS_MUNMAP,
		ptr,
		size,
		0, 0, 0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}
