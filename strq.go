// Package strq provides a double-ended queue of strings that owns a
// private copy of every value it holds.
package strq

// An Allocator accounts for the memory a [Queue] acquires for its own
// structure, its nodes and their string payloads. Alloc reports
// whether an allocation of size bytes may proceed. Every successful
// Alloc is eventually matched by a Free of the same size.
//
// An Allocator is never used concurrently by a single Queue, but an
// Allocator shared between queues must handle its own
// synchronization.
type Allocator interface {
	Alloc(size int) bool
	Free(size int)
}

type unlimited struct{}

func (unlimited) Alloc(int) bool { return true }
func (unlimited) Free(int)       {}

// released is installed in a Queue once it has been freed so that
// further insertions fail instead of touching the old allocator.
type released struct{}

func (released) Alloc(int) bool { return false }
func (released) Free(int)       {}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
