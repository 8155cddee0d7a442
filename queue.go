package strq

import (
	"unsafe"

	"deedles.dev/strq/internal/list"
	"github.com/juju/errors"
)

var (
	queueSize = int(unsafe.Sizeof(Queue{}))
	nodeSize  = int(unsafe.Sizeof(list.DoubleNode[[]byte]{}))
)

// payloadSize is the accounted size of a stored string, including
// room for a terminator.
func payloadSize(v []byte) int {
	return len(v) + 1
}

// A Queue is a double-ended queue of strings. Values can be inserted
// at either end and removed from the head. Every inserted string is
// copied, so the Queue never shares memory with its callers.
//
// A Queue is not safe for concurrent use.
//
// The zero value is an empty Queue that never refuses an allocation.
// All methods may also be called on a nil *Queue, in which case they
// fail or return zero values.
//
// A Queue owns its values and must not be copied after first use.
type Queue struct {
	_ noCopy

	alloc Allocator
	ls    list.Double[[]byte]
}

// New returns a new, empty Queue that never refuses an allocation.
func New() *Queue {
	return NewWith(nil)
}

// NewWith returns a new, empty Queue that requests all of its memory
// through a. If a refuses the allocation of the Queue itself, NewWith
// returns nil. A nil a is the same as calling New.
func NewWith(a Allocator) *Queue {
	if a == nil {
		a = unlimited{}
	}
	if !a.Alloc(queueSize) {
		return nil
	}

	return &Queue{alloc: a}
}

// Free releases every value in the queue from head to tail and then
// the queue itself. The Queue must not be used afterwards. Free on a
// nil Queue does nothing.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	q.ls.Drain(q.release)
	q.allocator().Free(queueSize)
	q.alloc = released{}
}

func (q *Queue) allocator() Allocator {
	if q.alloc == nil {
		return unlimited{}
	}
	return q.alloc
}

func (q *Queue) release(v []byte) {
	a := q.allocator()
	a.Free(payloadSize(v))
	a.Free(nodeSize)
}

// value allocates an owned copy of s for a new node. If either the
// node or the copy is refused, anything already allocated is released
// and ok is false.
func (q *Queue) value(s string) (v []byte, ok bool) {
	a := q.allocator()
	if !a.Alloc(nodeSize) {
		return nil, false
	}
	if !a.Alloc(len(s) + 1) {
		a.Free(nodeSize)
		return nil, false
	}

	v = make([]byte, len(s))
	copy(v, s)
	return v, true
}

// InsertHead inserts a copy of s at the head of the queue. It returns
// false, leaving the queue unchanged, if q is nil or if memory for the
// new value could not be allocated.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}

	v, ok := q.value(s)
	if !ok {
		return false
	}

	q.ls.PushFront(v)
	return true
}

// InsertTail inserts a copy of s at the tail of the queue. It fails
// under the same conditions as InsertHead.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}

	v, ok := q.value(s)
	if !ok {
		return false
	}

	q.ls.PushBack(v)
	return true
}

// RemoveHead removes the value at the head of the queue and releases
// it. If buf is not nil, the removed value is copied into it as by
// copyTerminated, truncating it to len(buf)-1 bytes if necessary. It
// returns false, doing nothing, if q is nil or empty.
func (q *Queue) RemoveHead(buf []byte) bool {
	if q == nil {
		return false
	}

	v, ok := q.ls.PopFront()
	if !ok {
		return false
	}

	if buf != nil && v != nil {
		copyTerminated(buf, v)
	}
	q.release(v)
	return true
}

// PopHead removes the value at the head of the queue and returns it
// in full. It fails under the same conditions as RemoveHead.
func (q *Queue) PopHead() (string, bool) {
	if q == nil {
		return "", false
	}

	v, ok := q.ls.PopFront()
	if !ok {
		return "", false
	}

	s := string(v)
	q.release(v)
	return s, true
}

// Size returns the number of values in the queue. It returns 0 if q
// is nil.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.ls.Len()
}

// Reverse reverses the order of the values in the queue in place. It
// neither allocates nor releases anything.
func (q *Queue) Reverse() {
	if q == nil || q.ls.Len() < 2 {
		return
	}
	q.ls.Reverse()
}

// Check verifies the internal structure of the queue, returning an
// error satisfying errors.Is(err, errors.NotValid) from
// github.com/juju/errors if it is inconsistent. A nil Queue is valid.
func (q *Queue) Check() error {
	if q == nil {
		return nil
	}
	return errors.Annotate(q.ls.Check(), "strq")
}
