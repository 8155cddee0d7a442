// Package list implements the linkage underneath a strq.Queue.
package list

import "github.com/juju/errors"

// Double is a doubly-linked list that tracks both ends and its
// length. The zero value is an empty list.
type Double[T any] struct {
	head, tail *DoubleNode[T]
	size       int
}

// Len returns the number of nodes in the list.
func (ls *Double[T]) Len() int {
	return ls.size
}

// PushFront adds a new node containing v before the current head.
func (ls *Double[T]) PushFront(v T) {
	n := DoubleNode[T]{Val: v, next: ls.head}
	if ls.head == nil {
		ls.tail = &n
	} else {
		ls.head.prev = &n
	}

	ls.head = &n
	ls.size++
}

// PushBack adds a new node containing v after the current tail.
func (ls *Double[T]) PushBack(v T) {
	n := DoubleNode[T]{Val: v, prev: ls.tail}
	if ls.tail == nil {
		ls.head = &n
	} else {
		ls.tail.next = &n
	}

	ls.tail = &n
	ls.size++
}

// PopFront detaches the head node and returns its value. It returns
// false if the list was already empty.
func (ls *Double[T]) PopFront() (v T, ok bool) {
	n := ls.head
	if n == nil {
		return v, false
	}

	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	} else {
		ls.head.prev = nil
	}
	ls.size--

	v = n.Val
	n.unlink()
	return v, true
}

// Reverse reverses the order of the list in place by swapping the
// relations of every node and then the ends of the list. Lists with
// fewer than two nodes are left alone.
func (ls *Double[T]) Reverse() {
	if ls.head == nil || ls.head.next == nil {
		return
	}

	cur := ls.head
	for cur != nil {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
	}

	ls.head, ls.tail = ls.tail, ls.head
}

// Drain detaches every node from head to tail, calling release with
// each value as its node is dropped. The list is empty afterwards.
// release must not be nil.
func (ls *Double[T]) Drain(release func(T)) {
	cur := ls.head
	for cur != nil {
		next := cur.next
		release(cur.Val)
		cur.unlink()
		cur = next
	}

	ls.head = nil
	ls.tail = nil
	ls.size = 0
}

// Check walks the list in both directions and reports the first
// structural inconsistency it finds.
func (ls *Double[T]) Check() error {
	if ls.size < 0 {
		return errors.NotValidf("negative length %v", ls.size)
	}
	if (ls.head == nil) != (ls.tail == nil) || (ls.head == nil) != (ls.size == 0) {
		return errors.NotValidf("ends (head=%t, tail=%t) with length %v", ls.head != nil, ls.tail != nil, ls.size)
	}
	if ls.head == nil {
		return nil
	}
	if ls.head.prev != nil {
		return errors.NotValidf("head with a previous node")
	}
	if ls.tail.next != nil {
		return errors.NotValidf("tail with a next node")
	}

	cur := ls.head
	for i := 0; i < ls.size; i++ {
		if cur == nil {
			return errors.NotValidf("forward chain ending after %v of %v nodes", i, ls.size)
		}
		if cur.next != nil && cur.next.prev != cur {
			return errors.NotValidf("node %v not linked back from its successor", i)
		}
		if cur.next == nil && cur != ls.tail {
			return errors.NotValidf("forward chain ending at node %v before the tail", i)
		}
		cur = cur.next
	}
	if cur != nil {
		return errors.NotValidf("forward chain longer than %v nodes", ls.size)
	}

	cur = ls.tail
	for i := 0; i < ls.size; i++ {
		if cur == nil {
			return errors.NotValidf("backward chain ending after %v of %v nodes", i, ls.size)
		}
		cur = cur.prev
	}
	if cur != nil {
		return errors.NotValidf("backward chain longer than %v nodes", ls.size)
	}

	return nil
}

// DoubleNode is a node of a [Double].
type DoubleNode[T any] struct {
	Val        T
	prev, next *DoubleNode[T]
}

func (n *DoubleNode[T]) unlink() {
	var zero T
	n.Val = zero
	n.prev = nil
	n.next = nil
}
