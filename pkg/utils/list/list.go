// Package list implements a doubly linked list addressed by position.
//
// A List is not safe for concurrent use; wrap it in a SyncList when it is
// shared between goroutines.
package list

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned when an index falls outside the bound of the operation.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports the offending index together with the list size at the time of the call.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index: %d, size: %d: %v", e.Index, e.Size, ErrOutOfRange)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	equal func(a, b T) bool
}

// New returns an empty list comparing elements with ==.
func New[T comparable]() *List[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc returns an empty list comparing elements with equal.
func NewFunc[T any](equal func(a, b T) bool) *List[T] {
	if equal == nil {
		panic("list: nil equal func")
	}
	return &List[T]{equal: equal}
}

func (l *List[T]) Len() int { return l.size }

// Equal returns the equality the list uses for Contains, Index and LastIndex.
func (l *List[T]) Equal() func(a, b T) bool { return l.equal }

func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// Insert places v before the element currently at index.
// index == Len() appends.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.size {
		return &IndexError{Index: index, Size: l.size}
	}

	switch index {
	case 0:
		l.PushFront(v)
	case l.size:
		l.PushBack(v)
	default:
		at := l.find(index)
		n := &node[T]{value: v, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.size++
	}

	return nil
}

func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		return *new(T), err
	}
	return l.find(index).value, nil
}

// Set overwrites the value stored at index without relinking.
func (l *List[T]) Set(index int, v T) error {
	if err := l.checkElementIndex(index); err != nil {
		return err
	}
	l.find(index).value = v
	return nil
}

func (l *List[T]) Remove(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		return *new(T), err
	}
	n := l.find(index)
	l.unlink(n)
	return n.value, nil
}

func (l *List[T]) Contains(v T) bool { return l.Index(v) >= 0 }

// Index returns the position of the first element equal to v, or -1.
func (l *List[T]) Index(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.equal(n.value, v) {
			return i
		}
		i++
	}
	return -1
}

// LastIndex returns the position of the last element equal to v, or -1.
func (l *List[T]) LastIndex(v T) int {
	i := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if l.equal(n.value, v) {
			return i
		}
		i--
	}
	return -1
}

// RemoveFunc unlinks, in one pass from the head, every element for which keep
// reports false and returns how many were removed.
func (l *List[T]) RemoveFunc(keep func(T) bool) int {
	removed := 0
	for n := l.head; n != nil; {
		next := n.next
		if !keep(n.value) {
			l.unlink(n)
			removed++
		}
		n = next
	}
	return removed
}

func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward walks from the tail, yielding each element with its position.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

func (l *List[T]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return &IndexError{Index: index, Size: l.size}
	}
	return nil
}

// find walks from the nearer end; index must already be validated.
func (l *List[T]) find(index int) *node[T] {
	if index < l.size/2 {
		n := l.head
		for range index {
			n = n.next
		}
		return n
	}

	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.next, n.prev = nil, nil
	l.size--
}
