// Package collection adapts a doubly linked list to an ordered collection
// contract: indexed access, cursor iteration with in-place mutation, bulk
// set-like operations and sub-range snapshots.
//
// Nothing in this package is safe for concurrent use. Callers sharing a List
// between goroutines must serialise access themselves, for example through
// Synchronized. A cursor holds no snapshot; structurally modifying a List by
// any means other than the cursor's own Remove and Add leaves the cursor's
// position undefined.
package collection

import (
	"errors"
	"fmt"

	"github.com/Asutorufa/seqlist/pkg/utils/list"
)

var (
	// ErrOutOfRange is returned for an index outside the bound of the operation.
	ErrOutOfRange = list.ErrOutOfRange

	// ErrExhausted is returned by Next and Previous when there is no element in that direction.
	ErrExhausted = errors.New("no more elements")

	// ErrCursorState is returned by Cursor.Remove and Cursor.Set when no element has been
	// returned by Next or Previous since the last Remove or Add.
	ErrCursorState = errors.New("no current element")

	// ErrInvalidRange is returned by SubList when from > to.
	ErrInvalidRange = errors.New("invalid range")
)

// RangeError reports a sub-range whose bounds are inverted.
type RangeError struct {
	From, To int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("from: %d, to: %d: %v", e.From, e.To, ErrInvalidRange)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// Indexed is the minimal positional contract the bulk helpers and Cursor are
// built on.
type Indexed[T any] interface {
	Len() int
	Get(index int) (T, error)
	// Set replaces the element at index and returns the previous one.
	Set(index int, v T) (T, error)
	// Insert places v before the element at index; index == Len() appends.
	Insert(index int, v T) error
	RemoveAt(index int) (T, error)
	// IndexOf returns the position of the first element equal to v, or -1.
	IndexOf(v T) int
	// Equal is the element equality used for every value based lookup.
	Equal() func(a, b T) bool
}

// Iterator is a forward only cursor.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

func outOfRange(index, size int) error {
	return &list.IndexError{Index: index, Size: size}
}
