package collection

import (
	"fmt"
	"iter"

	"github.com/Asutorufa/seqlist/pkg/utils/list"
)

// List is an ordered collection backed by a doubly linked list it owns.
// Positional operations walk the links and cost O(n).
//
// The zero value is an empty List comparing elements with ==, which panics
// for element types that are not comparable; use NewFunc for those.
type List[T any] struct {
	l *list.List[T]
}

var _ Indexed[int] = (*List[int])(nil)

// lazyInit backs the zero value with a list comparing elements with ==.
func (l *List[T]) lazyInit() *list.List[T] {
	if l.l == nil {
		l.l = list.NewFunc(func(a, b T) bool { return any(a) == any(b) })
	}
	return l.l
}

// New returns an empty List comparing elements with ==.
func New[T comparable]() *List[T] { return &List[T]{l: list.New[T]()} }

// NewFunc returns an empty List comparing elements with equal.
func NewFunc[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{l: list.NewFunc(equal)}
}

// Of returns a List holding vs in order.
func Of[T comparable](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.Add(v)
	}
	return l
}

// From returns a List holding the values of seq in iteration order.
func From[T comparable](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.AddAll(seq)
	return l
}

// FromFunc is like From but compares elements with equal.
func FromFunc[T any](equal func(a, b T) bool, seq iter.Seq[T]) *List[T] {
	l := NewFunc(equal)
	l.AddAll(seq)
	return l
}

func (l *List[T]) Len() int                    { return l.lazyInit().Len() }
func (l *List[T]) IsEmpty() bool               { return l.Len() == 0 }
func (l *List[T]) Contains(v T) bool           { return l.lazyInit().Contains(v) }
func (l *List[T]) Equal() func(a, b T) bool    { return l.lazyInit().Equal() }
func (l *List[T]) Get(index int) (T, error)    { return l.lazyInit().Get(index) }
func (l *List[T]) Insert(index int, v T) error { return l.lazyInit().Insert(index, v) }

func (l *List[T]) RemoveAt(index int) (T, error) {
	return l.lazyInit().Remove(index)
}

// Set replaces the element at index and returns the one it replaced.
func (l *List[T]) Set(index int, v T) (T, error) {
	old, err := l.lazyInit().Get(index)
	if err != nil {
		return old, err
	}
	return old, l.lazyInit().Set(index, v)
}

// Add appends v. It always succeeds and returns true.
func (l *List[T]) Add(v T) bool {
	l.lazyInit().PushBack(v)
	return true
}

// Remove deletes the first element equal to v. It returns false, not an
// error, when there is no such element.
func (l *List[T]) Remove(v T) bool {
	i := l.lazyInit().Index(v)
	if i < 0 {
		return false
	}
	_, err := l.lazyInit().Remove(i)
	return err == nil
}

func (l *List[T]) IndexOf(v T) int     { return l.lazyInit().Index(v) }
func (l *List[T]) LastIndexOf(v T) int { return l.lazyInit().LastIndex(v) }

func (l *List[T]) Clear() { l.lazyInit().Clear() }

// RemoveFunc deletes every element for which keep reports false.
func (l *List[T]) RemoveFunc(keep func(T) bool) int { return l.lazyInit().RemoveFunc(keep) }

func (l *List[T]) ContainsAll(seq iter.Seq[T]) bool { return ContainsAll(l, seq) }
func (l *List[T]) AddAll(seq iter.Seq[T]) bool      { return AddAll(l, seq) }

func (l *List[T]) InsertAll(index int, seq iter.Seq[T]) (bool, error) {
	return InsertAll(l, index, seq)
}

func (l *List[T]) RemoveAll(seq iter.Seq[T]) bool { return RemoveAll(l, seq) }
func (l *List[T]) RetainAll(seq iter.Seq[T]) bool { return RetainAll(l, seq) }

// Iterator returns a forward cursor positioned before the first element.
func (l *List[T]) Iterator() Iterator[T] { return l.ListIterator() }

// ListIterator returns a bidirectional cursor positioned before the first element.
func (l *List[T]) ListIterator() *Cursor[T] {
	c, _ := NewCursor[T](l, 0)
	return c
}

// ListIteratorAt returns a bidirectional cursor positioned before the element
// at index. index may equal Len().
func (l *List[T]) ListIteratorAt(index int) (*Cursor[T], error) {
	return NewCursor[T](l, index)
}

// SubList returns a new, independent List holding the elements in [from, to).
// Later changes to either list are not reflected in the other.
func (l *List[T]) SubList(from, to int) (*List[T], error) {
	if from > to {
		return nil, &RangeError{From: from, To: to}
	}
	if from < 0 {
		return nil, outOfRange(from, l.Len())
	}
	if to > l.Len() {
		return nil, outOfRange(to, l.Len())
	}

	sub := NewFunc(l.lazyInit().Equal())
	for i, v := range l.lazyInit().All() {
		if i >= to {
			break
		}
		if i >= from {
			sub.Add(v)
		}
	}
	return sub, nil
}

// Clone returns an independent copy sharing the same equality.
func (l *List[T]) Clone() *List[T] { return FromFunc(l.lazyInit().Equal(), l.lazyInit().Values()) }

// Slice returns the elements in order in a newly allocated slice.
func (l *List[T]) Slice() []T { return l.AppendTo(make([]T, 0, l.Len())) }

// AppendTo appends the elements in order to dst and returns the extended slice.
func (l *List[T]) AppendTo(dst []T) []T {
	for v := range l.lazyInit().Values() {
		dst = append(dst, v)
	}
	return dst
}

func (l *List[T]) All() iter.Seq2[int, T]      { return l.lazyInit().All() }
func (l *List[T]) Values() iter.Seq[T]         { return l.lazyInit().Values() }
func (l *List[T]) Backward() iter.Seq2[int, T] { return l.lazyInit().Backward() }

func (l *List[T]) String() string { return fmt.Sprint(l.Slice()) }
