package collection

import (
	"iter"
	"slices"
)

// ContainsAll reports whether every value of seq is present in l.
func ContainsAll[T any](l Indexed[T], seq iter.Seq[T]) bool {
	for v := range seq {
		if l.IndexOf(v) < 0 {
			return false
		}
	}
	return true
}

// AddAll appends the values of seq in iteration order and reports whether
// anything was appended. An empty seq leaves l unchanged and reports false.
// seq is drained before l is modified, so it may range over l itself.
func AddAll[T any](l Indexed[T], seq iter.Seq[T]) bool {
	vs := slices.Collect(seq)
	for _, v := range vs {
		// the index is always Len(), so Insert cannot fail
		_ = l.Insert(l.Len(), v)
	}
	return len(vs) > 0
}

// InsertAll inserts the values of seq starting at index, each one right after
// the previous, so their relative order is kept. index is validated before
// anything is inserted, and seq is drained first as in AddAll.
func InsertAll[T any](l Indexed[T], index int, seq iter.Seq[T]) (bool, error) {
	if index < 0 || index > l.Len() {
		return false, outOfRange(index, l.Len())
	}

	added := false
	for _, v := range slices.Collect(seq) {
		if err := l.Insert(index, v); err != nil {
			return added, err
		}
		index++
		added = true
	}
	return added, nil
}

// RemoveAll removes the first occurrence of every value of seq and reports
// whether anything was removed.
func RemoveAll[T any](l Indexed[T], seq iter.Seq[T]) bool {
	removed := false
	for v := range seq {
		i := l.IndexOf(v)
		if i < 0 {
			continue
		}
		if _, err := l.RemoveAt(i); err == nil {
			removed = true
		}
	}
	return removed
}

type funcRemover[T any] interface {
	RemoveFunc(keep func(T) bool) int
}

// RetainAll removes every element of l that is not equal to some value of seq
// and reports whether anything was removed.
func RetainAll[T any](l Indexed[T], seq iter.Seq[T]) bool {
	keep := slices.Collect(seq)
	equal := l.Equal()
	retained := func(v T) bool {
		return slices.ContainsFunc(keep, func(k T) bool { return equal(v, k) })
	}

	if r, ok := l.(funcRemover[T]); ok {
		return r.RemoveFunc(retained) > 0
	}

	removed := false
	for i := 0; i < l.Len(); {
		v, err := l.Get(i)
		if err != nil {
			break
		}
		if retained(v) {
			i++
			continue
		}
		if _, err := l.RemoveAt(i); err != nil {
			break
		}
		removed = true
	}
	return removed
}
