package collection

import "sync"

// Synchronized guards a List with one exclusive lock. Every access, cursor
// walks included, goes through Do so it runs to completion under the lock.
type Synchronized[T any] struct {
	l  *List[T]
	mu sync.Mutex
}

func NewSynchronized[T any](l *List[T]) *Synchronized[T] {
	return &Synchronized[T]{l: l}
}

// Do runs f with exclusive access to the list. f must not retain the list or
// any cursor over it after returning.
func (s *Synchronized[T]) Do(f func(*List[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.l)
}

func (s *Synchronized[T]) Add(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Add(v)
}

func (s *Synchronized[T]) Get(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

func (s *Synchronized[T]) Remove(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(v)
}

func (s *Synchronized[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Len()
}

// Slice returns a copy of the elements taken under the lock.
func (s *Synchronized[T]) Slice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Slice()
}
