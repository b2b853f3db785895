package list

import (
	"sync"
)

type SyncList[T any] struct {
	l  *List[T]
	mu sync.RWMutex
}

func NewSyncList[T comparable]() *SyncList[T] { return &SyncList[T]{l: New[T]()} }

func NewSyncListFunc[T any](equal func(a, b T) bool) *SyncList[T] {
	return &SyncList[T]{l: NewFunc(equal)}
}

func (s *SyncList[T]) PushFront(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.PushFront(v)
}

func (s *SyncList[T]) PushBack(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.PushBack(v)
}

func (s *SyncList[T]) Insert(index int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Insert(index, v)
}

func (s *SyncList[T]) Set(index int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(index, v)
}

func (s *SyncList[T]) Remove(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(index)
}

func (s *SyncList[T]) Get(index int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Get(index)
}

func (s *SyncList[T]) Contains(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Contains(v)
}

func (s *SyncList[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

// Range calls ranger for each element in order while holding the read lock.
// ranger must not call back into s.
func (s *SyncList[T]) Range(ranger func(int, T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, v := range s.l.All() {
		if !ranger(i, v) {
			break
		}
	}
}
