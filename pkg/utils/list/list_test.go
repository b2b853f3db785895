package list

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkLinks[T any](t *testing.T, l *List[T]) {
	t.Helper()

	if l.size == 0 {
		require.Nil(t, l.head)
		require.Nil(t, l.tail)
		return
	}

	require.NotNil(t, l.head)
	require.NotNil(t, l.tail)
	require.Nil(t, l.head.prev)
	require.Nil(t, l.tail.next)

	forward := 0
	for n := l.head; n != nil; n = n.next {
		if n.next != nil {
			require.Same(t, n, n.next.prev)
		}
		forward++
		require.LessOrEqual(t, forward, l.size, "cycle or stale size")
	}

	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
		require.LessOrEqual(t, backward, l.size, "cycle or stale size")
	}

	require.Equal(t, l.size, forward)
	require.Equal(t, l.size, backward)
}

func values[T any](l *List[T]) []T { return slices.Collect(l.Values()) }

func from(vs ...string) *List[string] {
	l := New[string]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

func TestPushBack(t *testing.T) {
	l := New[int]()
	checkLinks(t, l)

	for i := range 5 {
		l.PushBack(i)
		checkLinks(t, l)
	}

	assert.Equal(t, 5, l.Len())
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, values(l)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestPushFront(t *testing.T) {
	l := New[int]()
	l.PushFront(0)
	l.PushFront(-1)
	l.PushBack(1)
	checkLinks(t, l)

	assert.Equal(t, []int{-1, 0, 1}, values(l))
}

func TestInsert(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l := New[string]()
		require.NoError(t, l.Insert(0, "a"))
		checkLinks(t, l)
		assert.Same(t, l.head, l.tail)
		assert.Equal(t, []string{"a"}, values(l))
	})

	t.Run("head", func(t *testing.T) {
		l := from("b", "c")
		require.NoError(t, l.Insert(0, "a"))
		checkLinks(t, l)
		assert.Equal(t, []string{"a", "b", "c"}, values(l))
	})

	t.Run("middle", func(t *testing.T) {
		l := from("a", "b", "d", "e")
		require.NoError(t, l.Insert(2, "c"))
		checkLinks(t, l)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, values(l))
	})

	t.Run("tail half", func(t *testing.T) {
		l := from("a", "b", "c", "d", "f")
		require.NoError(t, l.Insert(4, "e"))
		checkLinks(t, l)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, values(l))
	})

	t.Run("append", func(t *testing.T) {
		l := from("a", "b")
		require.NoError(t, l.Insert(2, "c"))
		checkLinks(t, l)
		assert.Equal(t, []string{"a", "b", "c"}, values(l))
	})

	t.Run("shifts", func(t *testing.T) {
		l := from("a", "b", "c")
		old, err := l.Get(1)
		require.NoError(t, err)

		require.NoError(t, l.Insert(1, "x"))

		got, err := l.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "x", got)

		got, err = l.Get(2)
		require.NoError(t, err)
		assert.Equal(t, old, got)
	})
}

func TestOutOfRange(t *testing.T) {
	l := from("a", "b", "c")

	tests := []struct {
		name string
		call func() error
	}{
		{"insert -1", func() error { return l.Insert(-1, "x") }},
		{"insert size+1", func() error { return l.Insert(4, "x") }},
		{"get -1", func() error { _, err := l.Get(-1); return err }},
		{"get size", func() error { _, err := l.Get(3); return err }},
		{"set -1", func() error { return l.Set(-1, "x") }},
		{"set size", func() error { return l.Set(3, "x") }},
		{"remove -1", func() error { _, err := l.Remove(-1); return err }},
		{"remove size", func() error { _, err := l.Remove(3); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)

			var ie *IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, 3, ie.Size)

			assert.Equal(t, []string{"a", "b", "c"}, values(l))
			checkLinks(t, l)
		})
	}
}

func TestGetIsRepeatable(t *testing.T) {
	l := from("a", "b", "c", "d", "e")

	for i := range l.Len() {
		first, err := l.Get(i)
		require.NoError(t, err)
		second, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestSet(t *testing.T) {
	l := from("a", "b", "c")
	mid := l.head.next

	require.NoError(t, l.Set(1, "x"))
	assert.Same(t, mid, l.head.next, "set must not relink")
	assert.Equal(t, []string{"a", "x", "c"}, values(l))
}

func TestRemove(t *testing.T) {
	t.Run("only", func(t *testing.T) {
		l := from("a")
		v, err := l.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, "a", v)
		assert.Nil(t, l.head)
		assert.Nil(t, l.tail)
		checkLinks(t, l)
	})

	t.Run("head", func(t *testing.T) {
		l := from("a", "b", "c")
		v, err := l.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, "a", v)
		assert.Equal(t, "b", l.head.value)
		checkLinks(t, l)
	})

	t.Run("tail", func(t *testing.T) {
		l := from("a", "b", "c")
		v, err := l.Remove(2)
		require.NoError(t, err)
		assert.Equal(t, "c", v)
		assert.Equal(t, "b", l.tail.value)
		checkLinks(t, l)
	})

	t.Run("middle", func(t *testing.T) {
		l := from("a", "b", "c", "d")
		v, err := l.Remove(2)
		require.NoError(t, err)
		assert.Equal(t, "c", v)
		assert.Equal(t, []string{"a", "b", "d"}, values(l))
		checkLinks(t, l)
	})

	t.Run("reinsert restores", func(t *testing.T) {
		l := from("a", "b", "c", "d")
		for i := range l.Len() {
			v, err := l.Remove(i)
			require.NoError(t, err)
			require.NoError(t, l.Insert(i, v))
			assert.Equal(t, []string{"a", "b", "c", "d"}, values(l))
			checkLinks(t, l)
		}
	})
}

func TestSearch(t *testing.T) {
	l := from("a", "b", "a", "c")

	assert.True(t, l.Contains("c"))
	assert.False(t, l.Contains("z"))
	assert.Equal(t, 0, l.Index("a"))
	assert.Equal(t, 2, l.LastIndex("a"))
	assert.Equal(t, -1, l.Index("z"))
	assert.Equal(t, -1, l.LastIndex("z"))
}

func TestNewFunc(t *testing.T) {
	l := NewFunc(strings.EqualFold)
	l.PushBack("Oven")
	l.PushBack("Microwave")

	assert.True(t, l.Contains("oven"))
	assert.Equal(t, 1, l.Index("MICROWAVE"))

	assert.Panics(t, func() { NewFunc[string](nil) })
}

func TestRemoveFunc(t *testing.T) {
	l := from("a", "b", "c", "d", "e")
	n := l.RemoveFunc(func(s string) bool { return s == "b" || s == "d" })
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"b", "d"}, values(l))
	checkLinks(t, l)

	n = l.RemoveFunc(func(string) bool { return false })
	assert.Equal(t, 2, n)
	checkLinks(t, l)
}

func TestClear(t *testing.T) {
	l := from("a", "b", "c")
	first := l.head
	l.Clear()
	checkLinks(t, l)
	assert.Zero(t, l.Len())
	assert.Nil(t, first.next)

	l.PushBack("d")
	assert.Equal(t, []string{"d"}, values(l))
}

func TestIterators(t *testing.T) {
	l := from("a", "b", "c")

	var idx []int
	var got []string
	for i, v := range l.All() {
		idx = append(idx, i)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	idx, got = nil, nil
	for i, v := range l.Backward() {
		idx = append(idx, i)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 1, 0}, idx)
	assert.Equal(t, []string{"c", "b", "a"}, got)

	for v := range l.Values() {
		assert.Equal(t, "a", v)
		break
	}
}

func TestRandomOps(t *testing.T) {
	l := New[int]()
	var ref []int

	// deterministic mix of inserts and removals checked against a slice
	for i := range 200 {
		switch {
		case i%7 == 3 && len(ref) > 0:
			at := (i * 13) % len(ref)
			v, err := l.Remove(at)
			require.NoError(t, err)
			require.Equal(t, ref[at], v)
			ref = slices.Delete(ref, at, at+1)
		default:
			at := (i * 31) % (len(ref) + 1)
			require.NoError(t, l.Insert(at, i))
			ref = slices.Insert(ref, at, i)
		}

		require.Equal(t, len(ref), l.Len())
	}

	checkLinks(t, l)
	if diff := cmp.Diff(ref, values(l)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncList(t *testing.T) {
	l := NewSyncList[int]()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				l.PushBack(i*100 + j)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, l.Len())
	assert.True(t, l.Contains(799))

	require.NoError(t, l.Insert(0, -1))
	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	require.NoError(t, l.Set(0, -2))
	v, err = l.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, -2, v)

	l.PushFront(-3)
	count := 0
	l.Range(func(i int, v int) bool {
		count++
		return i < 9
	})
	assert.Equal(t, 10, count)

	f := NewSyncListFunc(strings.EqualFold)
	f.PushBack("Oven")
	assert.True(t, f.Contains("OVEN"))
}
