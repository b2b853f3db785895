package collection

// Cursor is a bidirectional position over an Indexed list. Its position lies
// between elements, from 0 (before the first) to Len() (after the last).
type Cursor[T any] struct {
	l       Indexed[T]
	cursor  int
	lastRet int
}

var _ Iterator[int] = (*Cursor[int])(nil)

// NewCursor returns a cursor over l positioned before the element at index.
func NewCursor[T any](l Indexed[T], index int) (*Cursor[T], error) {
	if index < 0 || index > l.Len() {
		return nil, outOfRange(index, l.Len())
	}
	return &Cursor[T]{l: l, cursor: index, lastRet: -1}, nil
}

func (c *Cursor[T]) HasNext() bool      { return c.cursor < c.l.Len() }
func (c *Cursor[T]) HasPrevious() bool  { return c.cursor > 0 }
func (c *Cursor[T]) NextIndex() int     { return c.cursor }
func (c *Cursor[T]) PreviousIndex() int { return c.cursor - 1 }

func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return *new(T), ErrExhausted
	}

	v, err := c.l.Get(c.cursor)
	if err != nil {
		return *new(T), err
	}

	c.lastRet = c.cursor
	c.cursor++
	return v, nil
}

func (c *Cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		return *new(T), ErrExhausted
	}

	v, err := c.l.Get(c.cursor - 1)
	if err != nil {
		return *new(T), err
	}

	c.cursor--
	c.lastRet = c.cursor
	return v, nil
}

// Remove deletes the element last returned by Next or Previous.
func (c *Cursor[T]) Remove() error {
	if c.lastRet < 0 {
		return ErrCursorState
	}

	if _, err := c.l.RemoveAt(c.lastRet); err != nil {
		return err
	}

	if c.lastRet < c.cursor {
		c.cursor--
	}
	c.lastRet = -1
	return nil
}

// Set replaces the element last returned by Next or Previous.
func (c *Cursor[T]) Set(v T) error {
	if c.lastRet < 0 {
		return ErrCursorState
	}
	_, err := c.l.Set(c.lastRet, v)
	return err
}

// Add inserts v at the cursor position and moves past it, so a following
// Next is unaffected and Previous returns v. It only fails when the list was
// structurally modified behind the cursor.
func (c *Cursor[T]) Add(v T) error {
	if err := c.l.Insert(c.cursor, v); err != nil {
		return err
	}
	c.cursor++
	c.lastRet = -1
	return nil
}
