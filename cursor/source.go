package cursor

import (
	"context"
	"fmt"
	"iter"
)

// FromSlice returns a cursor that yields items in order, exactly once.
// The cursor takes ownership of the slice and clears each slot after
// yielding it; the caller must not use items afterwards.
func FromSlice[T any](items []T) Cursor[T] {
	return &sliceCursor[T]{items: items}
}

// FromFunc returns a cursor backed by a generator function. The cursor is
// exhausted the first time fn reports false or returns an error.
func FromFunc[T any](fn func(ctx context.Context) (T, bool, error)) Cursor[T] {
	return &funcCursor[T]{fn: fn}
}

// Generate returns an unbounded cursor that yields successive results of fn.
// Bound it with Take before applying SortBy or GroupBy.
func Generate[T any](fn func() T) Cursor[T] {
	return &generateCursor[T]{fn: fn}
}

// FromSeq adapts a push iterator into a cursor using iter.Pull. Close must
// be called if the cursor is abandoned before exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Cursor[T] {
	next, stop := iter.Pull(seq)
	return &seqCursor[T]{next: next, stop: stop}
}

// Empty returns a cursor that is exhausted from the start.
func Empty[T any]() Cursor[T] {
	return emptyCursor[T]{}
}

type sliceCursor[T any] struct {
	items []T
	index int
}

func (c *sliceCursor[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if c.index >= len(c.items) {
		c.items = nil
		c.index = 0
		return zero, false, nil
	}
	val := c.items[c.index]
	c.items[c.index] = zero
	c.index++
	return val, true, nil
}

func (c *sliceCursor[T]) Close() error {
	c.items = nil
	c.index = 0
	return nil
}

func (c *sliceCursor[T]) Describe() (string, []any) {
	return fmt.Sprintf("from_slice(%d)", len(c.items)-c.index), nil
}

type funcCursor[T any] struct {
	fn   func(context.Context) (T, bool, error)
	done bool
}

func (c *funcCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if c.done {
		return result, false, nil
	}
	val, ok, err := c.fn(ctx)
	if err != nil || !ok {
		c.done = true
		return result, false, err
	}
	return val, true, nil
}

func (c *funcCursor[T]) Close() error {
	c.done = true
	return nil
}

func (c *funcCursor[T]) Describe() (string, []any) { return "from_func", nil }

type generateCursor[T any] struct {
	fn     func() T
	closed bool
}

func (c *generateCursor[T]) Next(_ context.Context) (result T, ok bool, err error) {
	if c.closed {
		return result, false, nil
	}
	return c.fn(), true, nil
}

func (c *generateCursor[T]) Close() error {
	c.closed = true
	return nil
}

func (c *generateCursor[T]) Describe() (string, []any) { return "generate", nil }

type seqCursor[T any] struct {
	next func() (T, bool)
	stop func()
}

func (c *seqCursor[T]) Next(_ context.Context) (T, bool, error) {
	val, ok := c.next()
	if !ok {
		c.stop()
	}
	return val, ok, nil
}

func (c *seqCursor[T]) Close() error {
	c.stop()
	return nil
}

func (c *seqCursor[T]) Describe() (string, []any) { return "from_seq", nil }

type emptyCursor[T any] struct{}

func (emptyCursor[T]) Next(_ context.Context) (result T, ok bool, err error) {
	return result, false, nil
}

func (emptyCursor[T]) Close() error { return nil }

func (emptyCursor[T]) Describe() (string, []any) { return "empty", nil }
