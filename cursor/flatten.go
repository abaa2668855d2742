package cursor

import (
	"context"
	"errors"
)

// Flatten concatenates the sub-cursors produced by outer, in outer order.
//
// Empty sub-cursors are skipped no matter how many appear in a row: Next
// keeps replacing the current sub-cursor until one yields an item or outer
// is exhausted. Each sub-cursor is closed once it runs dry; its close error
// is returned by the next Close.
func Flatten[T any](outer Cursor[Cursor[T]]) Cursor[T] {
	return &flattenCursor[T]{outer: outer}
}

// FlatMap maps each item to a cursor and flattens the results.
// It is equivalent to Flatten(Map(c, fn)).
func FlatMap[A, B any](c Cursor[A], fn func(A) Cursor[B]) Cursor[B] {
	return Flatten(Map(c, fn))
}

// FlattenSlices yields the elements of each slice produced by c, in order.
func FlattenSlices[T any](c Cursor[[]T]) Cursor[T] {
	return FlatMap(c, FromSlice[T])
}

type flattenCursor[T any] struct {
	outer   Cursor[Cursor[T]]
	current Cursor[T]
	// errs holds close errors of sub-cursors that ran dry.
	errs []error
}

func (c *flattenCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		if c.current == nil {
			next, ok, err := c.outer.Next(ctx)
			if err != nil || !ok {
				return result, false, err
			}
			if next == nil {
				continue
			}
			c.current = next
		}
		val, ok, err := c.current.Next(ctx)
		if err != nil {
			return result, false, err
		}
		if ok {
			return val, true, nil
		}
		if err := c.current.Close(); err != nil {
			c.errs = append(c.errs, err)
		}
		c.current = nil
	}
}

func (c *flattenCursor[T]) Close() error {
	errs := c.errs
	c.errs = nil
	if c.current != nil {
		errs = append(errs, c.current.Close())
		c.current = nil
	}
	errs = append(errs, c.outer.Close())
	return errors.Join(errs...)
}

func (c *flattenCursor[T]) Describe() (string, []any) { return "flatten", []any{c.outer} }
