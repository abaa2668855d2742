package cursor

import (
	"context"
	"errors"
	"fmt"
)

// Map transforms each item using fn. The output has exactly as many items
// as the input, in the same order.
func Map[A, B any](c Cursor[A], fn func(A) B) Cursor[B] {
	return &mapCursor[A, B]{source: c, fn: fn}
}

// TryMap transforms each item using a fallible fn. The first error is
// returned from Next and the cursor is exhausted afterwards.
func TryMap[A, B any](c Cursor[A], fn func(context.Context, A) (B, error)) Cursor[B] {
	return &tryMapCursor[A, B]{source: c, fn: fn}
}

// Filter keeps only the items for which pred returns true, preserving
// their relative order.
func Filter[T any](c Cursor[T], pred func(T) bool) Cursor[T] {
	return &filterCursor[T]{source: c, pred: pred}
}

// Take yields at most k items. Once k items have been emitted the source is
// never pulled again, so Take is safe on unbounded sources. k <= 0 never
// pulls the source at all.
func Take[T any](c Cursor[T], k int) Cursor[T] {
	return &takeCursor[T]{source: c, limit: k}
}

// Tap calls fn as a side effect for each item, then passes the item through
// unchanged.
func Tap[T any](c Cursor[T], fn func(T)) Cursor[T] {
	return &tapCursor[T]{source: c, fn: fn}
}

// Concat joins cursors sequentially: all items of the first cursor are
// yielded before the second, and so on.
func Concat[T any](cursors ...Cursor[T]) Cursor[T] {
	return &concatCursor[T]{cursors: cursors}
}

// --- Cursor implementations ---

type mapCursor[A, B any] struct {
	source Cursor[A]
	fn     func(A) B
}

func (c *mapCursor[A, B]) Next(ctx context.Context) (result B, ok bool, err error) {
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	return c.fn(val), true, nil
}

func (c *mapCursor[A, B]) Close() error { return c.source.Close() }

func (c *mapCursor[A, B]) Describe() (string, []any) { return "map", []any{c.source} }

type tryMapCursor[A, B any] struct {
	source Cursor[A]
	fn     func(context.Context, A) (B, error)
	done   bool
}

func (c *tryMapCursor[A, B]) Next(ctx context.Context) (result B, ok bool, err error) {
	if c.done {
		return result, false, nil
	}
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	out, err := c.fn(ctx, val)
	if err != nil {
		c.done = true
		return result, false, err
	}
	return out, true, nil
}

func (c *tryMapCursor[A, B]) Close() error { return c.source.Close() }

func (c *tryMapCursor[A, B]) Describe() (string, []any) { return "try_map", []any{c.source} }

type filterCursor[T any] struct {
	source Cursor[T]
	pred   func(T) bool
}

func (c *filterCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := c.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		if c.pred(val) {
			return val, true, nil
		}
	}
}

func (c *filterCursor[T]) Close() error { return c.source.Close() }

func (c *filterCursor[T]) Describe() (string, []any) { return "filter", []any{c.source} }

type takeCursor[T any] struct {
	source  Cursor[T]
	limit   int
	emitted int
}

func (c *takeCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if c.emitted >= c.limit {
		return result, false, nil
	}
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	c.emitted++
	return val, true, nil
}

func (c *takeCursor[T]) Close() error { return c.source.Close() }

func (c *takeCursor[T]) Describe() (string, []any) {
	return fmt.Sprintf("take(%d)", c.limit), []any{c.source}
}

type tapCursor[T any] struct {
	source Cursor[T]
	fn     func(T)
}

func (c *tapCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	c.fn(val)
	return val, true, nil
}

func (c *tapCursor[T]) Close() error { return c.source.Close() }

func (c *tapCursor[T]) Describe() (string, []any) { return "tap", []any{c.source} }

type concatCursor[T any] struct {
	cursors []Cursor[T]
	index   int
}

func (c *concatCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for c.index < len(c.cursors) {
		val, ok, err := c.cursors[c.index].Next(ctx)
		if err != nil {
			return result, false, err
		}
		if ok {
			return val, true, nil
		}
		c.index++
	}
	return result, false, nil
}

func (c *concatCursor[T]) Close() error {
	errs := make([]error, 0, len(c.cursors))
	for _, cur := range c.cursors {
		errs = append(errs, cur.Close())
	}
	return errors.Join(errs...)
}

func (c *concatCursor[T]) Describe() (string, []any) {
	inputs := make([]any, len(c.cursors))
	for i, cur := range c.cursors {
		inputs[i] = cur
	}
	return "concat", inputs
}
