package cursor

import (
	"cmp"
	"context"
	"slices"
)

// SortBy yields the items of c in ascending order of key. The sort is
// stable: items with equal keys keep their original relative order.
//
// The first Next drains c completely, so c must be finite.
func SortBy[T any, K cmp.Ordered](c Cursor[T], key func(T) K, opts ...BufferOption) Cursor[T] {
	return &sortCursor[T]{
		source: c,
		stage:  "sort_by",
		cfg:    newBufferConfig(opts),
		order: func(items []T) {
			for i, k := range sortKeyed(items, key, orderedCompare[K]) {
				items[i] = k.item
			}
		},
	}
}

// SortByFunc yields the items of c in ascending order according to compare,
// which must define a total order. The sort is stable.
//
// The first Next drains c completely, so c must be finite.
func SortByFunc[T any](c Cursor[T], compare func(a, b T) int, opts ...BufferOption) Cursor[T] {
	return &sortCursor[T]{
		source: c,
		stage:  "sort_by_func",
		cfg:    newBufferConfig(opts),
		order:  func(items []T) { slices.SortStableFunc(items, compare) },
	}
}

type sortCursor[T any] struct {
	source Cursor[T]
	stage  string
	cfg    bufferConfig
	order  func([]T)
	state  phase
	buf    []T
	pos    int
}

func (c *sortCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if c.state == unmaterialized {
		items, err := drain(ctx, c.source, c.stage, c.cfg)
		if err != nil {
			c.state = exhausted
			return result, false, err
		}
		c.order(items)
		c.buf = items
		c.state = draining
	}
	if c.state == exhausted || c.pos >= len(c.buf) {
		c.state = exhausted
		c.buf = nil
		return result, false, nil
	}
	val := c.buf[c.pos]
	c.buf[c.pos] = result
	c.pos++
	return val, true, nil
}

func (c *sortCursor[T]) Close() error {
	c.state = exhausted
	c.buf = nil
	return c.source.Close()
}

func (c *sortCursor[T]) Describe() (string, []any) { return c.stage, []any{c.source} }
