package cursor

import (
	"context"
	"fmt"
)

// Chunk groups consecutive items into slices of the given size. The final
// chunk may be smaller. Every chunk has its own backing array, so callers may
// keep chunks they receive.
//
// Chunk panics if size is not positive.
func Chunk[T any](c Cursor[T], size int) Cursor[[]T] {
	if size <= 0 {
		panic("cursor.Chunk: size must be positive")
	}
	return &chunkCursor[T]{source: c, size: size}
}

type chunkCursor[T any] struct {
	source Cursor[T]
	size   int
	done   bool
}

func (c *chunkCursor[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if c.done {
		return nil, false, nil
	}
	batch := make([]T, 0, c.size)
	for len(batch) < c.size {
		val, ok, err := c.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			c.done = true
			break
		}
		batch = append(batch, val)
	}
	if len(batch) == 0 {
		return nil, false, nil
	}
	return batch, true, nil
}

func (c *chunkCursor[T]) Close() error { return c.source.Close() }

func (c *chunkCursor[T]) Describe() (string, []any) {
	return fmt.Sprintf("chunk(%d)", c.size), []any{c.source}
}
