package cursor

import "context"

// Cursor is a single-pass, stateful pull source of items.
type Cursor[T any] interface {
	// Next returns the next item. It returns (zero, false, nil) once the
	// cursor is exhausted and keeps doing so on every later call.
	Next(ctx context.Context) (T, bool, error)
	// Close releases the cursor and every cursor it owns.
	Close() error
}

// Describer is implemented by cursors that can report their stage name and
// the cursors they read from. Explain uses it to draw a pipeline.
type Describer interface {
	Describe() (name string, inputs []any)
}

// --- Terminals ---

// Collect pulls c until it is exhausted and returns every item in yield
// order. An empty cursor yields an empty, non-nil slice. The items pulled
// before an error are returned alongside it. Collect closes c.
func Collect[T any](ctx context.Context, c Cursor[T]) ([]T, error) {
	defer c.Close()
	result := make([]T, 0)
	for {
		val, ok, err := c.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls every item and calls fn for each. It stops at the first
// error from either the cursor or fn. ForEach closes c.
func ForEach[T any](ctx context.Context, c Cursor[T], fn func(T) error) error {
	defer c.Close()
	for {
		val, ok, err := c.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(val); err != nil {
			return err
		}
	}
}

// Count drains c and returns the number of items it yielded.
func Count[T any](ctx context.Context, c Cursor[T]) (int, error) {
	n := 0
	err := ForEach(ctx, c, func(T) error {
		n++
		return nil
	})
	return n, err
}

// Reduce folds every item into an accumulator starting at init.
func Reduce[T, R any](ctx context.Context, c Cursor[T], init R, fn func(R, T) R) (R, error) {
	acc := init
	err := ForEach(ctx, c, func(val T) error {
		acc = fn(acc, val)
		return nil
	})
	return acc, err
}

// First pulls a single item and closes c. ok is false when c was empty.
func First[T any](ctx context.Context, c Cursor[T]) (val T, ok bool, err error) {
	defer c.Close()
	return c.Next(ctx)
}
