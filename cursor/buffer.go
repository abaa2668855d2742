package cursor

import (
	"cmp"
	"context"
	"slices"

	apperrors "github.com/kbukum/seqkit/errors"
)

// BufferOption configures a buffering adapter.
type BufferOption func(*bufferConfig)

type bufferConfig struct {
	limit int
}

// WithLimit makes a buffering adapter fail with BUFFER_LIMIT_EXCEEDED when
// its input holds more than n items. Nothing is truncated: the stage yields
// no items at all once the limit is hit. n <= 0 disables the guard.
func WithLimit(n int) BufferOption {
	return func(cfg *bufferConfig) { cfg.limit = n }
}

func newBufferConfig(opts []BufferOption) bufferConfig {
	var cfg bufferConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// phase is the lifecycle of a buffering adapter. It only moves forward.
type phase uint8

const (
	unmaterialized phase = iota
	draining
	exhausted
)

// drain pulls source until it is exhausted. The context is checked between
// pulls so a deadline can stop a drain over an unbounded source.
func drain[T any](ctx context.Context, source Cursor[T], stage string, cfg bufferConfig) ([]T, error) {
	var items []T
	for {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.Canceled(stage, err)
		}
		val, ok, err := source.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		if cfg.limit > 0 && len(items) == cfg.limit {
			return nil, apperrors.BufferLimitExceeded(stage, cfg.limit)
		}
		items = append(items, val)
	}
}

type keyedItem[K, T any] struct {
	key  K
	item T
}

// sortKeyed computes each item's key once and stable-sorts by it.
func sortKeyed[K, T any](items []T, key func(T) K, compare func(a, b K) int) []keyedItem[K, T] {
	keyed := make([]keyedItem[K, T], len(items))
	for i, item := range items {
		keyed[i] = keyedItem[K, T]{key: key(item), item: item}
	}
	slices.SortStableFunc(keyed, func(a, b keyedItem[K, T]) int {
		return compare(a.key, b.key)
	})
	return keyed
}

func orderedCompare[K cmp.Ordered](a, b K) int { return cmp.Compare(a, b) }
