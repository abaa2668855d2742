package cursor

import (
	"cmp"
	"context"
	"fmt"
)

// Group is one partition produced by GroupBy: a key and the items that
// mapped to it, in their original relative order.
type Group[K, T any] struct {
	Key   K
	Items []T
}

// String implements fmt.Stringer.
func (g Group[K, T]) String() string {
	return fmt.Sprintf("%v:%v", g.Key, g.Items)
}

// GroupBy partitions the items of c by key and yields one Group per
// distinct key, in ascending key order.
//
// The first Next drains c completely, so c must be finite.
func GroupBy[T any, K cmp.Ordered](c Cursor[T], key func(T) K, opts ...BufferOption) Cursor[Group[K, T]] {
	return newGroupCursor(c, "group_by", key, orderedCompare[K], opts)
}

// GroupByFunc is GroupBy for keys ordered by compare. Two keys belong to the
// same group when compare returns 0 for them.
func GroupByFunc[T, K any](c Cursor[T], key func(T) K, compare func(a, b K) int, opts ...BufferOption) Cursor[Group[K, T]] {
	return newGroupCursor(c, "group_by_func", key, compare, opts)
}

func newGroupCursor[T, K any](c Cursor[T], stage string, key func(T) K, compare func(a, b K) int, opts []BufferOption) *groupCursor[K, T] {
	return &groupCursor[K, T]{
		source:  c,
		stage:   stage,
		key:     key,
		compare: compare,
		cfg:     newBufferConfig(opts),
	}
}

type groupCursor[K, T any] struct {
	source  Cursor[T]
	stage   string
	key     func(T) K
	compare func(a, b K) int
	cfg     bufferConfig
	state   phase
	groups  []Group[K, T]
	pos     int
}

func (c *groupCursor[K, T]) Next(ctx context.Context) (result Group[K, T], ok bool, err error) {
	if c.state == unmaterialized {
		items, err := drain(ctx, c.source, c.stage, c.cfg)
		if err != nil {
			c.state = exhausted
			return result, false, err
		}
		c.groups = c.partition(items)
		c.state = draining
	}
	if c.state == exhausted || c.pos >= len(c.groups) {
		c.state = exhausted
		c.groups = nil
		return result, false, nil
	}
	g := c.groups[c.pos]
	c.groups[c.pos] = result
	c.pos++
	return g, true, nil
}

// partition stable-sorts by key and splits the result into runs of equal
// keys, which keeps members in input order and groups in key order.
func (c *groupCursor[K, T]) partition(items []T) []Group[K, T] {
	keyed := sortKeyed(items, c.key, c.compare)
	var groups []Group[K, T]
	for i, k := range keyed {
		if i == 0 || c.compare(groups[len(groups)-1].Key, k.key) != 0 {
			groups = append(groups, Group[K, T]{Key: k.key})
		}
		last := &groups[len(groups)-1]
		last.Items = append(last.Items, k.item)
	}
	return groups
}

func (c *groupCursor[K, T]) Close() error {
	c.state = exhausted
	c.groups = nil
	return c.source.Close()
}

func (c *groupCursor[K, T]) Describe() (string, []any) { return c.stage, []any{c.source} }
