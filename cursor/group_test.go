package cursor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/kbukum/seqkit/errors"
)

func TestGroupBy(t *testing.T) {
	in := []string{"banana", "apple", "cherry", "avocado", "blueberry"}
	got, err := Collect(context.Background(), GroupBy(FromSlice(in), func(s string) byte { return s[0] }))
	require.NoError(t, err)
	require.Equal(t, []Group[byte, string]{
		{Key: 'a', Items: []string{"apple", "avocado"}},
		{Key: 'b', Items: []string{"banana", "blueberry"}},
		{Key: 'c', Items: []string{"cherry"}},
	}, got)
}

func TestGroupBy_Properties(t *testing.T) {
	in := []record{{2, "a"}, {0, "b"}, {2, "c"}, {1, "d"}, {0, "e"}, {2, "f"}, {5, "g"}}
	got, err := Collect(context.Background(), GroupBy(FromSlice(append([]record(nil), in...)), func(r record) int { return r.key }))
	require.NoError(t, err)

	total := 0
	for i, g := range got {
		if i > 0 {
			require.Less(t, got[i-1].Key, g.Key, "groups must be ascending by distinct key")
		}
		// members keep input order
		pos := -1
		for _, item := range g.Items {
			require.Equal(t, g.Key, item.key)
			idx := indexOf(in, item)
			require.Greater(t, idx, pos)
			pos = idx
		}
		total += len(g.Items)
	}
	require.Equal(t, len(in), total)
}

func indexOf(items []record, r record) int {
	for i, it := range items {
		if it == r {
			return i
		}
	}
	return -1
}

func TestGroupBy_Empty(t *testing.T) {
	got, err := Collect(context.Background(), GroupBy(Empty[int](), func(n int) int { return n }))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGroupBy_StateMachine(t *testing.T) {
	src := counting("x", "y", "x")
	c := GroupBy[string](src, func(s string) string { return s }).(*groupCursor[string, string])
	require.Equal(t, unmaterialized, c.state)

	g, ok, err := c.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Group[string, string]{Key: "x", Items: []string{"x", "x"}}, g)
	require.Equal(t, draining, c.state)

	_, ok, _ = c.Next(context.Background())
	require.True(t, ok)
	_, ok, _ = c.Next(context.Background())
	require.False(t, ok)
	require.Equal(t, exhausted, c.state)
	require.Equal(t, 4, src.pulls)
}

func TestGroupByFunc_CaseInsensitive(t *testing.T) {
	in := []string{"Go", "rust", "GO", "Rust", "zig", "go"}
	got, err := Collect(context.Background(), GroupByFunc(FromSlice(in),
		func(s string) string { return s },
		func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) },
	))
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Go", got[0].Key, "a group is keyed by its first member's key")
	require.Equal(t, []string{"Go", "GO", "go"}, got[0].Items)
	require.Equal(t, []string{"rust", "Rust"}, got[1].Items)
	require.Equal(t, []string{"zig"}, got[2].Items)
}

func TestGroupBy_Limit(t *testing.T) {
	_, err := Collect(context.Background(), GroupBy(FromSlice([]int{1, 2, 3, 4}), func(n int) int { return n % 2 }, WithLimit(3)))
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeBufferLimitExceeded))
}

func TestGroup_String(t *testing.T) {
	require.Equal(t, "k:[1 2]", Group[string, int]{Key: "k", Items: []int{1, 2}}.String())
}
