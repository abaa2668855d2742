package cursor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func subs(groups ...[]int) Cursor[Cursor[int]] {
	cs := make([]Cursor[int], len(groups))
	for i, g := range groups {
		cs[i] = FromSlice(g)
	}
	return FromSlice(cs)
}

func TestFlatten(t *testing.T) {
	got, err := Collect(context.Background(), Flatten(subs([]int{1, 2}, []int{3}, []int{4, 5, 6})))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestFlatten_SkipsConsecutiveEmptySubCursors(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]int
		want   []int
	}{
		{"no sub-cursors", nil, []int{}},
		{"all empty", [][]int{{}, {}, {}}, []int{}},
		{"leading empties", [][]int{{}, {}, {1}}, []int{1}},
		{"two empties in the middle", [][]int{{1}, {}, {}, {2, 3}}, []int{1, 2, 3}},
		{"trailing empties", [][]int{{1, 2}, {}, {}}, []int{1, 2}},
		{"alternating", [][]int{{}, {1}, {}, {2}, {}, {}, {}, {3}}, []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), Flatten(subs(tc.groups...)))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFlatten_ClosesExhaustedSubCursors(t *testing.T) {
	a := counting(1)
	b := counting[int]()
	outer := FromSlice([]Cursor[int]{a, b})
	got, err := Collect(context.Background(), Flatten(outer))
	require.NoError(t, err)
	require.Equal(t, []int{1}, got)
	require.True(t, a.closed)
	require.True(t, b.closed)
}

func TestFlatten_ReportsSubCursorCloseError(t *testing.T) {
	boom := errors.New("close failed")
	a := counting(1)
	a.closeErr = boom
	c := Flatten(FromSlice([]Cursor[int]{a, counting(2)}))

	for range 2 {
		_, ok, err := c.Next(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.True(t, a.closed)
	require.ErrorIs(t, c.Close(), boom)
	require.NoError(t, c.Close())
}

func TestFlatten_CloseReleasesCurrent(t *testing.T) {
	a := counting(1, 2, 3)
	c := Flatten(FromSlice([]Cursor[int]{a}))
	_, ok, err := c.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, c.Close())
	require.True(t, a.closed)
}

func TestFlatten_PropagatesSubCursorError(t *testing.T) {
	boom := errors.New("boom")
	failing := FromFunc(func(context.Context) (int, bool, error) { return 0, false, boom })
	got, err := Collect(context.Background(), Flatten(FromSlice([]Cursor[int]{FromSlice([]int{7}), failing})))
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{7}, got)
}

func TestFlatten_IsLazyOverOuter(t *testing.T) {
	n := 0
	outer := Generate(func() Cursor[int] {
		n++
		return FromSlice([]int{n, n})
	})
	got, err := Collect(context.Background(), Take(Flatten(outer), 3))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2}, got)
	require.Equal(t, 2, n)
}

func TestFlatMap(t *testing.T) {
	got, err := Collect(context.Background(), FlatMap(FromSlice([]int{1, 2, 3}), func(n int) Cursor[int] {
		return FromSlice([]int{n, n * 10})
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 10, 2, 20, 3, 30}, got)
}

func TestFlattenSlices(t *testing.T) {
	got, err := Collect(context.Background(), FlattenSlices(FromSlice([][]string{{"a"}, nil, {"b", "c"}})))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got)
}
