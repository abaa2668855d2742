package demo

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"github.com/kbukum/seqkit/cursor"
	apperrors "github.com/kbukum/seqkit/errors"
)

// MaxFibonacciTake is the largest take FibonacciPipeline serves without
// overflowing: the 12th multiple of 3 in the sequence is even and its
// square does not fit in a uint64.
const MaxFibonacciTake = 11

// Fibonacci yields the running sums 1, 2, 3, 5, 8, 13, ... The cursor is
// unbounded for all practical purposes; it ends only when the next sum
// would overflow a uint64.
func Fibonacci() cursor.Cursor[uint64] {
	var first, second uint64 = 0, 1
	return cursor.FromFunc(func(context.Context) (uint64, bool, error) {
		if first > math.MaxUint64-second {
			return 0, false, nil
		}
		next := first + second
		first, second = second, next
		return next, true, nil
	})
}

// FibonacciPipeline keeps the multiples of 3, squares the even ones and
// takes the first take results. take 5 yields [3 21 20736 987 6765].
func FibonacciPipeline(take int) cursor.Cursor[uint64] {
	multiples := cursor.Filter(Fibonacci(), func(n uint64) bool { return n%3 == 0 })
	squared := cursor.TryMap(multiples, squareIfEven)
	return cursor.Take(squared, take)
}

func squareIfEven(_ context.Context, n uint64) (uint64, error) {
	if n%2 != 0 {
		return n, nil
	}
	hi, lo := bits.Mul64(n, n)
	if hi != 0 {
		return 0, apperrors.InvalidInput("take", fmt.Sprintf("square of %d overflows uint64", n))
	}
	return lo, nil
}
