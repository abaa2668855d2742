package demo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqkit/cursor"
	apperrors "github.com/kbukum/seqkit/errors"
)

func TestFibonacciPrefix(t *testing.T) {
	got, err := cursor.Collect(context.Background(), cursor.Take(Fibonacci(), 19))
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181, 6765}, got)
}

func TestFibonacciStopsBeforeOverflow(t *testing.T) {
	n, err := cursor.Count(context.Background(), Fibonacci())
	require.NoError(t, err)
	require.Equal(t, 92, n)
}

func TestFibonacciMultiplesOfThree(t *testing.T) {
	multiples := cursor.Filter(Fibonacci(), func(n uint64) bool { return n%3 == 0 })
	got, err := cursor.Collect(context.Background(), cursor.Take(multiples, 5))
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 21, 144, 987, 6765}, got)
}

func TestFibonacciPipeline(t *testing.T) {
	got, err := cursor.Collect(context.Background(), FibonacciPipeline(5))
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 21, 20736, 987, 6765}, got)
}

func TestFibonacciPipelineZeroTake(t *testing.T) {
	got, err := cursor.Collect(context.Background(), FibonacciPipeline(0))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFibonacciPipelineMaxTake(t *testing.T) {
	got, err := cursor.Collect(context.Background(), FibonacciPipeline(MaxFibonacciTake))
	require.NoError(t, err)
	require.Len(t, got, MaxFibonacciTake)
	require.Equal(t, uint64(14930352*14930352), got[8])
}

func TestFibonacciPipelineOverflow(t *testing.T) {
	got, err := cursor.Collect(context.Background(), FibonacciPipeline(MaxFibonacciTake+1))
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput), "got %v", err)
	require.Len(t, got, MaxFibonacciTake)
}

func TestCountWordsSample(t *testing.T) {
	got, err := cursor.Collect(context.Background(), CountWords(cursor.FromSlice(SampleLines())))
	require.NoError(t, err)
	require.Equal(t, []WordCount{
		{"another", 1}, {"count", 1}, {"dear", 1}, {"friend", 1},
		{"hello", 2}, {"is", 1}, {"line", 1}, {"my", 1},
		{"test", 1}, {"this", 1}, {"to", 1}, {"words", 1},
		{"world", 3},
	}, got)
}

func TestCountWordsEmptyInput(t *testing.T) {
	got, err := cursor.Collect(context.Background(), CountWords(cursor.FromSlice([]string{"", "   ", "\t"})))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCountWordsLimit(t *testing.T) {
	c := CountWords(cursor.FromSlice(SampleLines()), cursor.WithLimit(5))
	got, err := cursor.Collect(context.Background(), c)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeBufferLimitExceeded), "got %v", err)
	require.Empty(t, got)
}

func TestSampleLinesIsACopy(t *testing.T) {
	lines := SampleLines()
	lines[0] = "changed"
	require.Equal(t, "hello world", SampleLines()[0])
}

func TestLines(t *testing.T) {
	c := Lines(strings.NewReader("hello world\nsecond line\n\nlast"))
	got, err := cursor.Collect(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, []string{"hello world", "second line", "", "last"}, got)
}

func TestLinesReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	c := Lines(&failingReader{data: "one\n", err: boom})
	val, ok, err := c.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "one", val)

	_, ok, err = c.Next(context.Background())
	require.False(t, ok)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeSourceFailed))
	require.ErrorIs(t, err, boom)

	_, ok, err = c.Next(context.Background())
	require.False(t, ok)
	require.NoError(t, err)
}

func TestLinesReadErrorDropsPartialLine(t *testing.T) {
	boom := errors.New("connection reset")
	c := Lines(&failingReader{data: "hello wor", err: boom})
	_, ok, err := c.Next(context.Background())
	require.False(t, ok)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeSourceFailed), "got %v", err)
	require.ErrorIs(t, err, boom)
}

func TestCountWordsReadErrorBeatsBufferLimit(t *testing.T) {
	boom := errors.New("connection reset")
	c := CountWords(Lines(&failingReader{data: "a b c d e f", err: boom}), cursor.WithLimit(2))
	got, err := cursor.Collect(context.Background(), c)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeSourceFailed), "got %v", err)
	require.ErrorIs(t, err, boom)
	require.Empty(t, got)
}

func TestLinesNoTrailingNewline(t *testing.T) {
	got, err := cursor.Collect(context.Background(), Lines(strings.NewReader("first\nlast")))
	require.NoError(t, err)
	require.Equal(t, []string{"first", "last"}, got)
}

func TestLinesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := Lines(strings.NewReader("a\n")).Next(ctx)
	require.False(t, ok)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeCanceled))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCountWordsFromReader(t *testing.T) {
	input := strings.Join(SampleLines(), "\n")
	got, err := cursor.Collect(context.Background(), CountWords(Lines(strings.NewReader(input))))
	require.NoError(t, err)
	require.Len(t, got, 13)
	require.Equal(t, WordCount{"world", 3}, got[12])
	require.Equal(t, "(world,3)", got[12].String())
}

func TestExplain(t *testing.T) {
	out, err := Explain(PipelineFibonacci)
	require.NoError(t, err)
	for _, stage := range []string{"take(5)", "try_map", "filter", "from_func"} {
		require.Contains(t, out, stage)
	}
	require.True(t, strings.HasPrefix(out, "take(5)"))

	out, err = Explain(PipelineWordCount)
	require.NoError(t, err)
	for _, stage := range []string{"map", "group_by", "flatten", "from_slice(4)"} {
		require.Contains(t, out, stage)
	}

	_, err = Explain("primes")
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestIsPipeline(t *testing.T) {
	require.True(t, IsPipeline("fib"))
	require.True(t, IsPipeline("wordcount"))
	require.False(t, IsPipeline("primes"))
}

// failingReader returns data once and then err.
type failingReader struct {
	data string
	err  error
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, r.err
	}
	r.read = true
	return copy(p, r.data), nil
}
