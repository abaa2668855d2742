package demo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/kbukum/seqkit/cursor"
	apperrors "github.com/kbukum/seqkit/errors"
)

// WordCount is the number of times Word occurred.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (w WordCount) String() string { return fmt.Sprintf("(%s,%d)", w.Word, w.Count) }

var sampleLines = []string{
	"hello world",
	"world hello my dear friend",
	"this is world another line",
	"to test count words",
}

// SampleLines returns the built-in word count input.
func SampleLines() []string {
	return slices.Clone(sampleLines)
}

// Lines yields r line by line. Read errors surface from Next as
// SOURCE_FAILED; the partial line read before the error is never yielded.
// The reader is not closed.
func Lines(r io.Reader) cursor.Cursor[string] {
	src := &errReader{r: r}
	return &lineCursor{scanner: bufio.NewScanner(src), src: src}
}

// errReader records the first read error other than io.EOF.
type errReader struct {
	r   io.Reader
	err error
}

func (e *errReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil && err != io.EOF && e.err == nil {
		e.err = err
	}
	return n, err
}

type lineCursor struct {
	scanner *bufio.Scanner
	src     *errReader
	done    bool
}

func (c *lineCursor) Next(ctx context.Context) (string, bool, error) {
	if c.done {
		return "", false, nil
	}
	if err := ctx.Err(); err != nil {
		c.done = true
		return "", false, apperrors.Canceled("lines", err)
	}
	if c.scanner.Scan() && c.src.err == nil {
		return c.scanner.Text(), true, nil
	}
	c.done = true
	if err := c.src.err; err != nil {
		return "", false, apperrors.SourceFailed("lines", err)
	}
	if err := c.scanner.Err(); err != nil {
		return "", false, apperrors.SourceFailed("lines", err)
	}
	return "", false, nil
}

func (c *lineCursor) Close() error {
	c.done = true
	return nil
}

func (c *lineCursor) Describe() (string, []any) { return "lines", nil }

type wordOne struct {
	word  string
	count int
}

// CountWords splits each line on whitespace, pairs every word with 1, groups
// by word and sums each group. Results come out in ascending word order.
// opts bound the grouping buffer.
func CountWords(lines cursor.Cursor[string], opts ...cursor.BufferOption) cursor.Cursor[WordCount] {
	words := cursor.FlattenSlices(cursor.Map(lines, strings.Fields))
	pairs := cursor.Map(words, func(w string) wordOne { return wordOne{word: w, count: 1} })
	groups := cursor.GroupBy(pairs, func(p wordOne) string { return p.word }, opts...)
	return cursor.Map(groups, func(g cursor.Group[string, wordOne]) WordCount {
		total := 0
		for _, p := range g.Items {
			total += p.count
		}
		return WordCount{Word: g.Key, Count: total}
	})
}
