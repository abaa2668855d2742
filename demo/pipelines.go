package demo

import (
	"slices"
	"strings"

	"github.com/kbukum/seqkit/cursor"
	apperrors "github.com/kbukum/seqkit/errors"
)

// Pipeline names accepted by Explain.
const (
	PipelineFibonacci = "fib"
	PipelineWordCount = "wordcount"
)

// Names lists the demo pipelines.
func Names() []string {
	return []string{PipelineFibonacci, PipelineWordCount}
}

// Explain renders the stage tree of a demo pipeline without running it.
func Explain(name string) (string, error) {
	switch name {
	case PipelineFibonacci:
		c := FibonacciPipeline(5)
		defer c.Close()
		return cursor.Explain(c), nil
	case PipelineWordCount:
		c := CountWords(cursor.FromSlice(SampleLines()))
		defer c.Close()
		return cursor.Explain(c), nil
	default:
		return "", apperrors.NotFound("pipeline", name).
			WithDetail("available", strings.Join(Names(), ", "))
	}
}

// IsPipeline reports whether name is a demo pipeline.
func IsPipeline(name string) bool {
	return slices.Contains(Names(), name)
}
