// Package demo holds the reference pipelines served by the seqkit CLI and
// HTTP API: a Fibonacci generator chain and a word counter.
package demo
