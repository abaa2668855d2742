// Package cursor provides lazy, composable, pull-based sequence adapters.
//
// A Cursor is a single-pass pull source. Adapters wrap a cursor and transform
// what it yields; no work happens until a terminal operation (Collect,
// ForEach, Count, Reduce, First) pulls the outermost cursor, which in turn
// pulls the cursors beneath it one item at a time.
//
// # Ownership
//
// Every adapter takes ownership of the cursor passed to it. After wrapping,
// the caller must not pull, keep or close the inner cursor; closing the
// outermost cursor closes the whole chain. Dropping an in-memory pipeline
// without closing it is fine.
//
// # Adapters
//
// Lazy (one output per pull, no read-ahead):
//
//   - Map, TryMap: transform each item
//   - Filter: keep items matching a predicate
//   - Take: stop after k items without draining the source
//   - Flatten, FlatMap, FlattenSlices: concatenate sub-sequences
//   - Tap: side effect, item passes through
//   - Concat: join cursors end to end
//   - Chunk: group consecutive items into fixed-size slices
//
// Buffering (drain the whole input on the first pull):
//
//   - SortBy, SortByFunc: stable ascending order by key
//   - GroupBy, GroupByFunc: partition by key, groups ascending by key
//
// Buffering adapters require a finite input. Applied to an unbounded source
// they never finish their first pull unless the context is cancelled or a
// WithLimit guard is set; put a Take in front of them instead.
//
// # Usage
//
//	fib := cursor.Generate(nextFib)
//	multiples := cursor.Filter(fib, func(n uint64) bool { return n%3 == 0 })
//	firstFive := cursor.Take(multiples, 5)
//	values, err := cursor.Collect(ctx, firstFive)
//
// Explain renders the adapter chain of a cursor as a tree, which is handy
// when pipelines are assembled at runtime.
package cursor
