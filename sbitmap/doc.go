// Package sbitmap implements a scalable, lock-free bit allocator: a
// concurrent data structure that allocates and releases integer
// identifiers in [0, Depth()), one or several at a time, using only
// atomic machine-word operations.
//
// # Layout
//
// A Bitmap shards its [Depth] bits across a small array of cache-line
// padded Words (see [BitsPerWord]). A caller-supplied hint steers which
// word and offset a search starts at; the hint is the only mechanism
// used to spread concurrent callers across distinct words and thereby
// avoid contending on the same cache line.
//
// # Concurrency
//
// Bitmap has no internal locks and performs no blocking, yielding, or
// waiting. Every operation is bounded by O(BitsPerWord * number of
// words) atomic reads/writes in the worst case. A hint is caller-owned:
// it must never be shared between goroutines. Threading a private hint
// through Get/Put from each goroutine is the only supported way to
// reduce contention between them; see [Bitmap.Get].
//
// # Error handling
//
// There is no error return on the hot path: [Bitmap.Get] and
// [Bitmap.GetBatch] report exhaustion as (0, false); [Bitmap.Put] and
// [Bitmap.PutBatch] with an out-of-range or word-spanning argument are
// silent no-ops. Only [New] can fail, and only for a genuinely invalid
// construction argument — the allocator has no logging channel and no
// way to propagate a fault once built.
package sbitmap
