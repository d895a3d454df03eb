package sbitmap

import "math/bits"

// findFirstZero returns the position of the first zero bit in w, among
// the low d bits (d <= BitsPerWord), at or after start. ok is false if
// no such bit exists.
//
// Pure function: it inspects a snapshot of w and never mutates anything.
func findFirstZero(w uint64, d, start int) (pos int, ok bool) {
	if start < 0 {
		start = 0
	}
	if start >= d {
		return 0, false
	}
	if start > 0 {
		w |= (uint64(1) << uint(start)) - 1
	}
	if w == ^uint64(0) {
		return 0, false
	}
	k := bits.TrailingZeros64(^w)
	if k < d {
		return k, true
	}
	return 0, false
}

// findZeroRun returns the smallest start s in [start, d-n] such that the
// n-bit window [s, s+n) of w is entirely zero. ok is false if d < n,
// start > d-n, or no such window exists.
//
// Pure function; never spans past d, so a caller can never observe a run
// crossing into bits beyond a word's active depth.
func findZeroRun(w uint64, d, start, n int) (pos int, ok bool) {
	if n <= 0 || d < n || start > d-n {
		return 0, false
	}

	// z has a 1 wherever w is free. Reduce z via binary doubling so that
	// bit s of free ends up set iff z[s:s+n] are all 1, in O(log n) steps
	// instead of testing each candidate start individually.
	z := ^w
	free := z
	for covered := 1; covered < n; {
		step := covered
		if step > n-covered {
			step = n - covered
		}
		free &= free >> uint(step)
		covered += step
	}

	lastStart := d - n
	rangeLen := lastStart - start + 1
	var rangeMask uint64
	if rangeLen >= BitsPerWord {
		rangeMask = ^uint64(0)
	} else {
		rangeMask = ((uint64(1) << uint(rangeLen)) - 1) << uint(start)
	}

	candidates := free & rangeMask
	if candidates == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(candidates), true
}

// runMask returns the n-bit mask ((1<<n)-1)<<start, i.e. the mask a batch
// claim or release of width n starting at start operates on.
func runMask(n, start int) uint64 {
	return ((uint64(1) << uint(n)) - 1) << uint(start)
}
