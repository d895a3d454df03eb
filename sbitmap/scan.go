package sbitmap

// activeDepth returns the number of addressable bits in word idx: every
// word but the last holds BitsPerWord bits; the last word holds whatever
// remains of depth.
func (b *Bitmap) activeDepth(idx int) int {
	bpw := b.BitsPerWord()
	if idx == len(b.words)-1 {
		return b.depth - idx*bpw
	}
	return bpw
}

// claimInWord runs the word-local claim loop: search for a free run of
// width bits at or after h, try to atomically claim it, and on a lost
// race (another goroutine claimed an overlapping bit first) retry from
// the position just past the collision, without releasing anything this
// call never successfully claimed.
//
// The single-bit retry (width == 1) carries a quirk: it resets h to 0
// instead of continuing forward once h reaches depth-1, re-scanning the
// word from its start rather than running off the end. depth-1, not the
// word's own active depth, is deliberate here, not a typo: it matches
// the off-by-one boundary of the allocator this behavior is ported from,
// including on multi-word bitmaps where h almost never reaches it. Wider
// claims (width > 1) have no such carve-out and simply advance past the
// collision.
func (b *Bitmap) claimInWord(idx, h, width int) (int, bool) {
	d := b.activeDepth(idx)
	w := &b.words[idx]

	for {
		var (
			s  int
			ok bool
		)
		if width == 1 {
			s, ok = findFirstZero(w.load(), d, h)
		} else {
			s, ok = findZeroRun(w.load(), d, h, width)
		}
		if !ok {
			return 0, false
		}

		var claimed bool
		if width == 1 {
			claimed = w.tryClaimBit(s)
		} else {
			claimed = w.tryClaimMask(runMask(width, s))
		}
		if claimed {
			return (idx << b.shift) + s, true
		}

		h = s + 1
		if width == 1 && h >= b.depth-1 {
			h = 0
		}
	}
}

// scanWords implements the multi-word scan policy: visit
// up to len(words) words starting at startWord, wrapping via
// (i+1) mod len(words); only the first visited word uses startOffset,
// every other word starts its search at offset 0. When wrap is true and
// startOffset > 0, the first word gets one extra attempt from offset 0
// before the scan moves on, since the region below startOffset was never
// searched on the first pass.
func (b *Bitmap) scanWords(startWord, startOffset, width int, wrap bool) (int, bool) {
	n := len(b.words)
	if n == 0 {
		return 0, false
	}

	if bit, ok := b.claimInWord(startWord, startOffset, width); ok {
		return bit, true
	}
	if wrap && startOffset > 0 {
		if bit, ok := b.claimInWord(startWord, 0, width); ok {
			return bit, true
		}
	}

	for i, visited := (startWord+1)%n, 1; visited < n; i, visited = (i+1)%n, visited+1 {
		if bit, ok := b.claimInWord(i, 0, width); ok {
			return bit, true
		}
	}
	return 0, false
}
