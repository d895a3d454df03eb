package sbitmap

import "sync/atomic"

// word is a single cache-line-padded atomic machine word holding up to
// BitsPerWord allocation bits. Bit value 1 means allocated, 0 means free.
//
// All mutation goes through CompareAndSwap retry loops rather than a
// mutex, so two goroutines claiming bits in different words never block
// each other and never touch a lock shared with any other word.
type word struct {
	bits atomic.Uint64
	_    [cacheLinePadBytes - 8]byte // prevents false sharing with the next word
}

// tryClaimBit atomically claims bit offset o, unconditionally setting it.
// It reports whether the bit's previous value was zero, i.e. whether the
// claim is this caller's alone.
func (w *word) tryClaimBit(o int) bool {
	return w.tryClaimMask(uint64(1) << uint(o))
}

// tryClaimMask atomically ORs mask into the word and reports whether none
// of mask's bits were previously set.
//
// The OR happens unconditionally, even when some bits in mask were
// already set: a partial collision still sets the word's free bits that
// fall within mask. Callers must not "clean up" bits a failed claim did
// not actually own — see DESIGN.md's note on this deliberate race
// behavior.
func (w *word) tryClaimMask(mask uint64) bool {
	for {
		old := w.bits.Load()
		if w.bits.CompareAndSwap(old, old|mask) {
			return old&mask == 0
		}
	}
}

// release atomically clears every bit set in mask.
func (w *word) release(mask uint64) {
	for {
		old := w.bits.Load()
		if w.bits.CompareAndSwap(old, old&^mask) {
			return
		}
	}
}

// load returns a Relaxed-ordering snapshot of the word's bits, for
// TestBit and Weight, which make no ordering promise beyond "some point
// between call entry and exit".
func (w *word) load() uint64 {
	return w.bits.Load()
}
