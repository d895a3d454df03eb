package sbitmap

// CacheLineSize reports the cache line size, in bytes, sbitmap assumes
// when padding words so concurrent callers in different words never
// contend on the same line.
//
// This is a diagnostic only. Word padding is always cacheLinePadBytes
// regardless of what this function reports, because the padding width
// must be a compile-time constant; CacheLineSize exists so a caller
// tuning thread placement or benchmark layout can sanity-check sbitmap's
// assumption against the running machine's actual line size where the
// platform exposes one.
func CacheLineSize() int {
	if sz := platformCacheLineSize(); sz > 0 {
		return sz
	}
	return cacheLinePadBytes
}
