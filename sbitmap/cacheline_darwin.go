//go:build darwin

package sbitmap

import "golang.org/x/sys/unix"

// platformCacheLineSize queries the running machine's cache line size via
// sysctl. It returns 0 (letting CacheLineSize fall back to the compile-time
// constant) if the sysctl is unavailable.
func platformCacheLineSize() int {
	sz, err := unix.SysctlUint32("hw.cachelinesize")
	if err != nil {
		return 0
	}
	return int(sz)
}
