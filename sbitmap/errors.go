package sbitmap

import "errors"

// Construction errors. These are the only fallible operations in the
// package: once a Bitmap exists, Get/Put/GetBatch/PutBatch never return
// an error (see doc.go and limits.go).
var (
	// ErrNegativeDepth is returned by New when depth < 0.
	ErrNegativeDepth = errors.New("sbitmap: depth must be >= 0")

	// ErrInvalidShift is returned by New when an explicit WithShift value
	// exceeds maxShift, i.e. would need more than BitsPerWord bits per word.
	ErrInvalidShift = errors.New("sbitmap: shift must be between 0 and log2(BitsPerWord)")
)
