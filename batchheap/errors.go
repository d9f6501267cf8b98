package batchheap

import "errors"

// ErrInvalidBlockSize indicates a non-positive M was passed to New.
var ErrInvalidBlockSize = errors.New("batchheap: block size M must be >= 1")
