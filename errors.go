package simdcsv

import "errors"

// ErrInputTooLarge is returned by callers that bound input size before
// calling Scan — Scan's offsets are 32-bit, so buffers of length >= 1<<32
// cannot be indexed. Scan itself never returns an error; this sentinel is
// returned by internal/buffer's loader, which sits in front of Scan and
// rejects oversized input before it ever reaches the scanner (the CLI
// driver reports that error as a load failure).
var ErrInputTooLarge = errors.New("simdcsv: input exceeds maximum offset range (1<<32 bytes)")

// MaxInputSize is the exclusive upper bound on input length: inputs must be
// shorter than MaxInputSize bytes.
const MaxInputSize = 1 << 32
