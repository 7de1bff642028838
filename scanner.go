// Package simdcsv locates CSV record and field boundaries in a byte buffer,
// honoring RFC 4180 double-quote escaping, without materializing fields.
//
// Scan walks buf once and returns the ordered offsets of every ',' or '\n'
// byte that lies outside a quoted region. It is a structural indexer, not a
// decoder: callers re-read buf at each returned offset to recover field and
// record boundaries, unescape quoted content, and so on.
package simdcsv

// capacityDivisor is the heuristic used to size the output slice: typical
// CSV has roughly one structural separator per ten bytes. It is not
// binding — Scan grows the slice normally if the real density is higher.
const capacityDivisor = 10

// minBlockInput is the smallest input length the block scanner will accept;
// below it, the scalar tail runs over the whole buffer. A caller may
// equivalently never enter the block path at all by supplying fewer than
// blockSize bytes.
const minBlockInput = blockSize

// pipelineThreshold is the minimum remaining length, in bytes, at which the
// software-pipelined 4-block scanner is used instead of the simple
// one-block-at-a-time loop.
const pipelineThreshold = pipelineBlocks * blockSize

// Scan returns the ordered offsets of every structural separator (',' or
// '\n') in buf that lies outside an RFC 4180 quoted region.
//
// buf's backing storage must be readable for at least len(buf)+64 bytes;
// see internal/buffer for a loader that satisfies this contract. Callers
// who cannot guarantee the pad should pass a slice of length < 64, which
// always takes the byte-at-a-time path and never reads past buf itself.
//
// An input ending inside an unterminated quoted region is accepted
// silently: bytes after the last opening quote emit no further offsets.
func Scan(buf []byte) []uint32 {
	return AppendScan(make([]uint32, 0, len(buf)/capacityDivisor), buf)
}

// AppendScan is Scan but appends to (and may reuse the capacity of) dst,
// for callers that want to reuse an allocation across repeated calls —
// the scanner itself carries no state between calls regardless.
func AppendScan(dst []uint32, buf []byte) []uint32 {
	if len(buf) < minBlockInput {
		dst, _ = scanTail(dst, buf, 0, false)
		return dst
	}

	var carry uint64
	var consumed int
	if len(buf) >= pipelineThreshold {
		dst, consumed, carry = scanBlocksPipelined(dst, buf, carry)
	}
	// scanBlocksPipelined only consumes whole groups of pipelineBlocks
	// blocks; scanBlocksSimple mops up anything left that is still a full
	// block, then scanTail handles the final partial block.
	var moreConsumed int
	dst, moreConsumed, carry = scanBlocksSimple(dst, buf[consumed:], carry)
	consumed += moreConsumed

	dst, _ = scanTail(dst, buf[consumed:], uint32(consumed), carry != 0)
	return dst
}
