package simdcsv

// blockSize is the number of bytes processed per SIMD-sized step: the two
// 256-bit loads of the wide-vector path cover exactly 64 bytes, and the
// portable path compares the same 64 bytes one at a time.
const blockSize = 64

// pipelineBlocks is the number of blocks processed per outer iteration by
// the software-pipelined variant.
const pipelineBlocks = 4

// blockMasks loads one blockSize-byte block starting at data[0] (data must
// have len(data) >= blockSize) and returns:
//   - quote: bit i set iff byte i of the block is '"'
//   - structural: bit i set iff byte i of the block is ',' or '\n'
//
// This is the only platform-specific operation in the whole scanner (the
// block loader and block comparator are fused into one call so the
// wide-vector build only has to materialize the 64-byte vector once).
// Its two implementations live in block_masks_amd64_simd.go (the real
// vectorized path, gated behind goexperiment.simd && amd64) and
// block_masks_portable.go (the fallback compiled everywhere else); exactly
// one of the two build tags is active for any given build.

// scanBlocksSimple processes buf in blockSize-byte blocks one at a time,
// threading the inside-quote carry across blocks. It returns the extended
// offsets slice, the number of bytes consumed (always a multiple of
// blockSize), and the final carry state.
func scanBlocksSimple(dst []uint32, buf []byte, carry uint64) ([]uint32, int, uint64) {
	idx := 0
	for idx+blockSize <= len(buf) {
		quote, structural := blockMasks(buf[idx : idx+blockSize])
		region, nextCarry := buildQuoteMask(quote, carry)
		carry = nextCarry
		dst = flattenMask(dst, uint32(idx), structural&^region)
		idx += blockSize
	}
	return dst, idx, carry
}

// scanBlocksPipelined processes buf pipelineBlocks blocks per outer step.
// All four blocks' masks are computed first — threading the carry
// sequentially across them, since each block's quote state genuinely
// depends on the previous block's — and only then are all four flattened.
// Deferring the flatten step (rather than interleaving compute/flatten per
// block, as scanBlocksSimple does) is the one observable difference from
// the simple loop; the emitted offsets are identical either way. A real
// prefetch instruction (the source's T0 hint) has no portable Go
// equivalent and is intentionally omitted rather than faked.
func scanBlocksPipelined(dst []uint32, buf []byte, carry uint64) ([]uint32, int, uint64) {
	idx := 0
	var bases [pipelineBlocks]uint32
	var structural [pipelineBlocks]uint64
	for idx+pipelineBlocks*blockSize <= len(buf) {
		for b := 0; b < pipelineBlocks; b++ {
			off := idx + b*blockSize
			quote, s := blockMasks(buf[off : off+blockSize])
			region, nextCarry := buildQuoteMask(quote, carry)
			carry = nextCarry
			bases[b] = uint32(off)
			structural[b] = s &^ region
		}
		for b := 0; b < pipelineBlocks; b++ {
			dst = flattenMask(dst, bases[b], structural[b])
		}
		idx += pipelineBlocks * blockSize
	}
	return dst, idx, carry
}
