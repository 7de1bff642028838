package simdcsv

// buildQuoteMask converts quoteBits — the 64-bit bitmap of '"' positions in
// the current block, bit i set iff byte i is a quote — into the 64-bit
// "inside a quoted region" bitmap for that block.
//
// carryIn is the inside-quote state at the start of the block: all-ones if
// the previous block ended inside a quoted region, all-zeros otherwise. The
// returned carryOut is the corresponding state for the start of the next
// block (bit 63 of region, sign-extended to 64 bits).
//
// This is the sole quote-region implementation: it is shared by every
// platform build. Only the byte-level block load/compare (blockMasks, in
// block_masks_amd64_simd.go or block_masks_portable.go) differs per
// platform; nothing here is platform-specific, keeping vector register
// types from leaking out of the block loader.
func buildQuoteMask(quoteBits, carryIn uint64) (region, carryOut uint64) {
	region = prefixXor(quoteBits) ^ carryIn
	carryOut = uint64(int64(region) >> 63)
	return region, carryOut
}
