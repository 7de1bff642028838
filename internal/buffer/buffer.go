// Package buffer loads CSV input into a 64-byte aligned, padded allocation
// so the scanner's block path can safely read a whole block past the last
// real byte without a bounds check on every iteration.
package buffer

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/nnnkkk7/simdcsv"
)

// Padding is the number of extra zero bytes reserved past the loaded data,
// matching simdcsv.Scan's documented block-overread contract.
const Padding = 64

const alignment = 64

// Padded is a loaded file together with its padding. Data returns the
// logical, unpadded view; the padding bytes exist purely so the scanner's
// block reads never run past the end of the allocation.
type Padded struct {
	raw  []byte // alignment-sized over-allocation
	data []byte // aligned slice of len(original)+Padding into raw
	n    int    // length of the real (unpadded) data
}

// Data returns the loaded file content. Its backing array extends Padding
// zero bytes past len(Data()), satisfying simdcsv.Scan's overread contract.
func (p *Padded) Data() []byte { return p.data[:p.n] }

// Len returns the unpadded data length.
func (p *Padded) Len() int { return p.n }

// alignedSlice returns a length-n slice of buf whose address is a multiple
// of alignment; buf must have been allocated with at least n+alignment-1
// bytes of headroom.
func alignedSlice(buf []byte, n int) []byte {
	base := uintptr(unsafe.Pointer(&buf[0]))
	offset := (alignment - base%alignment) % alignment
	return buf[offset : offset+uintptr(n)]
}

// Load reads path into a newly allocated, cache-line aligned, padded buffer.
func Load(path string) (*Padded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("buffer: stat %s: %w", path, err)
	}
	n := info.Size()
	if n < 0 || uint64(n) >= simdcsv.MaxInputSize {
		return nil, simdcsv.ErrInputTooLarge
	}

	total := int(n) + Padding
	raw := make([]byte, total+alignment-1)
	data := alignedSlice(raw, int(n)+Padding)

	if n > 0 {
		if _, err := f.ReadAt(data[:n], 0); err != nil {
			return nil, fmt.Errorf("buffer: read %s: %w", path, err)
		}
	}

	return &Padded{raw: raw, data: data, n: int(n)}, nil
}

// FromBytes wraps an in-memory buffer in a freshly allocated, aligned,
// padded copy, for callers (tests, pipes) that do not have a path to Load.
func FromBytes(src []byte) *Padded {
	total := len(src) + Padding
	raw := make([]byte, total+alignment-1)
	data := alignedSlice(raw, total)
	copy(data, src)
	return &Padded{raw: raw, data: data, n: len(src)}
}
