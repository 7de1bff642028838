package simdcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
)

// generateSimpleCSV builds rows of unquoted fields, none of which contain a
// comma or newline, so every separator in the output is structural.
func generateSimpleCSV(rows, cols int) []byte {
	var buf bytes.Buffer
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "field%d_%d", r, c)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// generateQuotedCSV wraps every field in double quotes and embeds a comma
// inside each one, so most raw ',' bytes are inside a quoted region.
func generateQuotedCSV(rows, cols int) []byte {
	var buf bytes.Buffer
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, `"field,%d_%d"`, r, c)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// generateMixedCSV alternates quoted and unquoted fields within each row.
func generateMixedCSV(rows, cols int) []byte {
	var buf bytes.Buffer
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				buf.WriteByte(',')
			}
			if c%2 == 0 {
				fmt.Fprintf(&buf, `"field,%d_%d"`, r, c)
			} else {
				fmt.Fprintf(&buf, "field%d_%d", r, c)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// generateEscapedQuotesCSV embeds RFC 4180 "" escapes inside quoted fields.
func generateEscapedQuotesCSV(rows, cols int) []byte {
	var buf bytes.Buffer
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, `"field""%d_%d"""`, r, c)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func benchmarkScan(b *testing.B, data []byte) {
	b.Helper()
	b.SetBytes(int64(len(data)))
	padded := withPad(data)
	dst := make([]uint32, 0, len(data)/capacityDivisor)
	for b.Loop() {
		dst = AppendScan(dst[:0], padded)
	}
}

func BenchmarkScan_Simple_1K(b *testing.B)  { benchmarkScan(b, generateSimpleCSV(1000, 10)) }
func BenchmarkScan_Simple_10K(b *testing.B) { benchmarkScan(b, generateSimpleCSV(10000, 10)) }
func BenchmarkScan_Simple_100K(b *testing.B) {
	benchmarkScan(b, generateSimpleCSV(100000, 10))
}

func BenchmarkScan_Quoted_1K(b *testing.B)  { benchmarkScan(b, generateQuotedCSV(1000, 10)) }
func BenchmarkScan_Quoted_10K(b *testing.B) { benchmarkScan(b, generateQuotedCSV(10000, 10)) }
func BenchmarkScan_Quoted_100K(b *testing.B) {
	benchmarkScan(b, generateQuotedCSV(100000, 10))
}

func BenchmarkScan_Mixed_1K(b *testing.B)  { benchmarkScan(b, generateMixedCSV(1000, 10)) }
func BenchmarkScan_Mixed_10K(b *testing.B) { benchmarkScan(b, generateMixedCSV(10000, 10)) }

func BenchmarkScan_EscapedQuotes_1K(b *testing.B) {
	benchmarkScan(b, generateEscapedQuotesCSV(1000, 10))
}
func BenchmarkScan_EscapedQuotes_10K(b *testing.B) {
	benchmarkScan(b, generateEscapedQuotesCSV(10000, 10))
}

// BenchmarkScan_vs_StdlibReadAll compares Scan's structural pass against a
// full encoding/csv decode of the same input, to keep the expected
// index-only speedup honest rather than assumed.
func BenchmarkScan_vs_StdlibReadAll(b *testing.B) {
	data := generateMixedCSV(10000, 10)
	b.Run("simdcsv.Scan", func(b *testing.B) {
		benchmarkScan(b, data)
	})
	b.Run("encoding/csv.ReadAll", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for b.Loop() {
			r := csv.NewReader(bytes.NewReader(data))
			r.FieldsPerRecord = -1
			_, _ = r.ReadAll()
		}
	})
}

// BenchmarkAppendScanReuse measures the cost of repeatedly reusing one
// destination slice's backing array, the pattern a streaming caller would
// use instead of allocating fresh on every call.
func BenchmarkAppendScanReuse(b *testing.B) {
	data := withPad(generateSimpleCSV(10000, 10))
	dst := make([]uint32, 0, len(data)/capacityDivisor)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		dst = AppendScan(dst[:0], data)
	}
}

func BenchmarkBlockMasks(b *testing.B) {
	var block [blockSize]byte
	copy(block[:], []byte(`"field1","field2","field3","field4","field5","field6","fie"`))
	for b.Loop() {
		blockMasks(block[:])
	}
}

func BenchmarkBuildQuoteMask(b *testing.B) {
	quoteBits := uint64(0b0100010001000100010001000100010001000100010001000100010001000100)
	var carry uint64
	for b.Loop() {
		_, carry = buildQuoteMask(quoteBits, carry)
	}
}

func BenchmarkFlattenMask(b *testing.B) {
	cases := []struct {
		name string
		mask uint64
	}{
		{"sparse", 0x0001000100010001},
		{"medium", 0x5555555555555555},
		{"dense", 0xFFFFFFFFFFFFFFFF},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			dst := make([]uint32, 0, 64)
			for b.Loop() {
				dst = flattenMask(dst[:0], 0, c.mask)
			}
		})
	}
}

func BenchmarkPrefixXor(b *testing.B) {
	cases := []struct {
		name string
		mask uint64
	}{
		{"empty", 0},
		{"single_bit", 1},
		{"sparse", 0x0001000100010001},
		{"medium", 0x5555555555555555},
		{"dense", 0xFFFFFFFFFFFFFFFF},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			for b.Loop() {
				_ = prefixXor(c.mask)
			}
		})
	}
}

// BenchmarkPrefixXorLatencyChain measures latency when each call depends on
// the previous one's result, the pattern the block scanner's carry chain
// actually exercises (unlike the independent-calls benchmarks above).
func BenchmarkPrefixXorLatencyChain(b *testing.B) {
	mask := uint64(0x5555555555555555)
	for b.Loop() {
		mask = prefixXor(mask)
	}
	if mask == 0 {
		b.Fatal("unexpected zero")
	}
}

func BenchmarkScanTail(b *testing.B) {
	data := []byte(strings.Repeat("a,b,c\n", 10)) // below blockSize, scalar-only
	for b.Loop() {
		scanTail(nil, data, 0, false)
	}
}
