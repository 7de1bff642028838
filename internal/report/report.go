// Package report formats scan results for the command-line driver: a
// throughput summary and a best-effort raw field dump.
package report

import (
	"fmt"
	"io"
	"time"
)

// Throughput holds the inputs to a GB/s calculation across repeated scans
// of the same buffer, mirroring the benchmark loop the original tool runs.
type Throughput struct {
	BufferLen  int
	Iterations int
	Elapsed    time.Duration
}

// GBPerSecond returns the throughput in gibibytes per second.
func (t Throughput) GBPerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	volume := float64(t.Iterations) * float64(t.BufferLen)
	return volume / t.Elapsed.Seconds() / (1024 * 1024 * 1024)
}

// WriteOffsetSummary prints the verbose warm-up summary: offsets found and
// bytes per offset, printed once right after the untimed warm-up scan.
func WriteOffsetSummary(w io.Writer, offsetCount, bufferLen int) {
	fmt.Fprintf(w, "number of offsets found    : %d\n", offsetCount)
	if offsetCount > 0 {
		fmt.Fprintf(w, "number of bytes per offset : %.2f\n", float64(bufferLen)/float64(offsetCount))
	}
}

// WriteTimingSummary prints the verbose timing summary, printed once after
// the timed benchmark loop completes.
func WriteTimingSummary(w io.Writer, t Throughput) {
	fmt.Fprintf(w, "Total time in (s)          = %.6f\n", t.Elapsed.Seconds())
	fmt.Fprintf(w, "Number of iterations       = %d\n", t.Iterations)
}

// WriteThroughput prints the single-line GB/s result the non-verbose
// driver always emits.
func WriteThroughput(w io.Writer, t Throughput) {
	fmt.Fprintf(w, " GB/s: %.5f\n", t.GBPerSecond())
}

// DumpFields writes, for each offset, the offset itself followed by the
// raw bytes from that offset up to (not including) the next offset. It is
// a diagnostic re-slice only: it does not unescape doubled quotes or trim
// the leading separator byte that each span starts with, since recovering
// true field text from offsets alone is outside what Scan determines.
func DumpFields(w io.Writer, buf []byte, offsets []uint32) {
	for i, idx := range offsets {
		fmt.Fprintf(w, "%d: ", idx)
		if i < len(offsets)-1 {
			start, end := int(idx), int(offsets[i+1])
			if start <= end && end <= len(buf) {
				w.Write(buf[start:end])
			}
		}
		fmt.Fprintln(w)
	}
}
