// Command simdcsv loads a CSV file and reports the throughput of scanning
// it for structural separator offsets.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nnnkkk7/simdcsv"
	"github.com/nnnkkk7/simdcsv/internal/buffer"
	"github.com/nnnkkk7/simdcsv/internal/dump"
	"github.com/nnnkkk7/simdcsv/internal/report"
	"github.com/nnnkkk7/simdcsv/internal/runid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("simdcsv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", false, "verbose output")
	fs.BoolVar(verbose, "v", false, "verbose output (shorthand)")
	doDump := fs.Bool("dump", false, "dump field spans to stdout")
	fs.BoolVar(doDump, "d", false, "dump field spans to stdout (shorthand)")
	iterations := fs.Int("iterations", 100, "number of benchmark iterations")
	fs.IntVar(iterations, "i", 100, "number of benchmark iterations (shorthand)")
	dumpFile := fs.String("dump-compressed", "", "also write a compressed offsets dump to this path")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: simdcsv [flags] FILE")
		fs.PrintDefaults()
		return 2
	}
	file := fs.Arg(0)
	id := runid.New()

	if *verbose {
		fmt.Fprintf(stdout, "[verbose] run %s loading %s\n", id, file)
	}

	buf, err := buffer.Load(file)
	if err != nil {
		fmt.Fprintf(stderr, "Could not load the file %s: %v\n", file, err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(stdout, "[verbose] loaded %s (%d bytes)\n", file, buf.Len())
	}

	// Warm-up run, matching the original tool: the first scan is not timed,
	// but its result is what --dump prints.
	offsets := simdcsv.Scan(buf.Data())

	if *verbose {
		report.WriteOffsetSummary(stdout, len(offsets), buf.Len())
	}

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		_ = simdcsv.Scan(buf.Data())
	}
	elapsed := time.Since(start)

	if *doDump {
		report.DumpFields(stdout, buf.Data(), offsets)
	}

	th := report.Throughput{BufferLen: buf.Len(), Iterations: *iterations, Elapsed: elapsed}
	if *verbose {
		report.WriteTimingSummary(stdout, th)
	}
	report.WriteThroughput(stdout, th)

	if *dumpFile != "" {
		if err := dump.WriteFile(*dumpFile, offsets); err != nil {
			fmt.Fprintf(stderr, "Could not write dump file %s: %v\n", *dumpFile, err)
			return 1
		}
		if *verbose {
			fmt.Fprintf(stdout, "[verbose] wrote offsets dump to %s\n", *dumpFile)
		}
	}

	if *verbose {
		fmt.Fprintln(stdout, "[verbose] done")
	}
	return 0
}
