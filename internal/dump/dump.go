// Package dump writes a scan's offsets to disk as an LZ4-compressed stream
// of little-endian uint32 values, for callers that want to persist an index
// instead of (or in addition to) printing it.
package dump

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// magic identifies an offsets dump file; it has no meaning beyond letting
// LoadFile reject files that are obviously something else.
var magic = [4]byte{'S', 'C', 'O', '1'}

// WriteFile compresses offsets with LZ4 and writes them to path, preceded
// by the magic header and a uint32 record count.
func WriteFile(path string, offsets []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump: create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(offsets)))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return err
	}

	lw := lz4.NewWriter(bw)
	defer lw.Close()

	raw := make([]byte, len(offsets)*4)
	for i, o := range offsets {
		binary.LittleEndian.PutUint32(raw[i*4:], o)
	}
	if _, err := lw.Write(raw); err != nil {
		return fmt.Errorf("dump: compress: %w", err)
	}
	if err := lw.Close(); err != nil {
		return fmt.Errorf("dump: flush lz4: %w", err)
	}
	return bw.Flush()
}

// LoadFile reverses WriteFile, returning the original offsets slice.
func LoadFile(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dump: open %s: %w", path, err)
	}
	defer f.Close()

	var header [8]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, fmt.Errorf("dump: read header: %w", err)
	}
	if [4]byte(header[:4]) != magic {
		return nil, fmt.Errorf("dump: %s is not an offsets dump", path)
	}
	count := binary.LittleEndian.Uint32(header[4:])

	lr := lz4.NewReader(f)
	raw := make([]byte, count*4)
	if _, err := io.ReadFull(lr, raw); err != nil {
		return nil, fmt.Errorf("dump: decompress: %w", err)
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return offsets, nil
}
