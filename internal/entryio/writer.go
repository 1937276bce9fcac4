package entryio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Writer emits entries in the text format understood by Reader.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter writes the header to w.
func NewWriter(w io.Writer, hdr Header) (*Writer, error) {
	ew := &Writer{w: bufio.NewWriter(w)}
	ew.buf = strconv.AppendInt(ew.buf[:0], int64(hdr.Universe), 10)
	ew.buf = append(ew.buf, '\n')
	ew.buf = strconv.AppendInt(ew.buf, int64(hdr.Width), 10)
	ew.buf = append(ew.buf, '\n')
	if _, err := ew.w.Write(ew.buf); err != nil {
		return nil, err
	}
	return ew, nil
}

// Write appends one entry.
func (w *Writer) Write(block, boundary *bitset.BitSet) error {
	w.buf = appendSet(w.buf[:0], block)
	w.buf = append(w.buf, ' ')
	w.buf = appendSet(w.buf, boundary)
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }

func appendSet(dst []byte, set *bitset.BitSet) []byte {
	if set.None() {
		return append(dst, '-')
	}
	first := true
	for v, ok := set.NextSet(0); ok; v, ok = set.NextSet(v + 1) {
		if !first {
			dst = append(dst, ',')
		}
		dst = strconv.AppendUint(dst, uint64(v), 10)
		first = false
	}
	return dst
}
