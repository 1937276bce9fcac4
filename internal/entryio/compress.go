package entryio

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies the compression of an entry file.
type Codec int

const (
	Plain Codec = iota
	Zstd
	LZ4
)

// CodecFor derives the codec from the file extension.
func CodecFor(path string) Codec {
	switch filepath.Ext(path) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

// Open opens path for reading and decompresses according to its extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := NewDecompressor(f, CodecFor(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &stackCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
}

// Create creates path and compresses according to its extension.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	wc, err := NewCompressor(f, CodecFor(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &stackCloser{Writer: wc, closers: []io.Closer{wc, f}}, nil
}

// NewDecompressor wraps r with the decoder for c. Closing the result does
// not close r.
func NewDecompressor(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewCompressor wraps w with the encoder for c. Closing the result flushes
// the encoder but does not close w.
func NewCompressor(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// stackCloser closes codec and file in order, reporting every error.
type stackCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (s *stackCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
