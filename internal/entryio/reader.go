package entryio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Header carries the parameters at the top of a stream.
type Header struct {
	Universe int
	Width    int
}

// Reader yields entries one-by-one.
type Reader struct {
	sc   *bufio.Scanner
	hdr  Header
	line int
}

// NewReader consumes the header of r and returns a reader positioned at the
// first entry.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{sc: bufio.NewScanner(r)}
	rd.sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, err := rd.headerInt("universe size")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, &ParseError{Line: rd.line, Msg: "universe size must be positive"}
	}
	w, err := rd.headerInt("width bound")
	if err != nil {
		return nil, err
	}
	if w < 0 {
		return nil, &ParseError{Line: rd.line, Msg: "width bound must not be negative"}
	}
	rd.hdr = Header{Universe: n, Width: w}
	return rd, nil
}

// Header returns the stream parameters.
func (r *Reader) Header() Header { return r.hdr }

// Next returns the next entry. It returns io.EOF when the stream is exhausted.
func (r *Reader) Next() (block, boundary *bitset.BitSet, err error) {
	text, err := r.nextLine()
	if err != nil {
		return nil, nil, err
	}
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return nil, nil, &ParseError{Line: r.line, Msg: "want block and boundary separated by whitespace"}
	}
	if block, err = r.parseSet(fields[0]); err != nil {
		return nil, nil, err
	}
	if boundary, err = r.parseSet(fields[1]); err != nil {
		return nil, nil, err
	}
	return block, boundary, nil
}

func (r *Reader) nextLine() (string, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return text, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *Reader) headerInt(what string) (int, error) {
	text, err := r.nextLine()
	if err == io.EOF {
		return 0, &ParseError{Line: r.line, Msg: "missing " + what}
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Line: r.line, Msg: "invalid " + what, err: err}
	}
	return v, nil
}

func (r *Reader) parseSet(field string) (*bitset.BitSet, error) {
	set := bitset.New(uint(r.hdr.Universe))
	if field == "-" {
		return set, nil
	}
	for _, s := range strings.Split(field, ",") {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ParseError{Line: r.line, Msg: "invalid vertex " + strconv.Quote(s), err: err}
		}
		if v < 0 || v >= r.hdr.Universe {
			return nil, &ParseError{Line: r.line, Msg: "vertex " + s + " outside universe"}
		}
		set.Set(uint(v))
	}
	return set, nil
}
