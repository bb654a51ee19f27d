// Package stream provides the chunked, whitespace-filtering byte reader and
// grouped-output writer that drive the Handycipher engine over arbitrary
// io.Reader/io.Writer streams, plus the Encrypt/Decrypt glue that ties them
// to internal/handy. See SPEC_FULL.md §4.7.
package stream

import (
	"io"

	"github.com/pkg/errors"
)

// ChunkSize is the input buffer size the reader refills from its source in
// one Read call.
const ChunkSize = 32 * 1024

// Reader buffers ChunkSize bytes at a time from an underlying io.Reader,
// stripping whitespace and compacting the live region, and exposes a
// lookahead window over the remaining unconsumed bytes.
type Reader struct {
	src        io.Reader
	buf        []byte
	start, end int
	eof        bool
}

// NewReader wraps src with a Reader.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, buf: make([]byte, ChunkSize)}
}

// Ensure refills the buffer, if needed and possible, until at least n
// non-whitespace bytes are available or the source is exhausted.
func (r *Reader) Ensure(n int) error {
	for !r.eof && r.end-r.start < n {
		if err := r.fill(); err != nil {
			return err
		}
	}
	return nil
}

// fill compacts the live region to the start of buf and reads one more
// chunk from the source, filtering ASCII whitespace (space, \t, \n, \v, \f,
// \r) from the freshly read bytes.
func (r *Reader) fill() error {
	if r.start > 0 {
		n := copy(r.buf, r.buf[r.start:r.end])
		r.start = 0
		r.end = n
	}

	n, err := r.src.Read(r.buf[r.end:])
	write := r.end
	for i := r.end; i < r.end+n; i++ {
		if b := r.buf[i]; b != ' ' && (b < '\t' || b > '\r') {
			r.buf[write] = r.buf[i]
			write++
		}
	}
	r.end = write

	if err != nil {
		if errors.Is(err, io.EOF) {
			r.eof = true
			return nil
		}
		return errors.Wrap(err, "stream: cannot read input")
	}
	return nil
}

// Len reports the number of unconsumed, lookahead-available bytes.
func (r *Reader) Len() int {
	return r.end - r.start
}

// Byte returns the i-th unconsumed byte (0 is the next byte to be
// consumed). The caller must have Ensure'd enough lookahead first.
func (r *Reader) Byte(i int) byte {
	return r.buf[r.start+i]
}

// Bytes returns a view of the unconsumed, lookahead-available bytes.
func (r *Reader) Bytes() []byte {
	return r.buf[r.start:r.end]
}

// Advance consumes n bytes from the front of the lookahead window.
func (r *Reader) Advance(n int) {
	r.start += n
}
