package stream

import (
	"io"

	"github.com/ombreve/handycipher/internal/handy"
	"github.com/pkg/errors"
)

// WarnFunc receives non-fatal diagnostics from the cipher engine (e.g.
// null-salt saturation warnings).
type WarnFunc func(format string, args ...any)

// Options configures an Encrypt or Decrypt call.
type Options struct {
	Key   string
	Core  bool
	Trace bool
	Warn  WarnFunc
}

func newCipher(opt Options) (*handy.Cipher, error) {
	c, err := handy.New(opt.Key, opt.Core)
	if err != nil {
		return nil, err
	}
	c.Trace = opt.Trace
	if opt.Warn != nil {
		c.Warn = func(format string, args ...any) { opt.Warn(format, args...) }
	}
	return c, nil
}

// Encrypt reads plaintext from src, filtering whitespace, and writes the
// pretty-printed Handycipher ciphertext to dst. It implements the encrypt
// data flow of SPEC_FULL.md §2.
func Encrypt(src io.Reader, dst io.Writer, opt Options) error {
	cipher, err := newCipher(opt)
	if err != nil {
		return err
	}

	r := NewReader(src)
	w := NewWriter(dst)

	for {
		if err := r.Ensure(2); err != nil {
			return err
		}
		if r.Len() == 0 {
			break
		}

		cur := r.Byte(0)
		hasNext := r.Len() >= 2
		var next byte
		if hasNext {
			next = r.Byte(1)
		}

		frag, err := cipher.Encode(cur, next, hasNext)
		if err != nil {
			return err
		}
		if _, err := w.Write(frag); err != nil {
			return errors.Wrap(err, "stream: cannot write ciphertext")
		}
		r.Advance(1)
	}

	return w.Finish()
}

// Decrypt reads Handycipher ciphertext from src, filtering whitespace, and
// writes the recovered plaintext to dst. It implements the decrypt data
// flow of SPEC_FULL.md §2.
func Decrypt(src io.Reader, dst io.Writer, opt Options) error {
	cipher, err := newCipher(opt)
	if err != nil {
		return err
	}

	r := NewReader(src)

	for {
		if err := r.Ensure(2 * handy.MaxEncodedLen); err != nil {
			return err
		}
		if r.Len() == 0 {
			break
		}

		out, produced, used, err := cipher.Decode(r.Bytes())
		if err != nil {
			return err
		}
		if produced {
			if _, err := dst.Write([]byte{out}); err != nil {
				return errors.Wrap(err, "stream: cannot write plaintext")
			}
		}
		r.Advance(used)
	}

	return nil
}
