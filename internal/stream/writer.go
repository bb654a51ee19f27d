package stream

import "io"

// groupSize is the number of characters between space separators.
const groupSize = 5

// lineWidth is the number of non-space characters per output line (12
// groups of 5).
const lineWidth = 60

// Writer wraps an io.Writer, grouping the flat ciphertext byte stream by 5
// characters with 12 groups per line. The running column count is owned by
// the Writer value, not module-level state (SPEC_FULL.md §9).
type Writer struct {
	w io.Writer
	n int // non-space characters written on the current line
}

// NewWriter returns a Writer wrapping w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits data through the grouping formatter.
func (pw *Writer) Write(data []byte) (int, error) {
	one := make([]byte, 1)
	for _, b := range data {
		if pw.n == lineWidth {
			if _, err := pw.w.Write([]byte{'\n'}); err != nil {
				return 0, err
			}
			pw.n = 0
		}
		one[0] = b
		if _, err := pw.w.Write(one); err != nil {
			return 0, err
		}
		pw.n++
		if pw.n%groupSize == 0 {
			if _, err := pw.w.Write([]byte{' '}); err != nil {
				return 0, err
			}
		}
	}
	return len(data), nil
}

// Finish emits the driver's final newline.
func (pw *Writer) Finish() error {
	_, err := pw.w.Write([]byte{'\n'})
	return err
}
