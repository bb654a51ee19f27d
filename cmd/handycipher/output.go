package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// scopedOutput wraps the run's output destination: stdout, or a file this
// process created. On Abort, a file it created is closed and removed so a
// fatal error never leaves a truncated, misleading ciphertext/plaintext file
// behind (SPEC_FULL.md §9, "Cleanup on fatal").
type scopedOutput struct {
	io.Writer
	file *os.File
	path string
}

func openOutput(path string) (*scopedOutput, error) {
	if path == "" {
		return &scopedOutput{Writer: os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "handy: cannot create output file")
	}
	return &scopedOutput{Writer: f, file: f, path: path}, nil
}

// Close closes a file-backed output cleanly; it is a no-op for stdout.
func (o *scopedOutput) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Close()
}

// Abort closes and removes a file-backed output. For stdout there is
// nothing on disk to clean up; it instead forces a newline so the failure
// diagnostic doesn't land mid-line after partial ciphertext/plaintext.
func (o *scopedOutput) Abort() {
	if o.file == nil {
		fmt.Fprintln(os.Stdout)
		return
	}
	o.file.Close()
	os.Remove(o.path)
}
