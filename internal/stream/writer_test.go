package stream

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterGroupsByFive(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.Write([]byte("ABCDEFGHIJ")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if got := buf.String(); got != "ABCDE FGHIJ \n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriterWrapsAtLineWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.Write([]byte(strings.Repeat("A", lineWidth+groupSize))); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	got := buf.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if n := len(strings.ReplaceAll(lines[0], " ", "")); n != lineWidth {
		t.Fatalf("first line has %d non-space chars, want %d", n, lineWidth)
	}
}

func TestWriterFinishAlwaysAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if buf.String() != "\n" {
		t.Fatalf("got %q, want %q", buf.String(), "\n")
	}
}
