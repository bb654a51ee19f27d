package stream

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ombreve/handycipher/internal/handy"
)

// testKey mirrors the fixed deterministic key used throughout the handy
// package's own tests; it is a valid permutation of the 51-character key
// alphabet.
const testKey = "^yxwvutsrqponmlkjihgfedcbaYXWVUTSRQPONMLKJIHGFEDCBA"

// safePlaintext returns a run of subkey characters whose adjacent codes
// never collide under the hyphenation rule, so a round trip through
// Encrypt/Decrypt can be checked for byte-for-byte equality.
func safePlaintext(t *testing.T) string {
	t.Helper()
	c, err := handy.New(testKey, false)
	if err != nil {
		t.Fatalf("handy.New: %v", err)
	}

	var out []byte
	prev := 0
	for i, ch := range c.Subkey {
		code := i + 1
		if prev*code == 16 {
			continue
		}
		out = append(out, ch)
		prev = code
	}
	return string(out)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, core := range []bool{false, true} {
		plain := safePlaintext(t)

		var cipherBuf bytes.Buffer
		if err := Encrypt(strings.NewReader(plain), &cipherBuf, Options{Key: testKey, Core: core}); err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		var plainBuf bytes.Buffer
		if err := Decrypt(&cipherBuf, &plainBuf, Options{Key: testKey, Core: core}); err != nil {
			t.Fatalf("Decrypt: %v", err)
		}

		if plainBuf.String() != plain {
			t.Fatalf("core=%v: round trip mismatch: got %q, want %q", core, plainBuf.String(), plain)
		}
	}
}

func TestEncryptIgnoresWhitespaceInPlaintext(t *testing.T) {
	plain := safePlaintext(t)
	spaced := strings.Join(strings.Split(plain, ""), " \t")

	var a, b bytes.Buffer
	if err := Encrypt(strings.NewReader(plain), &a, Options{Key: testKey}); err != nil {
		t.Fatalf("Encrypt(plain): %v", err)
	}
	if err := Encrypt(strings.NewReader(spaced), &b, Options{Key: testKey}); err != nil {
		t.Fatalf("Encrypt(spaced): %v", err)
	}

	var da, db bytes.Buffer
	if err := Decrypt(strings.NewReader(a.String()), &da, Options{Key: testKey}); err != nil {
		t.Fatalf("Decrypt(a): %v", err)
	}
	if err := Decrypt(strings.NewReader(b.String()), &db, Options{Key: testKey}); err != nil {
		t.Fatalf("Decrypt(b): %v", err)
	}
	if da.String() != db.String() {
		t.Fatalf("whitespace in plaintext changed the decrypted result: %q vs %q", da.String(), db.String())
	}
}

func TestEncryptEmptyInputProducesNewlineOnly(t *testing.T) {
	var out bytes.Buffer
	if err := Encrypt(strings.NewReader(""), &out, Options{Key: testKey}); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if out.String() != "\n" {
		t.Fatalf("got %q, want %q", out.String(), "\n")
	}
}

func TestDecryptEmptyInputProducesEmptyOutput(t *testing.T) {
	var out bytes.Buffer
	if err := Decrypt(strings.NewReader(""), &out, Options{Key: testKey}); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("got %d bytes, want 0", out.Len())
	}
}

func TestEncryptRejectsInvalidKey(t *testing.T) {
	if err := Encrypt(strings.NewReader("x"), &bytes.Buffer{}, Options{Key: "too-short"}); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

func TestTraceOptionInvokesWarn(t *testing.T) {
	var traced bool
	opt := Options{
		Key:   testKey,
		Trace: true,
		Warn:  func(format string, args ...any) { traced = true },
	}
	var out bytes.Buffer
	if err := Encrypt(strings.NewReader(safePlaintext(t)[:1]), &out, opt); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !traced {
		t.Fatalf("expected Trace option to invoke Warn at least once")
	}
}
