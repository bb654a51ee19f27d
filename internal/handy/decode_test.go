package handy

import "testing"

// TestDecodeToleratesInjectedNoiseAndSalt exercises SPEC_FULL.md §8: a
// salted, noised encoding still decodes to the original character even
// though neither defense carries any plaintext information.
func TestDecodeToleratesInjectedNoiseAndSalt(t *testing.T) {
	for _, ch := range newTestCipher(t, false).Subkey {
		enc := newTestCipher(t, false)
		frag, err := enc.Encode(ch, 0, false)
		if err != nil {
			t.Fatalf("Encode(%q): %v", ch, err)
		}

		dec := newTestCipher(t, false)
		got, produced, used, err := dec.Decode(frag)
		if err != nil {
			t.Fatalf("Decode(%q): %v", ch, err)
		}
		if !produced || used != len(frag) || got != ch {
			t.Fatalf("Decode(Encode(%q)) = (%q, %v, %d), want (%q, true, %d)", ch, got, produced, used, ch, len(frag))
		}
	}
}

// TestDecodeParityAlternates pins SPEC_FULL.md §4.6's parity invariant:
// successive decoded codewords flip the decoder's MSB/LSB parity bit, in
// lockstep with the encoder.
func TestDecodeParityAlternates(t *testing.T) {
	enc := newTestCipher(t, false)
	plain := safePlaintext(t, enc)

	var cipherBytes []byte
	for i := range plain {
		hasNext := i+1 < len(plain)
		var next byte
		if hasNext {
			next = plain[i+1]
		}
		frag, err := enc.Encode(plain[i], next, hasNext)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		cipherBytes = append(cipherBytes, frag...)
	}

	dec := newTestCipher(t, false)
	buf := cipherBytes
	wantParity := 1
	for len(buf) > 0 {
		_, produced, used, err := dec.Decode(buf)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if produced {
			if dec.parity != wantParity {
				t.Fatalf("parity = %d, want %d", dec.parity, wantParity)
			}
			wantParity = 1 - wantParity
		}
		buf = buf[used:]
	}
}

// TestDecodeEmptyBufferNoProgress documents that Decode on an empty buffer
// reports nothing produced and no bytes consumed, so callers loop on
// lookahead rather than spin.
func TestDecodeEmptyBufferNoProgress(t *testing.T) {
	dec := newTestCipher(t, false)
	_, produced, used, err := dec.Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if produced || used != 0 {
		t.Fatalf("Decode(nil) = (produced=%v, used=%d), want (false, 0)", produced, used)
	}
}

// TestDecodeAllNullsProducesNothing exercises the pos==0 branch directly: a
// run of nothing but null-matrix characters consumes bytes but decodes no
// plaintext.
func TestDecodeAllNullsProducesNothing(t *testing.T) {
	dec := newTestCipher(t, false)
	buf := dec.NullMat[:3]
	_, produced, used, err := dec.Decode(buf)
	if err != nil {
		t.Fatalf("Decode(nulls): %v", err)
	}
	if produced {
		t.Fatalf("expected no character produced from an all-null buffer")
	}
	if used != len(buf) {
		t.Fatalf("used = %d, want %d", used, len(buf))
	}
}

// TestCoreDecodeRejectsNonCodeMatrixCharacter pins SPEC_FULL.md §4.6: in core
// mode, any character outside the code matrix is a decode error.
func TestCoreDecodeRejectsNonCodeMatrixCharacter(t *testing.T) {
	dec := newTestCipher(t, true)
	if _, err := dec.codeOf('1'); err == nil {
		t.Fatalf("expected codeOf to reject a non-key character")
	}
	if _, _, _, err := dec.Decode([]byte{dec.NullMat[0]}); err == nil {
		t.Fatalf("expected core-mode decode to reject a null-matrix character")
	}
}

// TestDecodeSingleCharacterSequenceUsesColumnDirection exercises the pos==1
// fallback: a sequence of exactly one code-matrix character (immediately
// followed by end of buffer, no terminator observed) is still decodable,
// using its column as the implied direction.
func TestDecodeSingleCharacterSequenceUsesColumnDirection(t *testing.T) {
	enc := newTestCipher(t, false)
	// code 1 selects a single character on the line: always a one-element
	// raw sequence, regardless of direction.
	frag, err := enc.encodeChar(1, 0)
	if err != nil {
		t.Fatalf("encodeChar: %v", err)
	}

	dec := newTestCipher(t, false)
	_, produced, used, err := dec.Decode(frag)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !produced || used != len(frag) {
		t.Fatalf("Decode(single-char codeword) = (produced=%v, used=%d), want (true, %d)", produced, used, len(frag))
	}
}
