package gltext

import "unicode/utf8"

// DecodeString converts a UTF-8 byte sequence into Unicode code points.
//
// The decoder is lossy but never fails: each malformed byte or truncated
// multi-byte sequence contributes exactly one U+FFFD replacement character,
// and decoding then resynchronizes on the next byte. Unlike ranging over a
// Go string, a truncated three- or four-byte sequence yields a single
// replacement, not one per leftover byte.
//
// Overlong encodings and surrogate values are not rejected beyond the
// rules above; this is a best-effort decoder for display purposes.
func DecodeString(s string) []rune {
	out := make([]rune, 0, len(s))

	var codePoint rune
	expected := 0

	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		// bytes that can never appear in well-formed UTF-8
		case b == 0xC0 || b == 0xC1 || b >= 0xF5:
			out = append(out, utf8.RuneError)
			expected = 0

		// 0xxxxxxx: single-byte code point
		case b&0x80 == 0:
			if expected != 0 {
				// previous sequence ended prematurely
				out = append(out, utf8.RuneError)
				expected = 0
			}
			out = append(out, rune(b))

		// 11xxxxxx: leading byte
		case b&0xC0 == 0xC0:
			if expected != 0 {
				// previous sequence ended prematurely
				out = append(out, utf8.RuneError)
			}
			switch {
			case b&0xE0 == 0xC0: // 2-byte sequence
				codePoint = rune(b & 0x1F)
				expected = 1
			case b&0xF0 == 0xE0: // 3-byte sequence
				codePoint = rune(b & 0x0F)
				expected = 2
			case b&0xF8 == 0xF0: // 4-byte sequence
				codePoint = rune(b & 0x07)
				expected = 3
			default:
				out = append(out, utf8.RuneError)
				expected = 0
			}

		// 10xxxxxx: continuation byte
		default:
			if expected == 0 {
				// continuation without a leader
				out = append(out, utf8.RuneError)
				break
			}
			codePoint = codePoint<<6 | rune(b&0x3F)
			expected--
			if expected == 0 {
				out = append(out, codePoint)
			}
		}
	}

	if expected > 0 {
		// input ended while continuation bytes were still expected
		out = append(out, utf8.RuneError)
	}

	return out
}
