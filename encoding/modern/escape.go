package modern

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// escapeUnicode rewrites non-ASCII runes of encoded JSON as \uXXXX escapes.
// Only string tokens can hold non-ASCII bytes, so no tokenizing is needed.
func escapeUnicode(src []byte) []byte {
	i := 0
	for i < len(src) && src[i] < utf8.RuneSelf {
		i++
	}
	if i == len(src) {
		return src
	}
	dst := make([]byte, i, len(src)+len(src)/2)
	copy(dst, src[:i])
	for i < len(src) {
		c := src[i]
		if c < utf8.RuneSelf {
			dst = append(dst, c)
			i++
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		i += size
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			dst = appendUnicodeEscape(dst, r1)
			dst = appendUnicodeEscape(dst, r2)
			continue
		}
		dst = appendUnicodeEscape(dst, r)
	}
	return dst
}

func appendUnicodeEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xF], hexDigits[r>>8&0xF], hexDigits[r>>4&0xF], hexDigits[r&0xF])
}
