package legacy

// escapes maps a byte to the letter following the backslash, 0 if copied as is.
var escapes = [256]byte{
	'\\': '\\',
	'/':  '/',
	'"':  '"',
	'\r': 'r',
	'\n': 'n',
	'\b': 'b',
	'\f': 'f',
	'\t': 't',
}

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		esc := escapes[s[i]]
		if esc == 0 {
			continue
		}
		dst = append(dst, s[start:i]...)
		dst = append(dst, '\\', esc)
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
