package phpjson

// IsList reports whether entries are keyed exactly 0, 1, ..., n-1 in
// iteration order. The expected index advances in lockstep with the entries
// and the first mismatch ends the check. An empty slice is a list.
func IsList(entries []Entry) bool {
	for expected, entry := range entries {
		index, ok := entry.Key.Index()
		if !ok || index != int64(expected) {
			return false
		}
	}
	return true
}
