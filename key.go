package phpjson

import "strconv"

// Key identifies a record or array entry; it is either an integer index or a name.
type Key struct {
	name    string
	index   int64
	isIndex bool
}

// IndexKey returns an integer key.
func IndexKey(index int64) Key { return Key{index: index, isIndex: true} }

// NameKey returns a string key. Canonical decimal integers ("0", "42", "-7")
// become index keys, the way PHP casts array keys; "007", "+1", "-0" and
// "1.0" stay names.
func NameKey(name string) Key {
	if index, ok := canonicalIndex(name); ok {
		return IndexKey(index)
	}
	return Key{name: name}
}

func canonicalIndex(name string) (int64, bool) {
	if name == "" || len(name) > 20 {
		return 0, false
	}
	c := name[0]
	if c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	index, err := strconv.ParseInt(name, 10, 64)
	if err != nil {
		return 0, false
	}
	if strconv.FormatInt(index, 10) != name {
		return 0, false
	}
	return index, true
}

// IsIndex returns true for integer keys.
func (k Key) IsIndex() bool { return k.isIndex }

// Index returns the integer form of the key.
func (k Key) Index() (int64, bool) { return k.index, k.isIndex }

// String coerces the key to text.
func (k Key) String() string {
	if k.isIndex {
		return strconv.FormatInt(k.index, 10)
	}
	return k.name
}

// Entry is a single key/value pair of a record or array.
type Entry struct {
	Key   Key
	Value Value
}

// Field returns an entry keyed by name (see NameKey).
func Field(name string, value Value) Entry {
	return Entry{Key: NameKey(name), Value: value}
}

// At returns an entry keyed by index.
func At(index int64, value Value) Entry {
	return Entry{Key: IndexKey(index), Value: value}
}
