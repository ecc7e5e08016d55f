package phpjson

import "fmt"

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindInvalid marks a value no encoder can represent, e.g. a channel or func converted by FromAny.
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindText
	KindSequence
	KindRecord
	KindArray
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindText:     "text",
	KindSequence: "sequence",
	KindRecord:   "record",
	KindArray:    "array",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsContainer returns true for sequence, record and array kinds.
func (k Kind) IsContainer() bool {
	return k == KindSequence || k == KindRecord || k == KindArray
}

// Value represents an immutable dynamic value. The zero Value is invalid.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	items   []Value
	entries []Entry
}

// Invalid returns an unrepresentable value.
func Invalid() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a string value; s is kept as is, including invalid UTF-8.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Sequence returns an ordered list, always laid out as a JSON array.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Record returns a keyed object, always laid out as a JSON object.
func Record(entries ...Entry) Value {
	if entries == nil {
		entries = []Entry{}
	}
	return Value{kind: KindRecord, entries: entries}
}

// Array returns an untyped keyed container, see IsList.
func Array(entries ...Entry) Value {
	if entries == nil {
		entries = []Entry{}
	}
	return Value{kind: KindArray, entries: entries}
}

// List returns an Array keyed 0..n-1.
func List(items ...Value) Value {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Key: IndexKey(int64(i)), Value: item}
	}
	return Value{kind: KindArray, entries: entries}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, false for other kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Int returns the integer payload, 0 for other kinds.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// Float returns the float payload, 0 for other kinds.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		return 0
	}
	return v.f
}

// Text returns the string payload, "" for other kinds.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.s
}

// Items returns sequence elements. The returned slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Entries returns record or array entries in iteration order. The returned slice must not be modified.
func (v Value) Entries() []Entry {
	if v.kind != KindRecord && v.kind != KindArray {
		return nil
	}
	return v.entries
}

// Len returns the number of container elements, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindRecord, KindArray:
		return len(v.entries)
	}
	return 0
}

// IsList reports whether a container lays out as a JSON array.
func (v Value) IsList() bool {
	switch v.kind {
	case KindSequence:
		return true
	case KindArray:
		return IsList(v.entries)
	}
	return false
}

// Get returns the entry value stored under key, searching in iteration order.
func (v Value) Get(key Key) (Value, bool) {
	if v.kind == KindSequence {
		index, ok := key.Index()
		if !ok || index < 0 || index >= int64(len(v.items)) {
			return Value{}, false
		}
		return v.items[index], true
	}
	for _, entry := range v.Entries() {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return Value{}, false
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprint(v.b)
	case KindInt:
		return fmt.Sprint(v.i)
	case KindFloat:
		return fmt.Sprint(v.f)
	case KindText:
		return fmt.Sprintf("%q", v.s)
	case KindInvalid:
		return "invalid"
	}
	return fmt.Sprintf("%v(%d)", v.kind, v.Len())
}
