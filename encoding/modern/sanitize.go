package modern

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/viant/phpjson"
)

const replacementChar = "\uFFFD"

// sanitize applies flags policy so that backends only see encodable values.
// Containers are copied only when a descendant changes.
func sanitize(value phpjson.Value, flags Flags) (phpjson.Value, error) {
	clean, _, err := sanitizeValue(value, flags)
	return clean, err
}

func sanitizeValue(value phpjson.Value, flags Flags) (phpjson.Value, bool, error) {
	switch value.Kind() {
	case phpjson.KindNull, phpjson.KindBool, phpjson.KindInt:
		return value, false, nil
	case phpjson.KindFloat:
		f := value.Float()
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return value, false, nil
		}
		if flags.Has(PartialOutputOnError) {
			return phpjson.Int(0), true, nil
		}
		return value, false, fmt.Errorf("%w: %v", ErrNonFinite, f)
	case phpjson.KindText:
		text, changed, err := sanitizeText(value.Text(), flags)
		if err != nil {
			if flags.Has(PartialOutputOnError) {
				return phpjson.Null(), true, nil
			}
			return value, false, err
		}
		if changed {
			return phpjson.Text(text), true, nil
		}
		return value, false, nil
	case phpjson.KindSequence:
		return sanitizeItems(value, flags)
	case phpjson.KindRecord, phpjson.KindArray:
		return sanitizeEntries(value, flags)
	}
	if flags.Has(PartialOutputOnError) {
		return phpjson.Null(), true, nil
	}
	return value, false, fmt.Errorf("%w: %s", ErrUnrepresentable, value.Kind())
}

func sanitizeText(text string, flags Flags) (string, bool, error) {
	if utf8.ValidString(text) {
		return text, false, nil
	}
	if flags.Has(InvalidUTF8Substitute) {
		return strings.ToValidUTF8(text, replacementChar), true, nil
	}
	return text, false, ErrInvalidUTF8
}

func sanitizeItems(value phpjson.Value, flags Flags) (phpjson.Value, bool, error) {
	items := value.Items()
	var copied []phpjson.Value
	for i, item := range items {
		clean, changed, err := sanitizeValue(item, flags)
		if err != nil {
			return value, false, err
		}
		if changed && copied == nil {
			copied = make([]phpjson.Value, len(items))
			copy(copied, items)
		}
		if copied != nil {
			copied[i] = clean
		}
	}
	if copied == nil {
		return value, false, nil
	}
	return phpjson.Sequence(copied...), true, nil
}

func sanitizeEntries(value phpjson.Value, flags Flags) (phpjson.Value, bool, error) {
	entries := value.Entries()
	var copied []phpjson.Entry
	for i, entry := range entries {
		key, keyChanged, err := sanitizeKey(entry.Key, flags)
		if err != nil {
			return value, false, err
		}
		clean, changed, err := sanitizeValue(entry.Value, flags)
		if err != nil {
			return value, false, err
		}
		if (changed || keyChanged) && copied == nil {
			copied = make([]phpjson.Entry, len(entries))
			copy(copied, entries)
		}
		if copied != nil {
			copied[i] = phpjson.Entry{Key: key, Value: clean}
		}
	}
	if copied == nil {
		return value, false, nil
	}
	if value.Kind() == phpjson.KindRecord {
		return phpjson.Record(copied...), true, nil
	}
	return phpjson.Array(copied...), true, nil
}

func sanitizeKey(key phpjson.Key, flags Flags) (phpjson.Key, bool, error) {
	if key.IsIndex() {
		return key, false, nil
	}
	name, changed, err := sanitizeText(key.String(), flags)
	if err != nil {
		if !flags.Has(PartialOutputOnError) {
			return key, false, err
		}
		name, changed = strings.ToValidUTF8(key.String(), ""), true
	}
	if !changed {
		return key, false, nil
	}
	return phpjson.NameKey(name), true, nil
}
