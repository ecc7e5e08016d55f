package modern

import (
	"github.com/viant/phpjson"
)

// marshalFunc marshals a Go scalar with a library's own escaping and number formatting.
type marshalFunc func(v interface{}) ([]byte, error)

// tree adapts a container to json.Marshaler for libraries without a token
// writer; scalars go through marshal, the library validates the whole result.
type tree struct {
	value   phpjson.Value
	marshal marshalFunc
}

func (t tree) MarshalJSON() ([]byte, error) {
	return t.append(make([]byte, 0, 256), t.value)
}

func scalarOf(value phpjson.Value) interface{} {
	switch value.Kind() {
	case phpjson.KindBool:
		return value.Bool()
	case phpjson.KindInt:
		return value.Int()
	case phpjson.KindFloat:
		return value.Float()
	case phpjson.KindText:
		return value.Text()
	}
	return nil
}

func (t tree) append(dst []byte, value phpjson.Value) ([]byte, error) {
	var err error
	switch value.Kind() {
	case phpjson.KindSequence:
		dst = append(dst, '[')
		for i, item := range value.Items() {
			if i > 0 {
				dst = append(dst, ',')
			}
			if dst, err = t.append(dst, item); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case phpjson.KindRecord, phpjson.KindArray:
		entries := value.Entries()
		if value.IsList() {
			dst = append(dst, '[')
			for i := range entries {
				if i > 0 {
					dst = append(dst, ',')
				}
				if dst, err = t.append(dst, entries[i].Value); err != nil {
					return nil, err
				}
			}
			return append(dst, ']'), nil
		}
		dst = append(dst, '{')
		for i := range entries {
			if i > 0 {
				dst = append(dst, ',')
			}
			key, err := t.marshal(entries[i].Key.String())
			if err != nil {
				return nil, err
			}
			dst = append(dst, key...)
			dst = append(dst, ':')
			if dst, err = t.append(dst, entries[i].Value); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case phpjson.KindNull:
		return append(dst, "null"...), nil
	}
	scalar, err := t.marshal(scalarOf(value))
	if err != nil {
		return nil, err
	}
	return append(dst, scalar...), nil
}

// root returns what to hand to a library's Marshal for value.
func root(value phpjson.Value, marshal marshalFunc) interface{} {
	if value.Kind().IsContainer() {
		return tree{value: value, marshal: marshal}
	}
	return scalarOf(value)
}
