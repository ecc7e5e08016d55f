package phpjson

import (
	"encoding"
	"math"
	"reflect"
	"strconv"

	"github.com/viant/phpjson/visitor"
	"github.com/viant/tagly/format/text"
)

type converter struct {
	caseFormat text.CaseFormat
	tagName    string
	naming     visitor.NameFunc
}

// FromAny converts native Go data into a Value.
//
// Maps become arrays keyed in ascending key order, structs become records in
// field declaration order and slices become sequences. encoding.TextMarshaler
// implementations (time.Time included) become text. Kinds with no JSON
// counterpart (chan, func, complex, unsafe.Pointer) become Invalid.
func FromAny(value interface{}, opts ...Option) Value {
	c := &converter{tagName: "json"}
	Options(opts).Apply(c)
	if c.caseFormat != text.CaseFormatUndefined {
		c.naming = caseFormatNaming(c.caseFormat)
	}
	return c.convert(value)
}

func caseFormatNaming(caseFormat text.CaseFormat) visitor.NameFunc {
	return func(fieldName string) string {
		if fieldName == "ID" {
			switch caseFormat {
			case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
				return "id"
			}
		}
		src := text.DetectCaseFormat(fieldName)
		if !src.IsDefined() {
			src = text.CaseFormatUpperCamel
		}
		return src.Format(fieldName, caseFormat)
	}
}

func (c *converter) convert(value interface{}) Value {
	switch actual := value.(type) {
	case nil:
		return Null()
	case Value:
		return actual
	case *Value:
		if actual == nil {
			return Null()
		}
		return *actual
	case bool:
		return Bool(actual)
	case int:
		return Int(int64(actual))
	case int64:
		return Int(actual)
	case int32:
		return Int(int64(actual))
	case float64:
		return Float(actual)
	case float32:
		return Float(float64(actual))
	case string:
		return Text(actual)
	case []byte:
		return Text(string(actual))
	case encoding.TextMarshaler:
		if rv := reflect.ValueOf(actual); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Null()
		}
		data, err := actual.MarshalText()
		if err != nil {
			return Invalid()
		}
		return Text(string(data))
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		if rv.Kind() == reflect.Ptr && rv.Elem().Kind() == reflect.Struct {
			return c.convertStruct(value)
		}
		return c.convert(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return Text(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Text(string(rv.Bytes()))
		}
		return c.convertSlice(value)
	case reflect.Array:
		return c.convertSlice(value)
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		return c.convertMap(value)
	case reflect.Struct:
		return c.convertStruct(value)
	}
	return Invalid()
}

func (c *converter) convertSlice(value interface{}) Value {
	visit, err := visitor.SliceVisitorOf(value)
	if err != nil {
		return Invalid()
	}
	items := make([]Value, 0, reflect.ValueOf(value).Len())
	_ = visit(func(_ int, element interface{}) (bool, error) {
		items = append(items, c.convert(element))
		return true, nil
	})
	return Sequence(items...)
}

func (c *converter) convertMap(value interface{}) Value {
	visit, err := visitor.MapVisitorOf(value)
	if err != nil {
		return Invalid()
	}
	entries := make([]Entry, 0, reflect.ValueOf(value).Len())
	_ = visit(func(key interface{}, element interface{}) (bool, error) {
		entries = append(entries, Entry{Key: mapKey(key), Value: c.convert(element)})
		return true, nil
	})
	return Array(entries...)
}

func mapKey(key interface{}) Key {
	switch actual := key.(type) {
	case string:
		return NameKey(actual)
	case int64:
		return IndexKey(actual)
	case uint64:
		if actual > math.MaxInt64 {
			return NameKey(strconv.FormatUint(actual, 10))
		}
		return IndexKey(int64(actual))
	}
	return Key{}
}

func (c *converter) convertStruct(value interface{}) Value {
	visit, err := visitor.StructVisitorOf(value, c.tagName, string(c.caseFormat), c.naming)
	if err != nil {
		return Invalid()
	}
	var entries []Entry
	_ = visit(func(name string, element interface{}) (bool, error) {
		entries = append(entries, Field(name, c.convert(element)))
		return true, nil
	})
	return Record(entries...)
}
