package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapVisitorOf visits a map in ascending key order. Keys must be strings or
// integers; they are passed as string, int64 or uint64.
func MapVisitorOf(value interface{}) (Visitor[interface{}, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return sortedStringMapVisitor(actual), nil
	case map[string]string:
		return sortedStringMapVisitor(actual), nil
	case map[string]int:
		return sortedStringMapVisitor(actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	keys := val.MapKeys()
	switch val.Type().Key().Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	default:
		return nil, fmt.Errorf("unsupported map key type: %s", val.Type().Key())
	}
	visitor := &AnyMapVisitor{data: val, keys: keys}
	return visitor.Visit, nil
}

func sortedStringMapVisitor[V any](aMap map[string]V) Visitor[interface{}, interface{}] {
	keys := make([]string, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitor visits a reflected map in a precomputed key order.
type AnyMapVisitor struct {
	data reflect.Value
	keys []reflect.Value
}

// Visit calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key interface{}, element interface{}) (bool, error)) error {
	for _, key := range v.keys {
		var k interface{}
		switch key.Kind() {
		case reflect.String:
			k = key.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			k = key.Int()
		default:
			k = key.Uint()
		}
		continueVisit, err := f(k, v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
