package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf visits a slice or array by index.
func SliceVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	switch actual := value.(type) {
	case []interface{}:
		return typedSliceVisitor(actual), nil
	case []string:
		return typedSliceVisitor(actual), nil
	case []int:
		return typedSliceVisitor(actual), nil
	case []int64:
		return typedSliceVisitor(actual), nil
	case []float64:
		return typedSliceVisitor(actual), nil
	case []bool:
		return typedSliceVisitor(actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

func typedSliceVisitor[E any](slice []E) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// AnySliceVisitor visits a reflected slice or array.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit calls f for each element.
func (v *AnySliceVisitor) Visit(f func(key int, element interface{}) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
