package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/phpjson/internal/tagutil"
	"github.com/viant/xunsafe"
)

// NameFunc maps a Go field name to an output name for fields without an explicit tag name.
type NameFunc func(fieldName string) string

type structKey struct {
	rType   reflect.Type
	tagName string
	naming  string
}

type structPlan struct {
	fields []fieldPlan
}

type fieldPlan struct {
	name      string
	omitEmpty bool
	xField    *xunsafe.Field
}

var structPlans = newCache[structKey, *structPlan]()

// StructVisitor visits exported struct fields as (output name, value) pairs.
type StructVisitor struct {
	ptr  unsafe.Pointer
	plan *structPlan
}

// StructVisitorOf creates a visitor for a struct or pointer to struct.
// tagName selects the struct tag (default "json"); namingKey identifies naming
// for plan caching and must change whenever naming does.
func StructVisitorOf(value interface{}, tagName string, namingKey string, naming NameFunc) (Visitor[string, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct, got nil")
	}
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("nil %T", value)
		}
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	if tagName == "" {
		tagName = "json"
	}
	key := structKey{rType: structType, tagName: tagName, naming: namingKey}
	plan := structPlans.getOrBuild(key, func() *structPlan {
		return buildStructPlan(structType, tagName, naming)
	})
	visitor := &StructVisitor{ptr: xunsafe.AsPointer(value), plan: plan}
	return visitor.Visit, nil
}

func buildStructPlan(structType reflect.Type, tagName string, naming NameFunc) *structPlan {
	result := &structPlan{}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		defaultName := field.Name
		if naming != nil {
			defaultName = naming(field.Name)
		}
		tag := tagutil.Parse(defaultName, field.Tag.Get(tagName))
		if tag.Skip {
			continue
		}
		result.fields = append(result.fields, fieldPlan{
			name:      tag.Name,
			omitEmpty: tag.OmitEmpty,
			xField:    xunsafe.NewField(field),
		})
	}
	return result
}

// Visit iterates over struct fields, calling f with each output name and field value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for i := range w.plan.fields {
		field := &w.plan.fields[i]
		fieldValue := field.xField.Value(w.ptr)
		if field.omitEmpty && isEmpty(fieldValue) {
			continue
		}
		continueVisit, err := f(field.name, fieldValue)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
