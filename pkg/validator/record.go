package validator

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Record supplies field values to the engine. The engine reads values only;
// it never mutates the record.
type Record interface {
	// Value returns the current value of the named field and whether the
	// field carries a value at all. Absent fields satisfy every rule.
	Value(name string) (any, bool)
}

// Map adapts a plain map to the Record interface. A missing key or a nil
// value is treated as absent.
func Map(values map[string]any) Record {
	return mapRecord(values)
}

type mapRecord map[string]any

func (m mapRecord) Value(name string) (any, bool) {
	v, ok := m[name]
	if !ok {
		return nil, false
	}
	return present(v)
}

// Struct adapts a struct (or pointer to struct) to the Record interface.
// Reflection is used for value access only, never for rule discovery: the
// declared schema remains the single source of which rules apply. Schema
// field names match exported struct fields case-sensitively, with the first
// rune upper-folded so "postalCode" finds PostalCode.
func Struct(v any) Record {
	return structRecord{value: reflect.ValueOf(v)}
}

type structRecord struct {
	value reflect.Value
}

func (s structRecord) Value(name string) (any, bool) {
	v := s.value
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}

	field := v.FieldByName(name)
	if !field.IsValid() {
		field = v.FieldByName(exported(name))
	}
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}
	return present(field.Interface())
}

// present normalizes a raw value: nil pointers and nil interfaces count as
// absent, and non-nil pointers dereference so evaluators see the element.
func present(raw any) (any, bool) {
	if raw == nil {
		return nil, false
	}
	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	return v.Interface(), true
}

// exported upper-folds the first rune of a schema field name.
func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
