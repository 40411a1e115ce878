package hyp

import "reflect"

// Unwrap resolves optional attribute values. Nil values, nil pointers, and
// nil interfaces yield nil, which suppresses the attribute entirely;
// non-nil pointers are dereferenced so the pointee renders as the value.
func Unwrap(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
