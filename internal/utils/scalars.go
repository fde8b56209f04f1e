package utils

import (
	"fmt"
	"reflect"
	"strconv"
)

// FormatScalar renders a query or path value the way the backend expects it.
// ok is false when v is absent (nil, or a nil pointer), in which case the
// parameter must be left out entirely.
func FormatScalar(v any) (s string, ok bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}

	if s, isStringer := rv.Interface().(fmt.Stringer); isStringer {
		return s.String(), true
	}
	return fmt.Sprint(rv.Interface()), true
}
