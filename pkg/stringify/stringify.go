package stringify

import (
	"fmt"
	"reflect"
	"strings"
)

// Iterable lets container types opt into list rendering without exposing an
// underlying slice or array to reflection. Elements must be returned in the
// container's natural order.
type Iterable interface {
	Elements() []any
}

// ToString converts the given values to text. A single value renders per the
// package classification rules; multiple values are each converted and joined
// by a single space; zero values yield the empty string.
func ToString(args ...any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return valueString(args[0])
	}

	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(valueString(arg))
	}
	return b.String()
}

func valueString(v any) string {
	// String-like wins over iterable so that "abc" renders verbatim rather
	// than as [a, b, c]. The kind check comes before the Iterable assertion
	// so named string types stay string-like even if they implement it.
	if s, ok := v.(string); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	if it, ok := v.(Iterable); ok {
		return listString(it.Elements())
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		b.WriteByte('[')
		for i := range rv.Len() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(valueString(rv.Index(i).Interface()))
		}
		b.WriteByte(']')
		return b.String()
	default:
		return fmt.Sprint(v)
	}
}

func listString(elems []any) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(valueString(e))
	}
	b.WriteByte(']')
	return b.String()
}
