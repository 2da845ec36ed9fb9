package grid

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ParseBoundaryList normalizes a boundary list received in any of the shapes a
// foreign caller may produce into a sorted, deduplicated []int.
//
// Accepted shapes:
//   - nil: empty set
//   - a scalar: int/uint kinds, float kinds, json.Number or a numeric string
//   - a slice or array of scalars
//   - a slice or array whose elements are themselves slices of scalars
//     (flattened exactly one level)
//
// Each element is converted by parsing it as a float and truncating toward
// zero, so "120", 120.0 and 120.7 all become 120. Nil elements are dropped.
//
// Any other element (a bool, a map, a list nested two levels deep, a
// non-numeric string, NaN or Inf) invalidates the whole set and an empty
// slice is returned. The caller then observes zero cells rather than an error.
func ParseBoundaryList(raw any) []int {
	items := flatten(raw)
	values := make([]int, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		v, ok := toInt(item)
		if !ok {
			return []int{}
		}
		values = append(values, v)
	}
	return SortedUnique(values)
}

// ParseBoundaryJSON decodes a raw JSON value and normalizes it with
// ParseBoundaryList. Invalid JSON yields an empty set.
func ParseBoundaryJSON(data json.RawMessage) []int {
	if len(bytes.TrimSpace(data)) == 0 {
		return []int{}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return []int{}
	}
	return ParseBoundaryList(raw)
}

func flatten(raw any) []any {
	if raw == nil {
		return nil
	}
	if !isList(raw) {
		return []any{raw}
	}
	var out []any
	outer := reflect.ValueOf(raw)
	for i := 0; i < outer.Len(); i++ {
		item := outer.Index(i).Interface()
		if item != nil && isList(item) {
			inner := reflect.ValueOf(item)
			for j := 0; j < inner.Len(); j++ {
				out = append(out, inner.Index(j).Interface())
			}
			continue
		}
		out = append(out, item)
	}
	return out
}

// isList reports whether v is a slice or array. Strings and byte slices are
// treated as scalars.
func isList(v any) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func toInt(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
