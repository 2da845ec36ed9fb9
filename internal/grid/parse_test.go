package grid

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestParseBoundaryList(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []int
	}{
		{"nil", nil, []int{}},
		{"int scalar", 42, []int{42}},
		{"float scalar truncates", 42.9, []int{42}},
		{"numeric string scalar", "17", []int{17}},
		{"int slice", []int{300, 0, 150}, []int{0, 150, 300}},
		{"float slice", []float64{0, 150.5, 300.2}, []int{0, 150, 300}},
		{"string slice", []string{"0", " 120 ", "240.0"}, []int{0, 120, 240}},
		{"mixed any slice", []any{0, "100", 200.0, json.Number("300")}, []int{0, 100, 200, 300}},
		{"nested one level", []any{[]any{0, 100}, []int{200}, 300}, []int{0, 100, 200, 300}},
		{"nil elements dropped", []any{nil, 10, nil, 20}, []int{10, 20}},
		{"duplicates removed", []any{10, "10", 10.4}, []int{10}},
		{"array", [3]int{5, 1, 3}, []int{1, 3, 5}},
		{"unparsable string empties the set", []any{0, "abc", 100}, []int{}},
		{"bool empties the set", []any{0, true}, []int{}},
		{"nested two levels empties the set", []any{[]any{[]any{1}}}, []int{}},
		{"map empties the set", map[string]int{"a": 1}, []int{}},
		{"nan empties the set", []float64{1, math.NaN()}, []int{}},
		{"inf string empties the set", []string{"1", "Inf"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBoundaryList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBoundaryList(%#v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseBoundaryJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []int
	}{
		{"flat", `[0, 250, 500]`, []int{0, 250, 500}},
		{"nested", `[[0], [250.0], ["500"]]`, []int{0, 250, 500}},
		{"scalar", `250`, []int{250}},
		{"null", `null`, []int{}},
		{"empty", ``, []int{}},
		{"invalid json", `[0, 25`, []int{}},
		{"object", `{"a": 1}`, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBoundaryJSON(json.RawMessage(tt.json))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBoundaryJSON(%s) = %v, want %v", tt.json, got, tt.want)
			}
		})
	}
}
