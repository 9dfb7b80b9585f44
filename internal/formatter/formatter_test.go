package formatter

import (
	"encoding/json"
	"testing"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "null"},
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"string with newline", "a\nb", `"a\nb"`},
		{"string with crlf", "a\r\nb", `"a\nb"`},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"json number int", json.Number("42"), "42"},
		{"json number float", json.Number("3.14"), "3.14"},
		{"json number big", json.Number("9007199254740993"), "9007199254740993"},
		{"int", 7, "7"},
		{"float", 2.5, "2.5"},
		{"empty dict", map[string]interface{}{}, "Dictionary, 0 keys"},
		{"one key", map[string]interface{}{"a": 1}, "Dictionary, 1 key"},
		{"two keys", map[string]interface{}{"a": 1, "b": 2}, "Dictionary, 2 keys"},
		{"empty list", []interface{}{}, "List, 0 entries"},
		{"one entry", []interface{}{1}, "List, 1 entry"},
		{"three entries", []interface{}{1, 2, 3}, "List, 3 entries"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Stringify(tc.in); got != tc.want {
				t.Errorf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"cut", "abcdefgh", 5, "abcd…"},
		{"zero width leaves untouched", "anything", 0, "anything"},
		{"negative width leaves untouched", "anything", -3, "anything"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.maxWidth); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxWidth, got, tc.want)
			}
		})
	}
}

func TestWidthCountsWideRunes(t *testing.T) {
	if got := Width("ab"); got != 2 {
		t.Errorf("Width(ab) = %d", got)
	}
	if got := Width("日本"); got != 4 {
		t.Errorf("Width(日本) = %d, want 4", got)
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{map[string]interface{}{}, "dict"},
		{[]interface{}{}, "list"},
		{"s", "string"},
		{true, "bool"},
		{json.Number("1"), "number"},
		{nil, "null"},
	}
	for _, tc := range tests {
		if got := TypeLabel(tc.in); got != tc.want {
			t.Errorf("TypeLabel(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
