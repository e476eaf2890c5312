package utils

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestDecodeAIObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name:  "Pure JSON",
			input: `{"city": "Pune", "bedrooms": 2}`,
			want:  map[string]interface{}{"city": "Pune", "bedrooms": float64(2)},
		},
		{
			name:  "JSON in markdown code block",
			input: "```json\n" + `{"city": "Pune"}` + "\n```",
			want:  map[string]interface{}{"city": "Pune"},
		},
		{
			name:  "Unlabelled code block",
			input: "```\n" + `{"type": "flat"}` + "\n```",
			want:  map[string]interface{}{"type": "flat"},
		},
		{
			name:  "JSON with surrounding text",
			input: `Here are the filters: {"location": "Baner {west}", "max_price": 6000000} hope that helps`,
			want:  map[string]interface{}{"location": "Baner {west}", "max_price": float64(6000000)},
		},
		{
			name:  "JSON with trailing comma",
			input: `{"city": "Pune", "bedrooms": 3,}`,
			want:  map[string]interface{}{"city": "Pune", "bedrooms": float64(3)},
		},
		{
			name:  "Trailing comma repair leaves strings alone",
			input: `{"location": "Baner, ]", "bedrooms": 2,}`,
			want:  map[string]interface{}{"location": "Baner, ]", "bedrooms": float64(2)},
		},
		{
			name:  "Trailing comma in nested array",
			input: `{"city": "Pune, }", "tags": ["a", "b",],}`,
			want:  map[string]interface{}{"city": "Pune, }", "tags": []interface{}{"a", "b"}},
		},
		{
			name:  "Leading BOM and whitespace",
			input: "\ufeff  {\"city\": null}\n",
			want:  map[string]interface{}{"city": nil},
		},
		{
			name:    "Empty string",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "Prose only",
			input:   "Sorry, I could not understand the query.",
			wantErr: true,
		},
		{
			name:    "JSON null",
			input:   `null`,
			wantErr: true,
		},
		{
			name:    "Unbalanced object",
			input:   `{"city": "Pune"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			err := DecodeAIObject(tt.input, &got)

			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeAIObject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrNoJSONObject) {
					t.Errorf("expected ErrNoJSONObject, got %v", err)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeAIObject() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if want, ok := v.([]interface{}); ok {
					gotSlice, _ := got[k].([]interface{})
					if len(gotSlice) != len(want) {
						t.Errorf("key %q = %v, want %v", k, got[k], v)
					}
					continue
				}
				if got[k] != v {
					t.Errorf("key %q = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("unexpected %q", got)
	}
	if got := Truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("unexpected %q", got)
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "cut inside a rune", input: "₹₹₹", maxLen: 4, want: "₹..."},
		{name: "cut on a boundary", input: "₹₹₹", maxLen: 6, want: "₹₹..."},
		{name: "cut inside the first rune", input: "₹abc", maxLen: 2, want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestStripTrailingCommas(t *testing.T) {
	tests := map[string]string{
		`{"a": 1,}`:                    `{"a": 1}`,
		`{"a": [1, 2 ,  ],}`:           `{"a": [1, 2   ]}`,
		`{"a": "x,}"}`:                 `{"a": "x,}"}`,
		`{"a": "say \",]\"", "b": 1,}`: `{"a": "say \",]\"", "b": 1}`,
	}

	for input, want := range tests {
		if got := stripTrailingCommas(input); got != want {
			t.Errorf("stripTrailingCommas(%q) = %q, want %q", input, got, want)
		}
	}
}
