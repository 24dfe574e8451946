// Copyright (C) 2025 thomas9911. All Rights Reserved.

package outliner_test

import (
	"testing"

	outliner "github.com/thomas9911/json-outliner"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "\"\""},
		{" ", "\" \""},
		{"a\t\nb", "\"a\\t\\nb\""},
		{"\b\f\r", "\"\\b\\f\\r\""},
		{"\x00\x01\x02", "\"\\u0000\\u0001\\u0002\""},
		{"a \"b c\\\" d\"", "\"a \\\"b c\\\\\\\" d\\\"\""},
		{"\u2028 \u2029 \ufffd", "\"\\u2028 \\u2029 \\ufffd\""},
		{"This is the end\v", "\"This is the end\\u000b\""},
		{"h\u00e9llo w\u00f6rld", "\"h\u00e9llo w\u00f6rld\""},
	}
	for _, test := range tests {
		got := outliner.Quote(test.input)
		if got != test.want {
			t.Errorf("Quote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{"", "", true},                // missing quotes
		{"\"missing quote", "", true}, // missing quotes
		{"missing quote\"", "", true}, // missing quotes
		{"\"\"", "", false},
		{"\"ok go\"", "ok go", false},
		{"\"abc\\ndef\"", "abc\ndef", false},
		{"\"\\b\\f\\n\\r\\t\"", "\b\f\n\r\t", false},
		{"\"a \\u0026 b\"", "a & b", false}, // short Unicode escape
		{"\"\\u\"", "", true},               // incomplete Unicode escape
		{"\"\\u00\"", "", true},             // incomplete Unicode escape
		{"\"\\u00x9\"", "\ufffd", false},    // invalid Unicode escape
		{"\"\\q\"", "\ufffd", false},        // invalid escape
		{"\"a\\\"b\"", "a\"b", false},
		{"\"a\\\\b\\\\cd\"", "a\\b\\cd", false},
		{"\"a\\/b\"", "a/b", false},
	}

	for _, test := range tests {
		got, err := outliner.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			}
			continue
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if string(got) != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"tabs\tand\nlines",
		"nested \"quotes\" and \\ slashes",
		"control \x1e bytes",
		"wide \u2713 runes",
	}
	for _, test := range tests {
		dec, err := outliner.Unquote(outliner.Quote(test))
		if err != nil {
			t.Errorf("Unquote(Quote(%#q)): unexpected error: %v", test, err)
		} else if string(dec) != test {
			t.Errorf("Round trip: got %#q, want %#q", dec, test)
		}
	}
}
