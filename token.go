// Copyright (C) 2025 thomas9911. All Rights Reserved.

package outliner

// Kind is the type of a lexical token in the outliner grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid      Kind = iota // invalid token
	StartMapping             // left brace "{"
	EndMapping               // right brace "}"
	StartArray               // left square bracket "["
	EndArray                 // right square bracket "]"
	Separator                // comma ","
	KeySeparator             // colon ":"
	Spacing                  // single space character
	TabSpacing               // single tab character
	NewLine                  // single newline character
	String                   // quoted string, quotes included
	Integer                  // number: integer with no fraction or exponent
	Float                    // number with fraction and/or exponent
	Boolean                  // constant: true or false
	Reference                // bare alphanumeric/underscore word
)

var kindStr = [...]string{
	Invalid:      "invalid token",
	StartMapping: `"{"`,
	EndMapping:   `"}"`,
	StartArray:   `"["`,
	EndArray:     `"]"`,
	Separator:    `","`,
	KeySeparator: `":"`,
	Spacing:      "space",
	TabSpacing:   "tab",
	NewLine:      "newline",
	String:       "string",
	Integer:      "integer",
	Float:        "float",
	Boolean:      "boolean",
	Reference:    "reference",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsWhitespace reports whether k is one of the whitespace token kinds.
// Whitespace is never dropped by the lexer; discarding it is the parser's
// concern.
func (k Kind) IsWhitespace() bool {
	return k == Spacing || k == TabSpacing || k == NewLine
}

// IsValue reports whether k can begin a value: a scalar literal or the
// opening delimiter of an array or mapping.
func (k Kind) IsValue() bool {
	switch k {
	case String, Integer, Float, Boolean, Reference, StartMapping, StartArray:
		return true
	}
	return false
}

// A Token is a single classified lexical unit. Data is always exactly the
// slice of the input covered by Span; it shares the input's backing array
// and remains valid for as long as the input does.
type Token struct {
	Kind Kind
	Span Span
	Data string
}
