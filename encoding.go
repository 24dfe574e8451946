// Copyright (C) 2025 thomas9911. All Rights Reserved.

package outliner

import (
	"errors"
	"strings"

	"github.com/thomas9911/json-outliner/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a string literal. The contents are escaped and
// enclosing double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a string literal. The enclosing quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
//
// The lexer and parser never unescape on their own; this is the explicit
// decoding step for callers that want the plain text.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
