// Copyright (C) 2025 thomas9911. All Rights Reserved.

// Package escape handles the escape sequences of string literals.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

const hexDigit = "0123456789abcdef"

// Quote escapes src for inclusion in a string literal. The enclosing
// quotation marks are not added.
func Quote(src mem.RO) []byte {
	out := make([]byte, 0, src.Len())
	i := 0
	for i < src.Len() {
		b := src.At(i)
		if b < utf8.RuneSelf {
			switch {
			case b == '"' || b == '\\':
				out = append(out, '\\', b)
			case b >= ' ':
				out = append(out, b)
			case b == '\b':
				out = append(out, '\\', 'b')
			case b == '\f':
				out = append(out, '\\', 'f')
			case b == '\n':
				out = append(out, '\\', 'n')
			case b == '\r':
				out = append(out, '\\', 'r')
			case b == '\t':
				out = append(out, '\\', 't')
			default:
				out = appendUnicodeEscape(out, rune(b))
			}
			i++
			continue
		}

		r, n := mem.DecodeRune(src.SliceFrom(i))
		switch r {
		case utf8.RuneError, '\u2028', '\u2029':
			// replacement rune and line/paragraph separators
			out = appendUnicodeEscape(out, r)
		default:
			out = utf8.AppendRune(out, r)
		}
		i += n
	}
	return out
}

// Unquote decodes the body of a string literal, with the enclosing
// quotation marks already removed. Escape sequences are replaced with
// their unescaped equivalents; an invalid escape decodes to the Unicode
// replacement rune, and an escape cut short by the end of the input is an
// error.
func Unquote(src mem.RO) ([]byte, error) {
	out := make([]byte, 0, src.Len())
	i := 0
	for i < src.Len() {
		b := src.At(i)
		if b != '\\' {
			out = append(out, b)
			i++
			continue
		}
		if i+1 == src.Len() {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src.SliceFrom(i + 1))
		if n == 0 {
			n = 1
		}
		i += 1 + n

		switch r {
		case '"', '\\', '/':
			out = append(out, byte(r))
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			if src.Len()-i < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			dec := utf8.RuneError
			if v, ok := parseHex4(src, i); ok {
				dec = v
			}
			out = utf8.AppendRune(out, dec)
			i += 4
		default:
			out = utf8.AppendRune(out, utf8.RuneError)
		}
	}
	return out, nil
}

// parseHex4 decodes the four hexadecimal digits of a \uXXXX escape
// starting at offset off.
func parseHex4(src mem.RO, off int) (rune, bool) {
	var v rune
	for i := off; i < off+4; i++ {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b-'a') + 10
		case 'A' <= b && b <= 'F':
			v += rune(b-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

func appendUnicodeEscape(out []byte, r rune) []byte {
	return append(out, '\\', 'u',
		hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
}
