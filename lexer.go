// Copyright (C) 2025 thomas9911. All Rights Reserved.

package outliner

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// A Lexer reads lexical tokens from an input string. Each call to Next
// advances the lexer to the next token, or reports an error. The sequence
// is forward-only; to rescan, construct a fresh lexer over the same input.
//
// The lexer never discards whitespace: each space, tab, and newline
// character is emitted as its own token. Characters with no lexical rule
// are consumed silently and fall inside the span of the next emitted
// token.
type Lexer struct {
	text string
	cur  int // offset of the next unread byte
	pos  int // start offset of the token being scanned
	tok  Token
	err  error

	inString bool // inside a quoted string
	escaped  bool // the next string character is escaped
	inFloat  bool // the open numeric literal has a fraction or exponent
	inNumber bool // inside a numeric literal
	inRef    bool // inside a reference run
}

// NewLexer constructs a lexer over text. Tokens borrow from text and
// remain valid for as long as text does.
func NewLexer(text string) *Lexer { return &Lexer{text: text} }

var (
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
)

// Next advances l to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
//
// A *LexError is terminal: once Next has reported one, every subsequent
// call returns the same error and no further tokens are produced, even if
// the remaining input would be well formed on its own.
func (l *Lexer) Next() error {
	if l.err != nil {
		return l.err
	}
	for l.cur < len(l.text) {
		i := l.cur
		ch := l.text[i]
		l.cur++

		switch {
		case l.inString:
			switch {
			case l.escaped:
				l.escaped = false // the escape covers exactly this character
			case ch == '\\':
				l.escaped = true
			case ch == '"':
				l.inString = false
				l.emit(String, l.cur)
				return nil
			}
			// Other characters are consumed verbatim; escape sequences are
			// not decoded at this stage.

		case ch == '"':
			l.inString = true

		case ch == '.' && l.inFloat:
			return l.failf(i, "second decimal point in number")

		case ch == '.':
			l.inFloat = true

		case isDigit(ch) && !l.inRef:
			// A digit ends the literal exactly when the next character is
			// outside the continuation set {e, -, ., digit}. End of input
			// counts as a terminator.
			if !l.peekIs(isNumberCont) {
				kind := Integer
				if l.inFloat {
					kind = Float
				}
				l.emit(kind, l.cur)
				return nil
			}
			l.inNumber = true

		case ch == 'e' && l.inNumber && !l.inRef:
			// Exponent marker: the literal is a float from here on.
			l.inFloat = true

		case (ch == 't' || ch == 'f') && !l.inRef:
			if end, ok := l.keyword(ch); ok {
				l.cur = end
				l.emit(Boolean, end)
				return nil
			}
			// Not a boolean keyword at this position; the character starts
			// or extends a reference run instead.
			fallthrough

		case isSnakecase(ch):
			// A reference run ends exactly when the next character is not
			// alphanumeric or underscore. End of input counts as a
			// terminator.
			if !l.peekIs(isSnakecase) {
				l.emit(Reference, l.cur)
				return nil
			}
			l.inRef = true

		case ch == '[':
			l.emit(StartArray, l.cur)
			return nil
		case ch == ']':
			l.emit(EndArray, l.cur)
			return nil
		case ch == '{':
			l.emit(StartMapping, l.cur)
			return nil
		case ch == '}':
			l.emit(EndMapping, l.cur)
			return nil
		case ch == ',':
			l.emit(Separator, l.cur)
			return nil
		case ch == ':':
			l.emit(KeySeparator, l.cur)
			return nil
		case ch == ' ':
			l.emit(Spacing, l.cur)
			return nil
		case ch == '\t':
			l.emit(TabSpacing, l.cur)
			return nil
		case ch == '\n':
			l.emit(NewLine, l.cur)
			return nil

		default:
			// No rule matches: consume silently. The bytes are absorbed
			// into the span of the next emitted token, which is how a
			// numeric literal acquires its leading sign.
		}
	}
	return l.setErr(io.EOF)
}

// Token returns the current token. It is valid only after a call to Next
// that returned nil.
func (l *Lexer) Token() Token { return l.tok }

// Err returns the last error reported by Next.
func (l *Lexer) Err() error { return l.err }

// Span returns the location span of the current token.
func (l *Lexer) Span() Span { return l.tok.Span }

// Location returns the complete location of the current token.
func (l *Lexer) Location() Location { return l.LocationOf(l.tok.Span) }

// LocationOf derives the full location of an arbitrary span of the input.
func (l *Lexer) LocationOf(s Span) Location {
	return Location{
		Span:  s,
		First: lineCol(l.text, s.Pos),
		Last:  lineCol(l.text, s.End),
	}
}

// emit records the token spanning [l.pos, end) and resets the scan state
// for the next one.
func (l *Lexer) emit(kind Kind, end int) {
	l.tok = Token{Kind: kind, Span: Span{Pos: l.pos, End: end}, Data: l.text[l.pos:end]}
	l.pos = end
	l.inString = false
	l.escaped = false
	l.inFloat = false
	l.inNumber = false
	l.inRef = false
}

// peek returns the next unread byte without consuming it.
// ok is false at end of input.
func (l *Lexer) peek() (_ byte, ok bool) {
	if l.cur >= len(l.text) {
		return 0, false
	}
	return l.text[l.cur], true
}

// peekIs reports whether the next unread byte exists and satisfies f.
func (l *Lexer) peekIs(f func(byte) bool) bool {
	ch, ok := l.peek()
	return ok && f(ch)
}

// keyword reports whether the literal text "true" or "false" (selected by
// ch) begins at the current scan-start position, comparing the raw input
// slice directly. end is the offset just past the keyword.
func (l *Lexer) keyword(ch byte) (end int, ok bool) {
	want := kwTrue
	if ch == 'f' {
		want = kwFalse
	}
	end = l.pos + want.Len()
	if end > len(l.text) || !mem.S(l.text[l.pos:end]).Equal(want) {
		return 0, false
	}
	return end, true
}

func (l *Lexer) setErr(err error) error {
	l.err = err
	return err
}

func (l *Lexer) failf(off int, msg string, args ...any) error {
	return l.setErr(&LexError{Offset: off, Message: fmt.Sprintf(msg, args...)})
}

// A LexError describes a lexical error at a byte offset of the input.
// The lexer that reported it produces no further tokens.
type LexError struct {
	Offset  int
	Message string
}

func (e *LexError) Error() string { return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset) }

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isNumberCont(ch byte) bool {
	return ch == 'e' || ch == '-' || ch == '.' || isDigit(ch)
}

func isSnakecase(ch byte) bool {
	return ch == '_' || isDigit(ch) ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
