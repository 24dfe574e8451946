// Copyright (C) 2025 thomas9911. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	outliner "github.com/thomas9911/json-outliner"
)

// ErrorKind classifies the failures reported by the parser.
type ErrorKind int

const (
	Lexer            ErrorKind = iota + 1 // the lexer reported a lexical error
	InvalidToken                          // a token appears where the grammar forbids it
	InvalidInteger                        // an integer literal failed to parse
	InvalidBoolean                        // a boolean literal failed to parse
	InvalidNumber                         // a float literal failed to parse
	DoubleSeparators                      // two consecutive separators in an array
	NoValue                               // the input ended without producing a value
)

var errorKindStr = [...]string{
	Lexer:            "lexer error",
	InvalidToken:     "invalid token",
	InvalidInteger:   "invalid integer",
	InvalidBoolean:   "invalid boolean",
	InvalidNumber:    "invalid number",
	DoubleSeparators: "double separators",
	NoValue:          "no value",
}

func (k ErrorKind) String() string {
	if k < 1 || int(k) >= len(errorKindStr) {
		return "unknown error"
	}
	return errorKindStr[k]
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Location outliner.LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s: %s", e.Location, e.Kind, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// A Parser consumes tokens from a lexer and builds a value tree. A parser
// is good for a single parse; construct a fresh one to reparse.
type Parser struct {
	lx *outliner.Lexer
}

// New constructs a parser over text.
func New(text string) *Parser { return &Parser{lx: outliner.NewLexer(text)} }

// NewWithLexer constructs a parser that consumes tokens from lx.
func NewWithLexer(lx *outliner.Lexer) *Parser { return &Parser{lx: lx} }

// Parse parses text and returns its root value. It is shorthand for
// New(text).Parse().
func Parse(text string) (Value, error) { return New(text).Parse() }

// Parse consumes the entire token stream and returns the root value, or
// an error of concrete type *SyntaxError. The first error encountered
// anywhere in the descent aborts the whole parse; no partial tree is
// returned.
//
// The returned tree is a view over the parser's input; call Materialize
// on it to sever that tie.
func (p *Parser) Parse() (root Value, err error) {
	defer p.recoverParseError(&root, &err)

	// The root loop consumes tokens to the end of the input. If the input
	// holds several top-level values the later ones replace the earlier,
	// and the last complete value wins.
	for {
		tok, ok := p.next()
		if !ok {
			break
		}
		if tok.Kind.IsWhitespace() {
			continue
		}
		root = p.parseValue(tok)
	}
	if root == nil {
		p.fail(NoValue, p.lx.Span(), "input holds no value")
	}
	return root, nil
}

func (p *Parser) recoverParseError(rootp *Value, errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*SyntaxError); ok {
			*rootp = nil // no partial tree is salvaged
			*errp = err
			return
		}
		panic(serr)
	}
}

// next pulls one token from the lexer. ok is false at end of input. A
// lexer error is terminal and is reported with kind Lexer no matter how
// deep in the stream it occurs.
func (p *Parser) next() (tok outliner.Token, ok bool) {
	err := p.lx.Next()
	if err == nil {
		return p.lx.Token(), true
	}
	if err == io.EOF {
		return outliner.Token{}, false
	}
	span := p.lx.Span()
	var lerr *outliner.LexError
	if errors.As(err, &lerr) {
		span = outliner.Span{Pos: lerr.Offset, End: lerr.Offset}
	}
	panic(&SyntaxError{
		Kind:     Lexer,
		Location: p.lx.LocationOf(span).First,
		Message:  err.Error(),
		err:      err,
	})
}

// parseValue consumes a single value beginning at tok.
// Precondition: tok is not whitespace.
func (p *Parser) parseValue(tok outliner.Token) Value {
	switch tok.Kind {
	case outliner.StartMapping:
		return p.parseMapping(tok)
	case outliner.StartArray:
		return p.parseArray(tok)
	case outliner.String:
		return p.stringValue(tok)
	case outliner.Integer:
		return p.integerValue(tok)
	case outliner.Float:
		return p.floatValue(tok)
	case outliner.Boolean:
		return p.booleanValue(tok)
	case outliner.Reference:
		return Ref{p.datumOf(tok)}
	default:
		p.fail(InvalidToken, tok.Span, "unexpected %v", tok.Kind)
		return nil
	}
}

// parseArray consumes array elements until "]".
// Precondition: open is the "[" token.
func (p *Parser) parseArray(open outliner.Token) Value {
	ar := &Array{pos: open.Span.Pos}
	sep := false // the previous meaningful token was a separator
	for {
		tok, ok := p.next()
		if !ok {
			p.fail(InvalidToken, open.Span, "unterminated array")
		}
		switch {
		case tok.Kind == outliner.Separator:
			if sep {
				p.fail(DoubleSeparators, tok.Span, "consecutive separators in array")
			}
			sep = true
		case tok.Kind.IsValue():
			ar.Values = append(ar.Values, p.parseValue(tok))
			sep = false
		case tok.Kind == outliner.EndArray:
			// A trailing separator directly before "]" is permitted.
			ar.end = tok.Span.End
			return ar
		case tok.Kind.IsWhitespace():
		default:
			p.fail(InvalidToken, tok.Span, "unexpected %v in array", tok.Kind)
		}
	}
}

// parseMapping consumes key/value members until "}". A string token sets
// the pending key unless a key and its separator are both pending, in
// which case it is the member's value (pair := string ':' value).
func (p *Parser) parseMapping(open outliner.Token) Value {
	obj := &Object{pos: open.Span.Pos, Fields: make(map[string]Value)}
	var key string
	haveKey := false // a key is pending
	haveSep := false // the pending key's ":" was seen
	for {
		tok, ok := p.next()
		if !ok {
			p.fail(InvalidToken, open.Span, "unterminated mapping")
		}
		switch {
		case tok.Kind.IsValue() && haveKey && haveSep:
			// Duplicate keys overwrite; last write wins.
			obj.Fields[key] = p.parseValue(tok)
			key, haveKey, haveSep = "", false, false
		case tok.Kind == outliner.String:
			key = trimQuotes(tok.Data)
			haveKey = true
		case tok.Kind == outliner.KeySeparator:
			if !haveKey {
				p.fail(InvalidToken, tok.Span, "%v with no pending key", tok.Kind)
			}
			haveSep = true
		case tok.Kind == outliner.Separator:
			key, haveKey, haveSep = "", false, false
		case tok.Kind == outliner.EndMapping:
			obj.end = tok.Span.End
			return obj
		case tok.Kind.IsWhitespace():
		default:
			p.fail(InvalidToken, tok.Span, "unexpected %v in mapping", tok.Kind)
		}
	}
}

// stringValue strips exactly the outermost pair of quotation marks.
// Escape sequences are left encoded; see String.Unescape.
func (p *Parser) stringValue(tok outliner.Token) Value {
	d := p.datumOf(tok)
	d.text = trimQuotes(tok.Data)
	return String{d}
}

func (p *Parser) integerValue(tok outliner.Token) Value {
	v, err := strconv.ParseInt(tok.Data, 10, 64)
	if err != nil {
		p.fail(InvalidInteger, tok.Span, "invalid integer %q", tok.Data)
	}
	return Integer{datum: p.datumOf(tok), value: v}
}

func (p *Parser) floatValue(tok outliner.Token) Value {
	v, err := strconv.ParseFloat(tok.Data, 64)
	if err != nil {
		p.fail(InvalidNumber, tok.Span, "invalid number %q", tok.Data)
	}
	return Number{datum: p.datumOf(tok), value: v}
}

// booleanValue converts a Boolean token. The lexer only emits Boolean for
// the exact keyword slices, so the failure arm guards a contract
// violation rather than reachable input.
func (p *Parser) booleanValue(tok outliner.Token) Value {
	switch tok.Data {
	case "true":
		return Bool{datum: p.datumOf(tok), value: true}
	case "false":
		return Bool{datum: p.datumOf(tok), value: false}
	}
	p.fail(InvalidBoolean, tok.Span, "invalid boolean %q", tok.Data)
	return nil
}

func (p *Parser) datumOf(tok outliner.Token) datum {
	return datum{pos: tok.Span.Pos, end: tok.Span.End, text: tok.Data}
}

func (p *Parser) fail(kind ErrorKind, span outliner.Span, msg string, args ...any) {
	panic(&SyntaxError{
		Kind:     kind,
		Location: p.lx.LocationOf(span).First,
		Message:  fmt.Sprintf(msg, args...),
	})
}

// trimQuotes removes the outermost quotation marks of a string token's
// data. The lexer guarantees both are present.
func trimQuotes(data string) string {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return data[1 : len(data)-1]
	}
	return data
}
