// Copyright (C) 2025 thomas9911. All Rights Reserved.

// Package outliner implements a lexer for a JSON-like data-interchange
// notation. The notation differs from JSON in three ways: integer and
// floating-point literals are distinct token kinds, whitespace is emitted
// as explicit tokens rather than discarded, and a bare
// alphanumeric/underscore word is a valid literal called a reference.
//
// # Scanning
//
// The Lexer type produces a lazy, forward-only token sequence over an
// input string. Construct a lexer with NewLexer and call its Next method
// to iterate over the stream. Next advances to the next input token and
// returns nil, or reports an error:
//
//	lx := outliner.NewLexer(input)
//	for lx.Next() == nil {
//	   log.Printf("Next token: %v", lx.Token().Kind)
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other
// error is a *LexError, which is terminal: the lexer produces no further
// tokens once it has reported one.
//
//	if lx.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", lx.Err())
//	}
//
// Tokens carry their byte span and the exact slice of input text they
// cover; they borrow from the input and are invalidated only when it is
// released.
//
// # Parsing
//
// The ast subpackage consumes the token stream and builds value trees;
// see its documentation. Resolving reference values against a symbol
// table, and serializing value trees back to text, are left to callers.
package outliner
