// Copyright (C) 2025 thomas9911. All Rights Reserved.

package outliner

import (
	"fmt"
	"strings"
)

// A Span describes a contiguous span of a source input as half-open byte
// offsets. A span is purely descriptive and carries no ownership of the
// text it covers.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// lineCol derives the line and column of the given byte offset in text.
// Offsets are resolved on demand so the lexer does not carry line-tracking
// state through its scan loop.
func lineCol(text string, off int) LineCol {
	if off > len(text) {
		off = len(text)
	}
	line := strings.Count(text[:off], "\n")
	start := strings.LastIndexByte(text[:off], '\n') + 1
	return LineCol{Line: line + 1, Column: off - start}
}
