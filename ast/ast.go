// Copyright (C) 2025 thomas9911. All Rights Reserved.

// Package ast defines the value trees produced by parsing outliner text,
// and a parser that constructs value trees from source.
package ast

import (
	"strconv"
	"strings"

	outliner "github.com/thomas9911/json-outliner"
)

// A Value is a single node of a parsed value tree.
//
// Trees returned by the parser are views: every string payload is a slice
// of the original input, so the tree pins the input's backing array and is
// meant to live no longer than it. Materialize is the one explicit way
// out; there is no implicit conversion in either direction.
type Value interface {
	// Span reports the extent of the source text the node was parsed
	// from. It is purely descriptive; materialized nodes keep the span of
	// their origin.
	Span() outliner.Span

	// Materialize returns a deep copy of the node in which every string
	// payload is independently owned, free of any tie to the input
	// buffer.
	Materialize() Value

	// Equal reports whether the node is structurally equal to other.
	// Equality is content-based: spans are ignored, and object equality
	// does not depend on key order.
	Equal(other Value) bool
}

// A Datum is a Value with a raw text representation.
type Datum interface {
	Value
	Text() string
}

type datum struct {
	pos, end int
	text     string
}

// Span satisfies the Value interface.
func (d datum) Span() outliner.Span { return outliner.Span{Pos: d.pos, End: d.end} }

// Text satisfies the Datum interface.
func (d datum) Text() string { return d.text }

func (d datum) clone() datum {
	return datum{pos: d.pos, end: d.end, text: strings.Clone(d.text)}
}

// A String is a string value. Its text has the enclosing quotation marks
// stripped but escape sequences still encoded; use Unescape to decode
// them.
type String struct{ datum }

// NewString constructs a String whose raw text is s.
func NewString(s string) String { return String{datum{text: s}} }

// Value returns the string payload as written, without unescaping.
func (s String) Value() string { return s.text }

// Unescape decodes the escape sequences of s. It panics if the text is
// not a valid string-literal body.
func (s String) Unescape() string {
	dec, err := outliner.Unquote(`"` + s.text + `"`)
	if err != nil {
		panic(err)
	}
	return string(dec)
}

func (s String) Materialize() Value { return String{s.clone()} }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o.text == s.text
}

// An Integer is an integer value.
type Integer struct {
	datum
	value int64
}

// NewInteger constructs an Integer with value v.
func NewInteger(v int64) Integer {
	return Integer{datum: datum{text: strconv.FormatInt(v, 10)}, value: v}
}

func (z Integer) Int64() int64 { return z.value }

func (z Integer) Materialize() Value { return Integer{z.datum.clone(), z.value} }

func (z Integer) Equal(other Value) bool {
	o, ok := other.(Integer)
	return ok && o.value == z.value
}

// A Number is a floating-point value.
type Number struct {
	datum
	value float64
}

// NewNumber constructs a Number with value v.
func NewNumber(v float64) Number {
	return Number{datum: datum{text: strconv.FormatFloat(v, 'g', -1, 64)}, value: v}
}

func (n Number) Float64() float64 { return n.value }

func (n Number) Materialize() Value { return Number{n.datum.clone(), n.value} }

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && o.value == n.value
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

// NewBool constructs a Bool with value v.
func NewBool(v bool) Bool {
	text := "false"
	if v {
		text = "true"
	}
	return Bool{datum: datum{text: text}, value: v}
}

func (b Bool) Value() bool { return b.value }

func (b Bool) Materialize() Value { return Bool{b.datum.clone(), b.value} }

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o.value == b.value
}

// A Ref is an unresolved reference: a bare alphanumeric/underscore name
// stored verbatim. Resolution against a symbol table is outside this
// package.
type Ref struct{ datum }

// NewRef constructs a Ref with the given name.
func NewRef(name string) Ref { return Ref{datum{text: name}} }

// Name returns the referenced name.
func (r Ref) Name() string { return r.text }

func (r Ref) Materialize() Value { return Ref{r.clone()} }

func (r Ref) Equal(other Value) bool {
	o, ok := other.(Ref)
	return ok && o.text == r.text
}

// Null is the null value. The grammar has no null literal, so the parser
// never produces one; it exists for downstream construction.
type Null struct{ datum }

// NewNull constructs a Null.
func NewNull() Null { return Null{} }

func (n Null) Materialize() Value { return Null{n.clone()} }

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// An Array is an ordered sequence of values. Element order is exactly the
// order produced by the parser.
type Array struct {
	pos, end int

	Values []Value
}

// NewArray constructs an Array of the given values.
func NewArray(vs ...Value) *Array { return &Array{Values: vs} }

// Span satisfies the Value interface.
func (a *Array) Span() outliner.Span { return outliner.Span{Pos: a.pos, End: a.end} }

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) Materialize() Value {
	out := &Array{pos: a.pos, end: a.end, Values: make([]Value, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = v.Materialize()
	}
	return out
}

func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(o.Values) != len(a.Values) {
		return false
	}
	for i, v := range a.Values {
		if !v.Equal(o.Values[i]) {
			return false
		}
	}
	return true
}

// An Object is an unordered mapping from unique keys to values. Insertion
// order is not preserved, and storing a duplicate key overwrites the
// prior value.
type Object struct {
	pos, end int

	Fields map[string]Value
}

// NewObject constructs an Object over the given fields. The map is owned
// by the object afterward; a nil map is replaced with an empty one.
func NewObject(fields map[string]Value) *Object {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return &Object{Fields: fields}
}

// Span satisfies the Value interface.
func (o *Object) Span() outliner.Span { return outliner.Span{Pos: o.pos, End: o.end} }

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Fields) }

// Find returns the value mapped under key and reports whether it exists.
func (o *Object) Find(key string) (Value, bool) {
	v, ok := o.Fields[key]
	return v, ok
}

func (o *Object) Materialize() Value {
	out := &Object{pos: o.pos, end: o.end, Fields: make(map[string]Value, len(o.Fields))}
	for k, v := range o.Fields {
		out.Fields[strings.Clone(k)] = v.Materialize()
	}
	return out
}

func (o *Object) Equal(other Value) bool {
	p, ok := other.(*Object)
	if !ok || len(p.Fields) != len(o.Fields) {
		return false
	}
	for k, v := range o.Fields {
		w, ok := p.Fields[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}
