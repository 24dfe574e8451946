// Copyright (C) 2025 thomas9911. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/thomas9911/json-outliner/ast"
)

func TestMaterialize(t *testing.T) {
	const input = `{"a": [1, "x\ty", true, my_ref], "b": 2.5, "c": {"d": "e"}}`
	view := mustParse(t, input)

	owned := view.Materialize()
	if diff := cmp.Diff(view, owned); diff != "" {
		t.Errorf("Materialize changed the tree (-view, +owned):\n%s", diff)
	}
	if got, want := owned.Span(), view.Span(); got != want {
		t.Errorf("Materialized span: got %+v, want %+v", got, want)
	}
}

func TestMaterializeIndependence(t *testing.T) {
	t.Run("Object", func(t *testing.T) {
		view := ast.NewObject(map[string]ast.Value{"a": ast.NewInteger(1)})
		owned := view.Materialize().(*ast.Object)

		view.Fields["b"] = ast.NewBool(true)
		if _, ok := owned.Find("b"); ok {
			t.Error("Materialized object shares the source map")
		}
	})

	t.Run("Array", func(t *testing.T) {
		view := ast.NewArray(ast.NewInteger(1))
		owned := view.Materialize().(*ast.Array)

		view.Values[0] = ast.NewBool(false)
		if !owned.Values[0].Equal(ast.NewInteger(1)) {
			t.Error("Materialized array shares the source slice")
		}
	})
}

func TestObjectFind(t *testing.T) {
	obj := ast.NewObject(map[string]ast.Value{
		"name": ast.NewString("Dennis"),
		"age":  ast.NewInteger(37),
	})
	if obj.Len() != 2 {
		t.Errorf("Len: got %d, want 2", obj.Len())
	}
	v, ok := obj.Find("name")
	if !ok {
		t.Fatal(`Key "name" not found`)
	}
	s, ok := v.(ast.String)
	if !ok {
		t.Fatalf("Value is %T, not ast.String", v)
	}
	if s.Value() != "Dennis" {
		t.Errorf("Value: got %q, want %q", s.Value(), "Dennis")
	}
	if _, ok := obj.Find("missing"); ok {
		t.Error(`Key "missing" unexpectedly found`)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b ast.Value
		want bool
	}{
		{ast.NewInteger(1), ast.NewInteger(1), true},
		{ast.NewInteger(1), ast.NewInteger(2), false},

		// Integer and float values are distinct kinds even when the
		// numeric values coincide.
		{ast.NewInteger(1), ast.NewNumber(1), false},

		{ast.NewString("x"), ast.NewString("x"), true},
		{ast.NewString("x"), ast.NewRef("x"), false},
		{ast.NewNull(), ast.NewNull(), true},

		{ast.NewArray(ast.NewInteger(1)), ast.NewArray(ast.NewInteger(1)), true},
		{ast.NewArray(ast.NewInteger(1)), ast.NewArray(), false},

		{
			ast.NewObject(map[string]ast.Value{"a": ast.NewBool(true)}),
			ast.NewObject(map[string]ast.Value{"a": ast.NewBool(true)}),
			true,
		},
		{
			ast.NewObject(map[string]ast.Value{"a": ast.NewBool(true)}),
			ast.NewObject(map[string]ast.Value{"b": ast.NewBool(true)}),
			false,
		},
	}
	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("Equal(%+v, %+v): got %v, want %v", test.a, test.b, got, test.want)
		}
		// Equality is symmetric.
		if got := test.b.Equal(test.a); got != test.want {
			t.Errorf("Equal(%+v, %+v): got %v, want %v", test.b, test.a, got, test.want)
		}
	}
}

func TestStringUnescape(t *testing.T) {
	s := mustParse(t, `"a\tb c"`).(ast.String)
	if got, want := s.Value(), `a\tb c`; got != want {
		t.Errorf("Value: got %#q, want %#q", got, want)
	}
	if got, want := s.Unescape(), "a\tb c"; got != want {
		t.Errorf("Unescape: got %#q, want %#q", got, want)
	}

	// Unescape panics on a malformed literal body.
	bad := ast.NewString(`\u00`)
	mtest.MustPanic(t, func() { bad.Unescape() })
}

func TestRefName(t *testing.T) {
	r := mustParse(t, "target_name_42").(ast.Ref)
	if got := r.Name(); got != "target_name_42" {
		t.Errorf("Name: got %q, want %q", got, "target_name_42")
	}
}
