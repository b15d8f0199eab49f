package goforge_test

import (
	"testing"

	goforge "github.com/reoring/goforge"
)

func TestFieldOf_ResolvesTaggedKey(t *testing.T) {
	tok := goforge.FieldOf[tagged](func(v *tagged) *string { return &v.Email })
	if tok.Key() != "email" {
		t.Fatalf("expected key email, got %q", tok.Key())
	}
	tok2 := goforge.FieldOf[tagged](func(v *tagged) *string { return &v.ID })
	if tok2.Key() != "id" {
		t.Fatalf("expected key id, got %q", tok2.Key())
	}
}

func TestFieldOf_NilSelectorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil selector")
		}
	}()
	goforge.FieldOf[Point, int](nil)
}

func TestFieldOf_DisabledFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for json:\"-\" field")
		}
	}()
	goforge.FieldOf[tagged](func(v *tagged) *string { return &v.Skipped })
}
