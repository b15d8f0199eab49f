package goforge_test

import (
	"reflect"
	"testing"

	goforge "github.com/reoring/goforge"
)

func TestArgs_ReadOnlyView(t *testing.T) {
	b := goforge.MustNew[Point]().MustSet("y", 2).MustSet("x", 1)
	args := b.Args()

	if got := args.Keys(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("expected sorted keys [x y], got %v", got)
	}
	if !args.Has("x") || args.Has("z") {
		t.Fatalf("membership checks wrong")
	}

	// mutating a copy must not leak back into the builder
	cp := args.Copy()
	cp["x"] = 99
	if v, _ := b.Args().Get("x"); v != 1 {
		t.Fatalf("copy mutation leaked into builder: %v", v)
	}
}

func TestArgs_ForEachStops(t *testing.T) {
	b := goforge.MustNew[Point]().MustSet("x", 1).MustSet("y", 2)
	var seen []string
	b.Args().ForEach(func(name string, v any) bool {
		seen = append(seen, name)
		return false
	})
	if len(seen) != 1 {
		t.Fatalf("expected iteration to stop after one entry, got %v", seen)
	}
}

func TestFieldSet_Names(t *testing.T) {
	b := goforge.MustNew[Point]()
	rem := b.Remaining()
	if rem.Len() != 2 || !rem.Has("x") || !rem.Has("y") {
		t.Fatalf("unexpected remaining set: %v", rem.Names())
	}
	if got := rem.Names(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("expected sorted names, got %v", got)
	}
}
