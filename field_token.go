package goforge

import "reflect"

// FieldToken identifies a top-level struct field of T using its resolved key
// name. Obtain it via FieldOf to ensure compile-time linkage to the struct
// field. It intentionally supports only top-level fields of T.
type FieldToken[T any] struct {
	key string
}

// Key returns the key name associated with this field token.
func (t FieldToken[T]) Key() string { return t.key }

// FieldOf returns the token for a top-level field of T selected by selector.
// Example: FieldOf[Point](func(p *Point) *int { return &p.X }) -> token for "x".
func FieldOf[T any, F any](selector func(*T) *F) FieldToken[T] {
	if selector == nil {
		panic("goforge.FieldOf: selector must not be nil")
	}
	var zero T
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == fp {
			name := ResolveStructKey(sf)
			if name == "" || name == "-" {
				panic("goforge.FieldOf: selected field is not exported or disabled")
			}
			return FieldToken[T]{key: name}
		}
	}
	panic("goforge.FieldOf: selector must return the address of a top-level field of T")
}
