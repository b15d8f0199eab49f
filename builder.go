package goforge

import (
	"math"
	"reflect"
	"sort"

	"github.com/reoring/goforge/i18n"
)

// Builder is an in-progress, immutable builder for values of struct type T.
// It collects one value per declared field, in any order; Build constructs a
// T once every required field has a value. Every successful Set returns a new
// Builder and leaves the receiver unchanged, so any intermediate builder may
// be kept and extended along independent chains.
//
// The zero Builder is not usable; obtain one via New, MustNew or NewWith.
type Builder[T any] struct {
	schema    *Schema
	args      map[string]any
	remaining map[string]struct{} // declared fields not yet set
	missing   map[string]struct{} // required fields not yet set
	consumed  map[string]struct{} // fields that already received a value
}

// NewWith returns a fresh builder over a pre-built schema (for example one
// compiled by the dsl package).
func NewWith[T any](s *Schema) Builder[T] {
	b := Builder[T]{schema: s}
	if s == nil {
		return b
	}
	b.args = map[string]any{}
	b.consumed = map[string]struct{}{}
	b.remaining = make(map[string]struct{}, len(s.fields))
	for _, f := range s.fields {
		b.remaining[f.Name] = struct{}{}
	}
	b.missing = make(map[string]struct{}, len(s.required))
	for name := range s.required {
		b.missing[name] = struct{}{}
	}
	return b
}

// Set records a value for the named field and returns the extended builder.
// It fails with a consumed_field issue when the field already has a value,
// with an unknown_field issue when the name is outside the schema, and with
// an invalid_type issue when the value does not fit the field's static type.
func (b Builder[T]) Set(name string, v any) (Builder[T], error) {
	if b.schema == nil {
		return b, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "builder not initialized; use New or NewWith"}}
	}
	if _, free := b.remaining[name]; !free {
		if _, used := b.consumed[name]; used {
			return b, Issues{Issue{
				Path: "/" + name, Code: CodeConsumedField,
				Message: i18n.T(CodeConsumedField, map[string]string{"class": b.schema.name, "field": name}),
				Params:  map[string]any{"class": b.schema.name, "field": name},
			}}
		}
		return b, Issues{Issue{
			Path: "/" + name, Code: CodeUnknownField,
			Message: i18n.T(CodeUnknownField, map[string]string{"field": name}),
			Params:  map[string]any{"field": name},
		}}
	}
	f, _ := b.schema.Field(name)
	cv, ok := coerceValue(v, f.Type)
	if !ok {
		got := "nil"
		if v != nil {
			got = reflect.TypeOf(v).String()
		}
		return b, Issues{Issue{
			Path: "/" + name, Code: CodeInvalidType,
			Message: i18n.T(CodeInvalidType, map[string]string{"class": b.schema.name, "field": name}),
			Params:  map[string]any{"class": b.schema.name, "field": name, "want": f.Type.String(), "got": got},
		}}
	}
	nb := Builder[T]{
		schema:    b.schema,
		args:      make(map[string]any, len(b.args)+1),
		remaining: make(map[string]struct{}, len(b.remaining)-1),
		missing:   make(map[string]struct{}, len(b.missing)),
		consumed:  make(map[string]struct{}, len(b.consumed)+1),
	}
	for k, val := range b.args {
		nb.args[k] = val
	}
	nb.args[name] = cv
	for k := range b.remaining {
		if k != name {
			nb.remaining[k] = struct{}{}
		}
	}
	for k := range b.missing {
		if k != name {
			nb.missing[k] = struct{}{}
		}
	}
	for k := range b.consumed {
		nb.consumed[k] = struct{}{}
	}
	nb.consumed[name] = struct{}{}
	return nb, nil
}

// MustSet is like Set but panics on error.
func (b Builder[T]) MustSet(name string, v any) Builder[T] {
	nb, err := b.Set(name, v)
	if err != nil {
		panic(err)
	}
	return nb
}

// SetField records a value for the field selected by a FieldToken.
func (b Builder[T]) SetField(tok FieldToken[T], v any) (Builder[T], error) {
	return b.Set(tok.Key(), v)
}

// Build constructs a T from the collected arguments. Unassigned defaulted
// fields take their declared defaults; unassigned required fields fail the
// build with one required issue per missing field. Build is an observation,
// not a transition: the builder stays valid and may keep accepting fields.
func (b Builder[T]) Build() (T, error) {
	var zero T
	if b.schema == nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "builder not initialized; use New or NewWith"}}
	}
	if len(b.missing) > 0 {
		present := sortedNames(b.consumed)
		missing := sortedNames(b.missing)
		var iss Issues
		for _, name := range missing {
			iss = AppendIssues(iss, Issue{
				Path: "/" + name, Code: CodeRequired,
				Message: i18n.T(CodeRequired, map[string]string{"class": b.schema.name, "field": name}),
				Params:  map[string]any{"class": b.schema.name, "field": name, "present": present, "missing": missing},
			})
		}
		return zero, iss
	}
	pv := reflect.New(b.schema.rt)
	rv := pv.Elem()
	for _, f := range b.schema.fields {
		val, set := b.args[f.Name]
		if !set {
			if !f.HasDefault {
				continue
			}
			val = f.Default
		}
		if err := assignField(rv.Field(f.index), f, val); err != nil {
			return zero, err
		}
	}
	var outAny any
	if b.schema.ptr {
		outAny = pv.Interface()
	} else {
		outAny = rv.Interface()
	}
	out, ok := outAny.(T)
	if !ok {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "schema target does not match builder type"}}
	}
	return out, nil
}

// MustBuild is like Build but panics on error.
func (b Builder[T]) MustBuild() T {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

// Args returns a read-only view of the collected arguments.
func (b Builder[T]) Args() Args { return Args{m: b.args} }

// Consumed returns the set of fields that already received a value.
func (b Builder[T]) Consumed() FieldSet { return FieldSet{m: b.consumed} }

// Remaining returns the set of declared fields not yet set.
func (b Builder[T]) Remaining() FieldSet { return FieldSet{m: b.remaining} }

// MissingRequired returns the set of required fields not yet set. Build
// succeeds exactly when this set is empty.
func (b Builder[T]) MissingRequired() FieldSet { return FieldSet{m: b.missing} }

// Target returns the name of the type being built ("" for the zero Builder).
func (b Builder[T]) Target() string {
	if b.schema == nil {
		return ""
	}
	return b.schema.name
}

// Schema returns the builder's schema (nil for the zero Builder).
func (b Builder[T]) Schema() *Schema { return b.schema }

// coerceValue adapts v to type t. nil is accepted only for nillable kinds.
func coerceValue(v any, t reflect.Type) (any, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return nil, true
		default:
			return nil, false
		}
	}
	cv, ok := convertValue(reflect.ValueOf(v), t)
	if !ok {
		return nil, false
	}
	return cv.Interface(), true
}

func assignField(fv reflect.Value, f Field, val any) error {
	if !fv.CanSet() {
		return nil
	}
	if val == nil {
		// nillable fields keep their zero (nil) value
		return nil
	}
	vv := reflect.ValueOf(val)
	cv, ok := convertValue(vv, fv.Type())
	if !ok {
		return Issues{Issue{
			Path: "/" + f.Name, Code: CodeInvalidType,
			Message: i18n.T(CodeInvalidType, map[string]string{"field": f.Name}),
			Params:  map[string]any{"field": f.Name, "want": fv.Type().String(), "got": vv.Type().String()},
		}}
	}
	fv.Set(cv)
	return nil
}

// convertValue adapts rv to type t. Beyond assignability it admits only
// conversions that preserve the value exactly: numeric conversions are
// checked for sign, truncation, overflow and precision, and other kinds
// convert only between types of the same kind (named types). Language
// conversions that reinterpret the value, like int to string, are rejected.
func convertValue(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if !rv.Type().ConvertibleTo(t) {
		return reflect.Value{}, false
	}
	sk, dk := rv.Kind(), t.Kind()
	if isNumericKind(sk) || isNumericKind(dk) {
		if !isNumericKind(sk) || !isNumericKind(dk) {
			return reflect.Value{}, false
		}
		return convertNumeric(rv, t)
	}
	if sk != dk {
		return reflect.Value{}, false
	}
	return rv.Convert(t), true
}

func convertNumeric(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	dst := reflect.New(t).Elem()
	sk, dk := rv.Kind(), t.Kind()
	switch {
	case isFloatKind(sk) && isIntKind(dk):
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || dst.OverflowInt(int64(f)) {
			return reflect.Value{}, false
		}
	case isFloatKind(sk) && isUintKind(dk):
		f := rv.Float()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || dst.OverflowUint(uint64(f)) {
			return reflect.Value{}, false
		}
	case isIntKind(sk) && isIntKind(dk):
		if dst.OverflowInt(rv.Int()) {
			return reflect.Value{}, false
		}
	case isIntKind(sk) && isUintKind(dk):
		i := rv.Int()
		if i < 0 || dst.OverflowUint(uint64(i)) {
			return reflect.Value{}, false
		}
	case isUintKind(sk) && isIntKind(dk):
		u := rv.Uint()
		if u > math.MaxInt64 || dst.OverflowInt(int64(u)) {
			return reflect.Value{}, false
		}
	case isUintKind(sk) && isUintKind(dk):
		if dst.OverflowUint(rv.Uint()) {
			return reflect.Value{}, false
		}
	}
	cv := rv.Convert(t)
	// conversions into float kinds must round-trip without precision loss
	if isFloatKind(dk) && cv.Convert(rv.Type()).Interface() != rv.Interface() {
		return reflect.Value{}, false
	}
	return cv, true
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumericKind(k reflect.Kind) bool {
	return isIntKind(k) || isUintKind(k) || isFloatKind(k)
}

func sortedNames(m map[string]struct{}) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
