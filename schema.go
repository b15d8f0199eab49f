package goforge

import (
	"reflect"
	"sync"

	"github.com/reoring/goforge/i18n"
	"github.com/reoring/goforge/internal/tagval"
)

// Field describes one declared field of a target struct type.
type Field struct {
	Name       string // external key resolved via ResolveStructKey
	Type       reflect.Type
	Required   bool
	HasDefault bool
	Default    any

	index int // struct field index within the target type
}

// Schema is the introspected shape of a target struct type: its declared
// fields in declaration order, and which of them are required. It is
// read-only after construction and safe to share across concurrent builder
// chains.
type Schema struct {
	name     string
	rt       reflect.Type // the underlying struct type
	ptr      bool         // the target type is *struct
	fields   []Field
	byName   map[string]int
	required map[string]struct{}
}

// Name returns the target type's name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// Field returns the declaration for the given key.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Keys returns the declared field keys in declaration order.
func (s *Schema) Keys() []string {
	ks := make([]string, len(s.fields))
	for i, f := range s.fields {
		ks[i] = f.Name
	}
	return ks
}

// Required returns the set of required field keys.
func (s *Schema) Required() FieldSet { return FieldSet{m: s.required} }

// schemaCache memoizes tag-derived schemas per target type. Read-only after
// store, so safe for concurrent builder chains.
var schemaCache sync.Map // reflect.Type -> *Schema

// SchemaOf derives the Schema for struct type T from its struct tags. A field
// is defaulted when its forge tag carries default=<JSON literal> or optional
// (zero-value default); every other declared field is required. The result is
// memoized per type and shared.
func SchemaOf[T any]() (*Schema, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := schemaCache.Load(rt); ok {
		return v.(*Schema), nil
	}
	s, err := schemaForType(rt)
	if err != nil {
		return nil, err
	}
	if v, loaded := schemaCache.LoadOrStore(rt, s); loaded {
		return v.(*Schema), nil
	}
	return s, nil
}

func schemaForType(rt reflect.Type) (*Schema, error) {
	base := rt
	ptr := false
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
		ptr = true
	}
	if base.Kind() != reflect.Struct {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "target type must be a struct"}}
	}
	s := &Schema{
		name:     base.String(),
		rt:       base,
		ptr:      ptr,
		byName:   map[string]int{},
		required: map[string]struct{}{},
	}
	for i := 0; i < base.NumField(); i++ {
		sf := base.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		if _, dup := s.byName[name]; dup {
			return nil, Issues{Issue{
				Path: "/" + name, Code: CodeParseError,
				Message: i18n.T(CodeParseError, map[string]string{"field": name}),
				Hint:    "duplicate field key",
				Params:  map[string]any{"class": s.name, "field": name},
			}}
		}
		f := Field{Name: name, Type: sf.Type, index: i}
		opts := parseTagOptions(sf.Tag.Get("forge"))
		switch {
		case opts.hasDefault:
			dv, err := tagval.Decode(opts.defaultLit, sf.Type)
			if err != nil {
				return nil, Issues{Issue{
					Path: "/" + name, Code: CodeInvalidType,
					Message: i18n.T(CodeInvalidType, map[string]string{"field": name}),
					Hint:    "default literal does not decode into the field type",
					Cause:   err,
					Params:  map[string]any{"class": s.name, "field": name},
				}}
			}
			f.HasDefault = true
			f.Default = dv
		case opts.optional:
			f.HasDefault = true
			f.Default = reflect.Zero(sf.Type).Interface()
		default:
			f.Required = true
			s.required[name] = struct{}{}
		}
		s.byName[name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// FieldDecl declares one field for CompileSchema. A declaration with neither
// Required nor HasDefault yields an optional field with a zero-value default.
type FieldDecl struct {
	Name       string
	Required   bool
	HasDefault bool
	Default    any
}

// CompileSchema builds a Schema for struct type T from explicit declarations,
// ignoring required/default struct tags (key names still resolve via
// ResolveStructKey). Fields of T left undeclared are excluded from the
// schema. Results are not memoized; explicit schemas may differ per call.
func CompileSchema[T any](decls ...FieldDecl) (*Schema, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	base := rt
	ptr := false
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
		ptr = true
	}
	if base.Kind() != reflect.Struct {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "target type must be a struct"}}
	}
	idxByName := make(map[string]int)
	for i := 0; i < base.NumField(); i++ {
		sf := base.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		idxByName[name] = i
	}
	s := &Schema{
		name:     base.String(),
		rt:       base,
		ptr:      ptr,
		byName:   map[string]int{},
		required: map[string]struct{}{},
	}
	for _, d := range decls {
		idx, ok := idxByName[d.Name]
		if !ok {
			return nil, Issues{Issue{
				Path: "/" + d.Name, Code: CodeUnknownField,
				Message: i18n.T(CodeUnknownField, map[string]string{"field": d.Name}),
				Hint:    "declared field does not exist on the target type",
				Params:  map[string]any{"class": s.name, "field": d.Name},
			}}
		}
		if _, dup := s.byName[d.Name]; dup {
			return nil, Issues{Issue{
				Path: "/" + d.Name, Code: CodeParseError,
				Message: i18n.T(CodeParseError, map[string]string{"field": d.Name}),
				Hint:    "duplicate field declaration",
				Params:  map[string]any{"class": s.name, "field": d.Name},
			}}
		}
		sf := base.Field(idx)
		f := Field{Name: d.Name, Type: sf.Type, index: idx}
		switch {
		case d.HasDefault:
			dv, ok := coerceValue(d.Default, sf.Type)
			if !ok {
				return nil, Issues{Issue{
					Path: "/" + d.Name, Code: CodeInvalidType,
					Message: i18n.T(CodeInvalidType, map[string]string{"field": d.Name}),
					Hint:    "default value does not fit the field type",
					Params:  map[string]any{"class": s.name, "field": d.Name, "want": sf.Type.String()},
				}}
			}
			f.HasDefault = true
			f.Default = dv
		case d.Required:
			f.Required = true
			s.required[d.Name] = struct{}{}
		default:
			f.HasDefault = true
			f.Default = reflect.Zero(sf.Type).Interface()
		}
		s.byName[d.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}
