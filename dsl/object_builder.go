package dsl

import (
	goforge "github.com/reoring/goforge"
)

// objectBuilder accumulates explicit field declarations for struct type T.
type objectBuilder[T any] struct {
	decls []goforge.FieldDecl
	index map[string]int
}

type fieldStep[T any] struct {
	b    *objectBuilder[T]
	name string
}

// Object creates a new schema builder for struct type T. Fields are optional
// unless marked Required or given a Default.
func Object[T any]() *objectBuilder[T] {
	return &objectBuilder[T]{index: map[string]int{}}
}

// Field declares a field by its resolved key name. Redeclaring a name returns
// a step over the existing declaration.
func (b *objectBuilder[T]) Field(name string) *fieldStep[T] {
	if _, ok := b.index[name]; !ok {
		b.index[name] = len(b.decls)
		b.decls = append(b.decls, goforge.FieldDecl{Name: name})
	}
	return &fieldStep[T]{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep[T]) Required() *objectBuilder[T] {
	d := f.decl()
	d.Required = true
	d.HasDefault = false
	d.Default = nil
	return f.b
}

// Optional marks the field as optional (zero-value default) and returns the
// builder.
func (f *fieldStep[T]) Optional() *objectBuilder[T] {
	d := f.decl()
	d.Required = false
	d.HasDefault = false
	d.Default = nil
	return f.b
}

// Default sets a default for the current field and returns the builder.
func (f *fieldStep[T]) Default(v any) *objectBuilder[T] {
	d := f.decl()
	d.Required = false
	d.HasDefault = true
	d.Default = v
	return f.b
}

func (f *fieldStep[T]) decl() *goforge.FieldDecl {
	return &f.b.decls[f.b.index[f.name]]
}

func (f *fieldStep[T]) Field(name string) *fieldStep[T]           { return f.b.Field(name) }
func (f *fieldStep[T]) Require(names ...string) *objectBuilder[T] { return f.b.Require(names...) }
func (f *fieldStep[T]) Build() (*goforge.Schema, error)           { return f.b.Build() }
func (f *fieldStep[T]) MustBuild() *goforge.Schema                { return f.b.MustBuild() }
func (f *fieldStep[T]) Builder() (goforge.Builder[T], error)      { return f.b.Builder() }

// Require marks one or more fields as required, declaring them when needed.
func (b *objectBuilder[T]) Require(names ...string) *objectBuilder[T] {
	for _, n := range names {
		b.Field(n).Required()
	}
	return b
}

// Build compiles the declarations into a Schema bound to T. Declared names
// that do not resolve to a field of T fail with an unknown_field issue;
// defaults that do not fit their field's type fail with invalid_type.
func (b *objectBuilder[T]) Build() (*goforge.Schema, error) {
	return goforge.CompileSchema[T](b.decls...)
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder[T]) MustBuild() *goforge.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Builder compiles the schema and returns a fresh builder over it.
func (b *objectBuilder[T]) Builder() (goforge.Builder[T], error) {
	s, err := b.Build()
	if err != nil {
		return goforge.Builder[T]{}, err
	}
	return goforge.NewWith[T](s), nil
}
