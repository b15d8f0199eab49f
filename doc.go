package goforge

// Package goforge provides immutable, schema-checked builders for struct
// values:
//
// - A Builder[T] value that collects field assignments one at a time, in any
//   order, and only constructs a T once every required field has a value
// - A stable error model via Issues (path, code, structured params)
// - Schema introspection from struct tags (SchemaOf) or explicit declaration
//   (dsl.Object), memoized per target type
// - Read-only views (Args, FieldSet) over a builder's collected state
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the declaration DSL under dsl/ and message translation under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	b := goforge.MustNew[Point]()
//	b, err := b.Set("x", 1)
//	b, err = b.Set("y", 2)
//	p, err := b.Build()
//
// Every Set returns a new Builder; the receiver is never mutated, so any
// intermediate builder may be kept and extended along independent chains
// without coordination.
