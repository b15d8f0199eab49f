// Package dsl provides explicit schema declaration for goforge builders.
//
// Overview
//   - Builder API: declare a struct type's builder semantics
//     (required/optional/default per field) with Object[T]()/Field()/Required()/MustBuild().
//   - Declarations name resolved keys of T (forge/json tag or field name);
//     fields left undeclared are excluded from the schema entirely.
//   - A field declared with neither Required() nor Default(v) is optional and
//     falls back to its zero value on Build.
//
// Entry points
//   - Object[T](): create a schema builder; chain Field/Required/Default then
//     MustBuild()/Build() to obtain a *goforge.Schema, or Builder() to jump
//     straight to a fresh goforge.Builder[T].
//
// Example (quickstart)
//
//	type Config struct {
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//
//	s := dsl.Object[Config]().
//	    Field("host").Required().
//	    Field("port").Default(8080).
//	    MustBuild()
//
//	b := goforge.NewWith[Config](s)
//	b, _ = b.Set("host", "localhost")
//	cfg, _ := b.Build() // Config{Host: "localhost", Port: 8080}
package dsl
