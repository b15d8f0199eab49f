package goforge

import (
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/goforge/i18n"
)

// New returns a fresh builder for struct type T using its tag-derived schema.
func New[T any]() (Builder[T], error) {
	s, err := SchemaOf[T]()
	if err != nil {
		return Builder[T]{}, err
	}
	return NewWith[T](s), nil
}

// MustNew is like New but panics on error.
func MustNew[T any]() Builder[T] {
	b, err := New[T]()
	if err != nil {
		panic(err)
	}
	return b
}

// Apply performs one Set per entry of values, in sorted key order, and
// returns the extended builder. The first failing Set aborts the sequence and
// returns the last good builder together with the offending issue.
func Apply[T any](b Builder[T], values map[string]any) (Builder[T], error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		nb, err := b.Set(k, values[k])
		if err != nil {
			return b, err
		}
		b = nb
	}
	return b, nil
}

// ApplyJSON decodes a JSON object with goccy/go-json and applies its
// top-level entries to the builder via Apply.
func ApplyJSON[T any](b Builder[T], data []byte) (Builder[T], error) {
	var m map[string]any
	if err := gojson.Unmarshal(data, &m); err != nil {
		return b, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return Apply(b, m)
}

// ApplyYAML decodes a YAML mapping and applies its top-level entries to the
// builder via Apply.
func ApplyYAML[T any](b Builder[T], data []byte) (Builder[T], error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return b, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return Apply(b, m)
}
