package goforge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	goforge "github.com/reoring/goforge"
)

func TestApply_SortedAndAtomicPerField(t *testing.T) {
	b := goforge.MustNew[Config]()
	b, err := goforge.Apply(b, map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)

	c, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, Config{A: 1, B: 2}, c)

	// an unknown key aborts and returns the last good builder
	base := goforge.MustNew[Config]()
	got, err := goforge.Apply(base, map[string]any{"a": 1, "zzz": true})
	require.Error(t, err)
	name, ok := goforge.IsUnknownField(err)
	require.True(t, ok)
	require.Equal(t, "zzz", name)
	require.True(t, got.Consumed().Has("a"))
}

func TestApplyJSON_Object(t *testing.T) {
	b := goforge.MustNew[Config]()
	b, err := goforge.ApplyJSON(b, []byte(`{"a": 1}`))
	require.NoError(t, err)

	c, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, Config{A: 1, B: 10}, c)
}

func TestApplyJSON_Malformed(t *testing.T) {
	b := goforge.MustNew[Config]()
	_, err := goforge.ApplyJSON(b, []byte(`{"a": `))
	iss, ok := goforge.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, goforge.CodeParseError, iss[0].Code)
	require.Error(t, iss[0].Cause)
}

func TestApplyJSON_ConsumedKey(t *testing.T) {
	b := goforge.MustNew[Config]().MustSet("a", 1)
	_, err := goforge.ApplyJSON(b, []byte(`{"a": 2}`))
	field, ok := goforge.IsConsumed(err)
	require.True(t, ok)
	require.Equal(t, "a", field)
}

func TestApplyJSON_FractionalNumberRejected(t *testing.T) {
	// JSON numbers decode as float64; fractional ones must not truncate
	// into integer fields
	_, err := goforge.ApplyJSON(goforge.MustNew[netAddr](), []byte(`{"host":"h","port":8.9}`))
	iss, ok := goforge.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, goforge.CodeInvalidType, iss[0].Code)

	b, err := goforge.ApplyJSON(goforge.MustNew[netAddr](), []byte(`{"host":"h","port":8}`))
	require.NoError(t, err)
	v, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, netAddr{Host: "h", Port: 8}, v)
}

func TestApplyYAML_Mapping(t *testing.T) {
	b := goforge.MustNew[Config]()
	b, err := goforge.ApplyYAML(b, []byte("a: 4\nb: 5\n"))
	require.NoError(t, err)

	c, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, Config{A: 4, B: 5}, c)
}

func TestApplyYAML_Malformed(t *testing.T) {
	b := goforge.MustNew[Config]()
	_, err := goforge.ApplyYAML(b, []byte("{"))
	iss, ok := goforge.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, goforge.CodeParseError, iss[0].Code)
}
