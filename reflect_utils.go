package goforge

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used by the builder, the DSL and FieldOf.
// Priority: forge:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("forge"); ft != "" {
		if ft == "-" {
			return "-"
		}
		for _, p := range strings.Split(ft, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// tagOptions holds the schema-relevant options parsed from a forge tag.
type tagOptions struct {
	optional   bool
	hasDefault bool
	defaultLit string
}

// parseTagOptions extracts optional/default settings from a forge tag. The
// default literal runs to the end of the tag so JSON values containing commas
// survive; default= must therefore be the last option.
func parseTagOptions(tag string) tagOptions {
	var o tagOptions
	for tag != "" {
		var part string
		if i := strings.IndexByte(tag, ','); i >= 0 {
			part, tag = tag[:i], tag[i+1:]
		} else {
			part, tag = tag, ""
		}
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "default=") {
			o.defaultLit = strings.TrimPrefix(part, "default=")
			if tag != "" {
				o.defaultLit += "," + tag
			}
			o.hasDefault = true
			return o
		}
		if part == "optional" {
			o.optional = true
		}
	}
	return o
}
