// Package tagval decodes struct-tag default literals into typed values.
package tagval

import (
	"reflect"

	gojson "github.com/goccy/go-json"
)

// Decode parses a default literal (a JSON value, e.g. `10`, `"x"`, `[1,2]`)
// into a value of type t. Literals that are not valid JSON are accepted
// verbatim for string-kinded fields so tags may say `default=hello` instead
// of `default="hello"`.
func Decode(lit string, t reflect.Type) (any, error) {
	pv := reflect.New(t)
	if err := gojson.Unmarshal([]byte(lit), pv.Interface()); err != nil {
		if t.Kind() == reflect.String {
			pv.Elem().SetString(lit)
			return pv.Elem().Interface(), nil
		}
		return nil, err
	}
	return pv.Elem().Interface(), nil
}
