package goforge

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeConsumedField = "consumed_field"
	CodeUnknownField  = "unknown_field"
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeParseError    = "parse_error"
)

// Issue represents a single builder error entry.
type Issue struct {
	Path    string // JSON Pointer to the offending field (for example: /price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"class":"Point","field":"x"})
	// for i18n and programmatic inspection.
	Params map[string]any
}

// Issues is a collection of builder errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. consumed_field at /x
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsConsumed reports whether err carries a consumed_field issue and, if so,
// returns the name of the field that had already received a value.
func IsConsumed(err error) (string, bool) {
	return fieldOfCode(err, CodeConsumedField)
}

// IsUnknownField reports whether err carries an unknown_field issue and, if
// so, returns the attempted name.
func IsUnknownField(err error) (string, bool) {
	return fieldOfCode(err, CodeUnknownField)
}

func fieldOfCode(err error, code string) (string, bool) {
	iss, ok := AsIssues(err)
	if !ok {
		return "", false
	}
	for _, it := range iss {
		if it.Code != code {
			continue
		}
		if f, ok := it.Params["field"].(string); ok {
			return f, true
		}
		return "", true
	}
	return "", false
}

// Incomplete reports whether err was produced by Build on a builder with
// unassigned required fields. On success it returns the names already present
// and the names still missing, both sorted.
func Incomplete(err error) (present, missing []string, ok bool) {
	iss, found := AsIssues(err)
	if !found {
		return nil, nil, false
	}
	for _, it := range iss {
		if it.Code != CodeRequired {
			continue
		}
		p, _ := it.Params["present"].([]string)
		m, _ := it.Params["missing"].([]string)
		return append([]string(nil), p...), append([]string(nil), m...), true
	}
	return nil, nil, false
}
