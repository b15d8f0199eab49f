package goforge_test

import (
	"errors"
	"strings"
	"testing"

	goforge "github.com/reoring/goforge"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := goforge.Issues{
		{Path: "/a", Code: goforge.CodeConsumedField},
		{Path: "/b", Code: goforge.CodeUnknownField},
		{Path: "/c", Code: goforge.CodeRequired},
		{Path: "/d", Code: goforge.CodeInvalidType},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "consumed_field at /a") {
		t.Fatalf("expected first issue in summary, got %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected truncation marker, got %q", s)
	}
}

func TestIssues_EmptySummary(t *testing.T) {
	if s := (goforge.Issues{}).Error(); s != "" {
		t.Fatalf("expected empty summary, got %q", s)
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	iss := goforge.AppendIssues(nil, goforge.Issue{Path: "/", Code: goforge.CodeParseError})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}

func TestAsIssues_ForeignError(t *testing.T) {
	if _, ok := goforge.AsIssues(errors.New("boom")); ok {
		t.Fatalf("expected no Issues in a foreign error")
	}
	if _, ok := goforge.AsIssues(nil); ok {
		t.Fatalf("expected no Issues in nil")
	}
}

func TestHelpers_ForeignError(t *testing.T) {
	if _, ok := goforge.IsConsumed(errors.New("boom")); ok {
		t.Fatalf("IsConsumed matched a foreign error")
	}
	if _, ok := goforge.IsUnknownField(errors.New("boom")); ok {
		t.Fatalf("IsUnknownField matched a foreign error")
	}
	if _, _, ok := goforge.Incomplete(errors.New("boom")); ok {
		t.Fatalf("Incomplete matched a foreign error")
	}
}
