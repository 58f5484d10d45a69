package graphql

import (
	"errors"
	"fmt"
	"testing"
)

func entry(msg string, status int, path ...any) ErrorEntry {
	e := ErrorEntry{Message: msg, Path: path}
	e.Extensions.Status = status
	return e
}

func TestHasAnyStatus(t *testing.T) {
	err := &APIError{Entries: []ErrorEntry{
		entry("validation failed", 422),
		entry("not found", 404, "heist"),
	}}

	if !HasAnyStatus(err, 404) {
		t.Fatalf("expected match on 404")
	}
	if !HasAnyStatus(err, 500, 422) {
		t.Fatalf("expected match on 422")
	}
	if HasAnyStatus(err, 401, 403) {
		t.Fatalf("unexpected match")
	}
	if HasAnyStatus(&APIError{}, 404) {
		t.Fatalf("zero entries must match nothing")
	}
	if HasAnyStatus(nil, 404) {
		t.Fatalf("nil error must match nothing")
	}
}

func TestMessageForAnyStatus_EntryOrder(t *testing.T) {
	err := &APIError{Entries: []ErrorEntry{
		entry("first", 422),
		entry("second", 422),
		entry("other", 404),
	}}

	if got := MessageForAnyStatus(err, 404, 422); got != "first" {
		t.Fatalf("expected first matching entry in order, got %q", got)
	}
	if got := MessageForAnyStatus(err, 500); got != "" {
		t.Fatalf("expected empty string for no match, got %q", got)
	}
	if got := MessageForStatus(err, 404); got != "other" {
		t.Fatalf("expected 404 message, got %q", got)
	}
}

func TestHasPathError(t *testing.T) {
	err := &APIError{Entries: []ErrorEntry{
		entry("not found", 404, "heist", float64(0), "crewMembers"),
	}}

	if !HasPathError(err, "heist") {
		t.Fatalf("expected path match on heist")
	}
	if !HasPathError(err, "place", "crewMembers") {
		t.Fatalf("expected match on any fragment")
	}
	if HasPathError(err, "asset") {
		t.Fatalf("unexpected path match")
	}
	if HasPathError(nil, "heist") {
		t.Fatalf("nil error must match nothing")
	}
}

func TestAsAPIError(t *testing.T) {
	apiErr := &APIError{Entries: []ErrorEntry{entry("boom", 500)}}
	wrapped := fmt.Errorf("call failed: %w", apiErr)

	got, ok := AsAPIError(wrapped)
	if !ok || got != apiErr {
		t.Fatalf("expected unwrap to the original APIError")
	}

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Fatalf("plain error is not an APIError")
	}
}
