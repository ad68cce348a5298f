package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{NotFound("no such row"), http.StatusNotFound},
		{MethodNotAllowed(), http.StatusMethodNotAllowed},
		{Conflict("slug taken"), http.StatusConflict},
		{Query("query failed", errors.New("boom")), http.StatusInternalServerError},
		{Connection("db down", errors.New("refused")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.err.Status(); got != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err.Kind, got, tc.status)
		}
	}
}

func TestFromPreservesClassifiedErrors(t *testing.T) {
	orig := NotFound("Service not found")
	wrapped := fmt.Errorf("handler: %w", orig)

	got := From(wrapped)
	if got.Kind != KindNotFound || got.Message != "Service not found" {
		t.Errorf("From lost classification: %+v", got)
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	got := From(errors.New("driver: bad connection"))

	if got.Kind != KindQuery {
		t.Errorf("kind = %v, want KindQuery", got.Kind)
	}
	// Raw driver text must not become the client-facing message.
	if got.Message == "driver: bad connection" {
		t.Error("raw error leaked into user-facing message")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Query("query failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
