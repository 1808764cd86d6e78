// internal/types/errors_test.go
package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_Classifiers(t *testing.T) {
	cases := []struct {
		err    *APIError
		kind   ErrorKind
		status int
	}{
		{NewValidationError("bad", nil), KindValidation, 422},
		{NewAuthenticationError(""), KindAuthentication, 401},
		{NewAuthorizationError(""), KindAuthorization, 403},
		{NewNotFoundError(""), KindNotFound, 404},
		{NewRateLimitError(""), KindRateLimit, 429},
		{NewAPIError("boom", 0, nil), KindGeneric, 500},
	}
	for _, tc := range cases {
		if tc.err.Kind != tc.kind {
			t.Errorf("%s: kind = %v, want %v", tc.err.Message, tc.err.Kind, tc.kind)
		}
		if tc.err.Status != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.err.Message, tc.err.Status, tc.status)
		}
	}
}

func TestDefaultMessages(t *testing.T) {
	cases := []struct {
		err  *APIError
		want string
	}{
		{NewAuthenticationError(""), "Authentication failed"},
		{NewAuthorizationError(""), "Not authorized"},
		{NewNotFoundError(""), "Resource not found"},
		{NewRateLimitError(""), "Rate limit exceeded"},
	}
	for _, tc := range cases {
		if tc.err.Error() != tc.want {
			t.Errorf("message = %q, want %q", tc.err.Error(), tc.want)
		}
	}
	if got := NewNotFoundError("card missing").Error(); got != "card missing" {
		t.Errorf("explicit message lost: %q", got)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewRateLimitError(""))
	kind, ok := KindOf(err)
	if !ok || kind != KindRateLimit {
		t.Fatalf("KindOf = %v, %v", kind, ok)
	}
	if StatusOf(err) != 429 {
		t.Errorf("StatusOf = %d", StatusOf(err))
	}
}

func TestStatusOf_OutsideTaxonomy(t *testing.T) {
	if got := StatusOf(errors.New("plain")); got != 500 {
		t.Errorf("StatusOf = %d, want 500", got)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf matched a plain error")
	}
}
