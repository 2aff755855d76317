package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCrypto, "crypto"},
		{KindTransport, "transport"},
		{KindProtocol, "protocol"},
		{KindAuthentication, "authentication"},
		{KindValidation, "validation"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := NewError(KindTransport, "connection reset")
	if !IsKind(err, KindTransport) {
		t.Error("IsKind should match the error's own kind")
	}
	if IsKind(err, KindProtocol) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(errors.New("plain"), KindTransport) {
		t.Error("IsKind should not match plain errors")
	}
}

func TestIsKindWrapped(t *testing.T) {
	inner := NewError(KindAuthentication, "bad credentials")
	wrapped := fmt.Errorf("request failed: %w", inner)
	if !IsKind(wrapped, KindAuthentication) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}
}

func TestWrapErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(KindCrypto, cause, "sign digest")
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "sign digest") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error text %q missing context or cause", err.Error())
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(KindValidation, "price %v out of range", 1.5)
	if !IsKind(err, KindValidation) {
		t.Errorf("kind mismatch: %v", err)
	}
	if !strings.Contains(err.Error(), "1.5") {
		t.Errorf("formatted message missing: %q", err.Error())
	}
}
