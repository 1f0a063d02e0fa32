package entity

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
)

func TestNewClientOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^bot_[a-f0-9]+$`)

	id := NewClientOrderID()
	if len(id) > 32 {
		t.Fatalf("NewClientOrderID() len = %d, want <= 32", len(id))
	}
	if !pattern.MatchString(id) {
		t.Fatalf("NewClientOrderID() = %q, want match for %s", id, pattern)
	}

	if other := NewClientOrderID(); other == id {
		t.Fatalf("NewClientOrderID() returned duplicate id %q", id)
	}
}

func TestOrderResultIsUnion(t *testing.T) {
	success := NewSuccessResult(map[string]any{"orderId": 1})
	if !success.OK() {
		t.Fatalf("NewSuccessResult().OK() = false, want true")
	}
	if success.Payload == nil {
		t.Fatalf("NewSuccessResult().Payload = nil, want payload")
	}
	if success.Error != "" {
		t.Fatalf("NewSuccessResult().Error = %q, want empty", success.Error)
	}

	failure := NewErrorResult(errors.New("boom"))
	if failure.OK() {
		t.Fatalf("NewErrorResult().OK() = true, want false")
	}
	if failure.Payload != nil {
		t.Fatalf("NewErrorResult().Payload = %v, want nil", failure.Payload)
	}
	if failure.Error != "boom" {
		t.Fatalf("NewErrorResult().Error = %q, want %q", failure.Error, "boom")
	}
}

func TestIsPermissionDenied(t *testing.T) {
	denied := &ExchangeError{Code: PermissionDeniedCode, Message: "Invalid API-key, IP, or permissions for action."}
	if !IsPermissionDenied(denied) {
		t.Fatalf("IsPermissionDenied(%v) = false, want true", denied)
	}

	wrapped := fmt.Errorf("account check: %w", denied)
	if !IsPermissionDenied(wrapped) {
		t.Fatalf("IsPermissionDenied(wrapped) = false, want true")
	}

	if IsPermissionDenied(&ExchangeError{Code: -2010, Message: "rejected"}) {
		t.Fatalf("IsPermissionDenied(-2010) = true, want false")
	}
	if IsPermissionDenied(&TransportError{Err: errors.New("timeout")}) {
		t.Fatalf("IsPermissionDenied(transport) = true, want false")
	}
}
