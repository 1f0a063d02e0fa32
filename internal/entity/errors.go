package entity

import (
	"errors"
	"fmt"
)

// PermissionDeniedCode is the exchange error code returned when the API key
// lacks futures permission or the caller IP is not whitelisted.
const PermissionDeniedCode = -2015

var (
	// ErrTradingPermission indicates the API key cannot trade futures; the
	// account-info check during startup failed with a permission error.
	ErrTradingPermission = errors.New("api key does not have futures trading permission")
)

// ExchangeError is a failure reported by the exchange itself, carrying its
// structured code and message.
type ExchangeError struct {
	Code    int64
	Message string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("exchange error: code=%d message=%s", e.Code, e.Message)
}

// ValidationError rejects an order request before it reaches the exchange.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps network-level failures and malformed responses.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsPermissionDenied reports whether err is an exchange permission rejection.
func IsPermissionDenied(err error) bool {
	var exchangeErr *ExchangeError
	return errors.As(err, &exchangeErr) && exchangeErr.Code == PermissionDeniedCode
}
