package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Every error surfaced by the toolkit maps onto one
// of these; nothing is retried internally, the caller owns retry policy.
type Kind int

const (
	// KindCrypto covers malformed numeric order fields, unsupported chains
	// and signing-primitive failures. Always fatal to the current operation.
	KindCrypto Kind = iota

	// KindTransport covers socket and connection failures. Terminal for a
	// stream; reconnection is the caller's responsibility.
	KindTransport

	// KindProtocol covers unrecognized event types and malformed frames.
	// Treated as a hard decode error.
	KindProtocol

	// KindAuthentication covers rejected credentials and auth-related HTTP
	// statuses from the exchange.
	KindAuthentication

	// KindValidation covers bad caller input: out-of-range prices, missing
	// credential fields, unexpected HTTP statuses.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindCrypto:
		return "crypto"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the toolkit's error type: a kind, a message, and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error with no cause.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf builds an *Error from a format string.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an *Error around a cause.
func WrapError(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the given
// kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
