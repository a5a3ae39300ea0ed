package marketplace

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a marketplace error
type ErrorKind int

const (
	// KindAuthentication indicates credential or session setup/refresh failure
	KindAuthentication ErrorKind = iota
	// KindAPI indicates an error-shaped response from the remote endpoint
	KindAPI
	// KindNotFound indicates a requested identifier does not exist
	KindNotFound
	// KindNetwork indicates a transport-level failure (timeout, DNS, unreachable)
	KindNetwork
	// KindValidation indicates caller-supplied input failed a precondition
	KindValidation
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAPI:
		return "api"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the base error type for all marketplace-related failures.
// Platform-specific client libraries wrap their own failures in this type
// (or a type embedding it) so callers can handle errors coarsely by
// catching *Error, or narrowly by checking Kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the specified kind and message
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorWithCause creates a new Error wrapping an underlying cause
func NewErrorWithCause(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// NewAuthenticationError creates an authentication-kind error
func NewAuthenticationError(message string) *Error {
	return NewError(KindAuthentication, message)
}

// NewAPIError creates an api-kind error
func NewAPIError(message string) *Error {
	return NewError(KindAPI, message)
}

// NewNotFoundError creates a not-found-kind error
func NewNotFoundError(message string) *Error {
	return NewError(KindNotFound, message)
}

// NewNetworkError creates a network-kind error
func NewNetworkError(message string) *Error {
	return NewError(KindNetwork, message)
}

// NewValidationError creates a validation-kind error
func NewValidationError(message string) *Error {
	return NewError(KindValidation, message)
}

// IsMarketplaceError reports whether err is (or wraps) a marketplace Error
func IsMarketplaceError(err error) bool {
	var me *Error
	return errors.As(err, &me)
}

// IsKind reports whether err is a marketplace Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind == kind
	}
	return false
}

// IsAuthentication reports whether err is an authentication error
func IsAuthentication(err error) bool {
	return IsKind(err, KindAuthentication)
}

// IsAPI reports whether err is an api error
func IsAPI(err error) bool {
	return IsKind(err, KindAPI)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsNetwork reports whether err is a network error
func IsNetwork(err error) bool {
	return IsKind(err, KindNetwork)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return IsKind(err, KindValidation)
}
