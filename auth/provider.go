// Package auth defines the authentication-provider contracts supplying
// marketplace clients with an opaque session handle and endpoint
// configuration.
package auth

import (
	"context"
	"errors"
)

// ErrRefreshNotSupported is returned by providers that have no credential
// refresh mechanism. It is a distinct condition, not a generic failure, so
// callers can tell "this platform has no refresh" from "refresh failed".
var ErrRefreshNotSupported = errors.New("auth provider does not support credential refresh")

// EndpointConfig is the base configuration for API endpoints.
//
// Platform-specific implementations embed this to add their own endpoint
// URLs (library search, asset formats, download info, ...). No URL
// well-formedness is enforced here; that is the job of
// marketplace.ValidateURL, invoked by collaborators.
type EndpointConfig struct {
	BaseURL string
}

// Provider is the blocking authentication-provider contract.
//
// The session handle is intentionally untyped so the contract does not
// standardize on a particular transport library; implementations document
// the concrete type they return (typically an *http.Client or equivalent).
// The contract layer never inspects or calls through it.
type Provider interface {
	// GetSession returns a configured session handle for making
	// authenticated requests
	GetSession() (any, error)

	// GetEndpoints returns the API endpoint configuration. Pure
	// configuration; must not perform network I/O
	GetEndpoints() EndpointConfig

	// Refresh renews credentials if the platform supports it; providers
	// without a refresh mechanism return ErrRefreshNotSupported
	Refresh() error

	// Close releases any resources held by the provider. Must tolerate
	// repeated calls
	Close() error
}

// AsyncProvider is the context-aware authentication-provider contract.
//
// GetSession, Refresh and Close are suspension points and receive the
// caller's context; GetEndpoints remains synchronous since endpoint
// construction is pure configuration.
type AsyncProvider interface {
	// GetSession returns a configured session handle for making
	// authenticated requests
	GetSession(ctx context.Context) (any, error)

	// GetEndpoints returns the API endpoint configuration. Pure
	// configuration; must not perform network I/O
	GetEndpoints() EndpointConfig

	// Refresh renews credentials if the platform supports it; providers
	// without a refresh mechanism return ErrRefreshNotSupported
	Refresh(ctx context.Context) error

	// Close releases any resources held by the provider. Must tolerate
	// repeated calls
	Close(ctx context.Context) error
}

// UnimplementedProvider supplies the default Refresh and Close behavior for
// blocking providers. Concrete implementations embed it and override only
// what their platform supports.
type UnimplementedProvider struct{}

// Refresh signals that credential refresh is not supported
func (UnimplementedProvider) Refresh() error {
	return ErrRefreshNotSupported
}

// Close is a no-op; providers holding resources override it
func (UnimplementedProvider) Close() error {
	return nil
}

// UnimplementedAsyncProvider supplies the default Refresh and Close
// behavior for context-aware providers.
type UnimplementedAsyncProvider struct{}

// Refresh signals that credential refresh is not supported
func (UnimplementedAsyncProvider) Refresh(ctx context.Context) error {
	return ErrRefreshNotSupported
}

// Close is a no-op; providers holding resources override it
func (UnimplementedAsyncProvider) Close(ctx context.Context) error {
	return nil
}
