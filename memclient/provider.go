package memclient

import (
	"context"
	"sync"

	"github.com/google/uuid"

	marketplace "go-marketplace-core"
	"go-marketplace-core/auth"
)

// Provider is a static-token auth provider for the in-memory client. The
// session handle it returns is the token string itself — opaque to the
// contract layer, inspected by nothing.
//
// Unlike most providers it supports Refresh: each call rotates the token,
// which lets tests exercise the non-default refresh path.
type Provider struct {
	mu        sync.Mutex
	token     string
	endpoints auth.EndpointConfig
	closed    bool
}

// NewProvider creates a provider with a freshly minted token
func NewProvider(endpoints auth.EndpointConfig) *Provider {
	return &Provider{
		token:     uuid.NewString(),
		endpoints: endpoints,
	}
}

// GetSession returns the current token as the opaque session handle
func (p *Provider) GetSession() (any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, marketplace.NewAuthenticationError("auth provider is closed")
	}
	return p.token, nil
}

// GetEndpoints returns the configured endpoints
func (p *Provider) GetEndpoints() auth.EndpointConfig {
	return p.endpoints
}

// Refresh rotates the token
func (p *Provider) Refresh() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return marketplace.NewAuthenticationError("auth provider is closed")
	}
	p.token = uuid.NewString()
	return nil
}

// Close invalidates the token. Tolerates repeated calls
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// AsyncProvider adapts Provider to the context-aware contract. The
// underlying operations never block, so the adapter only honors an
// already-cancelled context.
type AsyncProvider struct {
	p *Provider
}

// NewAsyncProvider creates a context-aware provider over a fresh Provider
func NewAsyncProvider(endpoints auth.EndpointConfig) *AsyncProvider {
	return &AsyncProvider{p: NewProvider(endpoints)}
}

// GetSession returns the current token as the opaque session handle
func (a *AsyncProvider) GetSession(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, marketplace.NewErrorWithCause(marketplace.KindNetwork, "session request cancelled", err)
	}
	return a.p.GetSession()
}

// GetEndpoints returns the configured endpoints
func (a *AsyncProvider) GetEndpoints() auth.EndpointConfig {
	return a.p.GetEndpoints()
}

// Refresh rotates the token
func (a *AsyncProvider) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return marketplace.NewErrorWithCause(marketplace.KindNetwork, "refresh cancelled", err)
	}
	return a.p.Refresh()
}

// Close invalidates the token. Tolerates repeated calls and runs even when
// ctx is already cancelled, since cleanup must not be skipped
func (a *AsyncProvider) Close(ctx context.Context) error {
	return a.p.Close()
}
