package auth

import (
	"context"
	"errors"
	"testing"
)

// staticProvider is a minimal provider overriding only the abstract surface.
type staticProvider struct {
	UnimplementedProvider
	endpoints EndpointConfig
}

func (p *staticProvider) GetSession() (any, error) {
	return "opaque-session-token", nil
}

func (p *staticProvider) GetEndpoints() EndpointConfig {
	return p.endpoints
}

// staticAsyncProvider mirrors staticProvider for the context-aware family.
type staticAsyncProvider struct {
	UnimplementedAsyncProvider
	endpoints EndpointConfig
}

func (p *staticAsyncProvider) GetSession(ctx context.Context) (any, error) {
	return "opaque-async-session", nil
}

func (p *staticAsyncProvider) GetEndpoints() EndpointConfig {
	return p.endpoints
}

func TestProviderDefaults(t *testing.T) {
	var p Provider = &staticProvider{endpoints: EndpointConfig{BaseURL: "https://api.example.com"}}

	if err := p.Refresh(); !errors.Is(err, ErrRefreshNotSupported) {
		t.Errorf("Refresh() = %v, want ErrRefreshNotSupported", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("default Close() = %v, want nil", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("repeated Close() = %v, want nil", err)
	}
}

func TestProviderSessionAndEndpoints(t *testing.T) {
	var p Provider = &staticProvider{endpoints: EndpointConfig{BaseURL: "https://api.example.com"}}

	session, err := p.GetSession()
	if err != nil {
		t.Fatalf("GetSession() error: %v", err)
	}
	if session != "opaque-session-token" {
		t.Errorf("GetSession() = %v, want the opaque handle", session)
	}
	if got := p.GetEndpoints().BaseURL; got != "https://api.example.com" {
		t.Errorf("GetEndpoints().BaseURL = %q", got)
	}
}

func TestAsyncProviderDefaults(t *testing.T) {
	ctx := context.Background()
	var p AsyncProvider = &staticAsyncProvider{endpoints: EndpointConfig{BaseURL: "https://api.example.com"}}

	if err := p.Refresh(ctx); !errors.Is(err, ErrRefreshNotSupported) {
		t.Errorf("Refresh() = %v, want ErrRefreshNotSupported", err)
	}
	if err := p.Close(ctx); err != nil {
		t.Errorf("default Close() = %v, want nil", err)
	}

	session, err := p.GetSession(ctx)
	if err != nil {
		t.Fatalf("GetSession() error: %v", err)
	}
	if session != "opaque-async-session" {
		t.Errorf("GetSession() = %v", session)
	}
}

func TestRefreshNotSupportedIsDistinct(t *testing.T) {
	var p Provider = &staticProvider{}

	err := p.Refresh()
	if err == nil {
		t.Fatal("expected an error")
	}
	// Callers distinguish "no refresh mechanism" from a real failure.
	if !errors.Is(err, ErrRefreshNotSupported) {
		t.Errorf("expected sentinel, got %v", err)
	}
}
