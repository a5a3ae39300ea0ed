package client

import (
	"context"
	"errors"
)

// With runs fn against the client and guarantees Close on every exit path:
// normal return, error return, or panic. It is the scoped-acquisition form
// of the client lifecycle — the Go rendering of an enter/exit block. fn
// receives the same instance passed in, unchanged.
//
// A Close failure is joined with fn's error so neither is lost.
func With(c Client, fn func(Client) error) (err error) {
	defer func() {
		err = errors.Join(err, c.Close())
	}()
	return fn(c)
}

// WithContext is the context-aware twin of With. Close runs on every exit
// path, including when fn fails because ctx was cancelled; Close itself
// receives the same context so implementations can bound their cleanup.
func WithContext(ctx context.Context, c AsyncClient, fn func(AsyncClient) error) (err error) {
	defer func() {
		err = errors.Join(err, c.Close(ctx))
	}()
	return fn(c)
}
