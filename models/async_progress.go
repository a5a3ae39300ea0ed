package models

import "context"

// AsyncProgressCallback is the context-aware progress-reporting contract.
//
// Semantics are identical to ProgressCallback — same call points, same
// ordering, same single-terminal-call guarantee — but every call site is a
// suspension point: each method receives the operation's context and may
// block, and returns an error so a failing or cancelled callback can
// surface to the caller. The download implementation is responsible for
// bounding how long it waits on a callback.
type AsyncProgressCallback interface {
	// OnStart is called once when the operation starts
	OnStart(ctx context.Context, total int64) error

	// OnProgress is called periodically during the operation
	OnProgress(ctx context.Context, current, total int64) error

	// OnComplete is called once when the operation completes successfully
	OnComplete(ctx context.Context) error

	// OnError is called once, in place of OnComplete, when the operation
	// fails; it receives the triggering error
	OnError(ctx context.Context, err error) error
}
