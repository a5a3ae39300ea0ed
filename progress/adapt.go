package progress

import (
	"context"

	"go-marketplace-core/models"
)

// asyncAdapter lifts a blocking callback into the context-aware contract.
type asyncAdapter struct {
	cb models.ProgressCallback
}

// AsAsync adapts a blocking ProgressCallback for use with the context-aware
// client family. The wrapped callback never suspends, so the adapter only
// checks the context before forwarding; OnError is forwarded even when the
// context is already cancelled, since the terminal call must not be lost.
func AsAsync(cb models.ProgressCallback) models.AsyncProgressCallback {
	return &asyncAdapter{cb: cb}
}

func (a *asyncAdapter) OnStart(ctx context.Context, total int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.cb.OnStart(total)
	return nil
}

func (a *asyncAdapter) OnProgress(ctx context.Context, current, total int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.cb.OnProgress(current, total)
	return nil
}

func (a *asyncAdapter) OnComplete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.cb.OnComplete()
	return nil
}

func (a *asyncAdapter) OnError(ctx context.Context, opErr error) error {
	a.cb.OnError(opErr)
	return nil
}
