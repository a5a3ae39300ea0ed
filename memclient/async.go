package memclient

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	marketplace "go-marketplace-core"
	"go-marketplace-core/auth"
	"go-marketplace-core/client"
	"go-marketplace-core/models"
)

// AsyncClient is the context-aware in-memory marketplace client. It
// implements client.AsyncClient with the same recognized params as Client.
//
// Cancellation is checked between chunks during a download: a cancelled
// context aborts the transfer with a network-kind error wrapping ctx.Err()
// and fires OnError. Close runs regardless of context state.
type AsyncClient struct {
	store     *Store
	provider  auth.AsyncProvider
	log       *zap.Logger
	chunkSize int

	mu     sync.Mutex
	closed bool
}

// AsyncOption configures an AsyncClient
type AsyncOption func(*AsyncClient)

// WithAsyncLogger sets the structured logger; the default is a nop logger
func WithAsyncLogger(log *zap.Logger) AsyncOption {
	return func(c *AsyncClient) {
		if log != nil {
			c.log = log
		}
	}
}

// WithAsyncChunkSize overrides the download write granularity
func WithAsyncChunkSize(size int) AsyncOption {
	return func(c *AsyncClient) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// NewAsync creates a context-aware client over the given store and provider
func NewAsync(store *Store, provider auth.AsyncProvider, opts ...AsyncOption) *AsyncClient {
	c := &AsyncClient{
		store:     store,
		provider:  provider,
		log:       zap.NewNop(),
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// guard rejects operations on a closed client, a cancelled context, and an
// unobtainable session
func (c *AsyncClient) guard(ctx context.Context) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return marketplace.NewAPIError("client is closed")
	}
	if err := ctx.Err(); err != nil {
		return marketplace.NewErrorWithCause(marketplace.KindNetwork, "operation cancelled", err)
	}
	if _, err := c.provider.GetSession(ctx); err != nil {
		return err
	}
	return nil
}

// GetCollection returns the stored assets, optionally filtered by title
// prefix and capped by limit
func (c *AsyncClient) GetCollection(ctx context.Context, params client.Params) (*models.Collection, error) {
	if err := c.guard(ctx); err != nil {
		return nil, err
	}

	assets := c.store.List()

	if prefix, ok := params["prefix"].(string); ok && prefix != "" {
		filtered := assets[:0:0]
		for _, a := range assets {
			if strings.HasPrefix(a.Title, prefix) {
				filtered = append(filtered, a)
			}
		}
		assets = filtered
	}

	total := len(assets)

	if limit, ok := intParam(params, "limit"); ok {
		if limit < 0 {
			return nil, marketplace.NewValidationError(fmt.Sprintf("limit must be non-negative, got %d", limit))
		}
		if limit < len(assets) {
			assets = assets[:limit]
		}
	}

	c.log.Debug("collection retrieved",
		zap.Int("returned", len(assets)),
		zap.Int("total", total))

	return &models.Collection{Assets: assets, TotalCount: &total}, nil
}

// GetAsset returns the asset with the given UID
func (c *AsyncClient) GetAsset(ctx context.Context, assetUID string) (*models.Asset, error) {
	if err := c.guard(ctx); err != nil {
		return nil, err
	}

	asset, _, ok := c.store.Get(assetUID)
	if !ok {
		return nil, marketplace.NewNotFoundError(fmt.Sprintf("asset %q does not exist", assetUID))
	}
	return &asset, nil
}

// DownloadAsset writes the asset payload into outputDir in chunks,
// reporting the full progress sequence through cb when supplied.
//
// Validation and unknown-UID failures occur before any callback fires.
// Failures after OnStart — including cancellation between chunks — fire
// OnError and are reported both in the returned result and the returned
// error.
func (c *AsyncClient) DownloadAsset(ctx context.Context, assetUID, outputDir string, cb models.AsyncProgressCallback, params client.Params) (*models.DownloadResult, error) {
	if err := c.guard(ctx); err != nil {
		return nil, err
	}

	if outputDir == "" {
		return nil, marketplace.NewValidationError("output directory cannot be empty")
	}

	asset, payload, ok := c.store.Get(assetUID)
	if !ok {
		return nil, marketplace.NewNotFoundError(fmt.Sprintf("asset %q does not exist", assetUID))
	}

	if err := marketplace.SafeCreateDirectory(outputDir); err != nil {
		return nil, err
	}

	filename, err := marketplace.SanitizeFilename(asset.Title)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(outputDir, filename+".bin")

	total := int64(len(payload))

	fail := func(failErr error) (*models.DownloadResult, error) {
		if cb != nil {
			// Terminal call must not be lost; ignore a cancelled context here.
			_ = cb.OnError(ctx, failErr)
		}
		c.log.Warn("download failed",
			zap.String("asset_uid", assetUID),
			zap.Error(failErr))
		return models.NewDownloadFailure(assetUID, failErr.Error()), failErr
	}

	// The operation has begun once OnStart fires, so even a rejected start
	// must end with the terminal OnError.
	if cb != nil {
		if err := cb.OnStart(ctx, total); err != nil {
			return fail(marketplace.NewErrorWithCause(marketplace.KindNetwork,
				"progress callback rejected start", err))
		}
	}

	if payload == nil {
		return fail(marketplace.NewAPIError(fmt.Sprintf("asset %q has no downloadable content", assetUID)))
	}

	f, err := os.Create(path)
	if err != nil {
		return fail(marketplace.NewErrorWithCause(marketplace.KindValidation,
			fmt.Sprintf("failed to create file %q", path), err))
	}

	var written int64
	for written < total {
		if err := ctx.Err(); err != nil {
			f.Close()
			os.Remove(path)
			return fail(marketplace.NewErrorWithCause(marketplace.KindNetwork,
				"transfer cancelled", err))
		}

		end := written + int64(c.chunkSize)
		if end > total {
			end = total
		}
		if _, err := f.Write(payload[written:end]); err != nil {
			f.Close()
			os.Remove(path)
			return fail(marketplace.NewErrorWithCause(marketplace.KindNetwork,
				"transfer interrupted", err))
		}
		written = end
		if cb != nil {
			if err := cb.OnProgress(ctx, written, total); err != nil {
				f.Close()
				os.Remove(path)
				return fail(marketplace.NewErrorWithCause(marketplace.KindNetwork,
					"progress callback rejected update", err))
			}
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fail(marketplace.NewErrorWithCause(marketplace.KindNetwork,
			"transfer interrupted", err))
	}

	if cb != nil {
		if err := cb.OnComplete(ctx); err != nil {
			c.log.Warn("completion callback failed",
				zap.String("asset_uid", assetUID),
				zap.Error(err))
		}
	}

	c.log.Info("download complete",
		zap.String("asset_uid", assetUID),
		zap.String("path", path),
		zap.String("size", marketplace.FormatBytes(total)))

	return models.NewDownloadSuccess(assetUID, []string{path}, map[string]any{
		"operation_id": uuid.NewString(),
		"size_bytes":   total,
		"size":         marketplace.FormatBytes(total),
	}), nil
}

// Close releases the client and its auth provider. Tolerates repeated
// calls and runs even when ctx is already cancelled
func (c *AsyncClient) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.provider.Close(ctx)
}

// compile-time contract check
var _ client.AsyncClient = (*AsyncClient)(nil)
