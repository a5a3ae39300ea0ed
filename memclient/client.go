package memclient

import (
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

// defaultChunkSize is the write granularity for downloads; each chunk
// produces one progress callback
const defaultChunkSize = 64 * 1024

// Client is the blocking in-memory marketplace client. It implements
// client.Client.
//
// Recognized GetCollection params: "limit" (int, int64 or float64; cap on
// returned assets, TotalCount still reports the pre-limit total) and
// "prefix" (string, title prefix filter). Recognized DownloadAsset
// params: none.
type Client struct {
	store     *Store
	provider  auth.Provider
	log       *zap.Logger
	chunkSize int

	mu     sync.Mutex
	closed bool
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the structured logger; the default is a nop logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithChunkSize overrides the download write granularity
func WithChunkSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// intParam reads a numeric param, accepting int, int64 and float64 (the
// types JSON decoding typically produces)
func intParam(params client.Params, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// New creates a client over the given store and auth provider
func New(store *Store, provider auth.Provider, opts ...Option) *Client {
	c := &Client{
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

// guard rejects operations on a closed client and checks the session is
// still obtainable
func (c *Client) guard() error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return marketplace.NewAPIError("client is closed")
	}
	if _, err := c.provider.GetSession(); err != nil {
		return err
	}
	return nil
}

// GetCollection returns the stored assets, optionally filtered by title
// prefix and capped by limit
func (c *Client) GetCollection(params client.Params) (*models.Collection, error) {
	if err := c.guard(); err != nil {
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

	// The server-side total counts the matches before the limit is applied.
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
func (c *Client) GetAsset(assetUID string) (*models.Asset, error) {
	if err := c.guard(); err != nil {
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
// Transfer failures after OnStart fire OnError and are reported both in
// the returned result and the returned error.
func (c *Client) DownloadAsset(assetUID, outputDir string, cb models.ProgressCallback, params client.Params) (*models.DownloadResult, error) {
	if err := c.guard(); err != nil {
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
	if cb != nil {
		cb.OnStart(total)
	}

	fail := func(failErr error) (*models.DownloadResult, error) {
		if cb != nil {
			cb.OnError(failErr)
		}
		c.log.Warn("download failed",
			zap.String("asset_uid", assetUID),
			zap.Error(failErr))
		return models.NewDownloadFailure(assetUID, failErr.Error()), failErr
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
			cb.OnProgress(written, total)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fail(marketplace.NewErrorWithCause(marketplace.KindNetwork,
			"transfer interrupted", err))
	}

	if cb != nil {
		cb.OnComplete()
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

// Close releases the client and its auth provider. Tolerates repeated calls
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.provider.Close()
}

// compile-time contract check
var _ client.Client = (*Client)(nil)
