// Package client defines the marketplace-client operation surface that
// platform implementations provide, in a blocking and a context-aware
// variant, together with the scoped-acquisition helpers that guarantee
// Close runs on every exit path.
package client

import (
	"context"

	"go-marketplace-core/models"
)

// Params is the open set of platform-defined query or download options.
// The contract does not constrain which keys exist; each platform
// enumerates its own (pagination offsets, search terms, category filters).
type Params map[string]any

// Client is the blocking marketplace-client contract.
//
// A client starts Open at construction and transitions to Closed on Close;
// Closed is terminal and no operation other than a tolerant repeated Close
// is guaranteed to behave afterwards. Implementations are not required to
// be safe for concurrent use of a single instance unless they provide
// their own synchronization.
type Client interface {
	// GetCollection retrieves a collection of assets. Fails with a
	// marketplace error of the appropriate kind
	GetCollection(params Params) (*models.Collection, error)

	// GetAsset retrieves a single asset by unique identifier. Fails with a
	// not-found error if the identifier is unknown
	GetAsset(assetUID string) (*models.Asset, error)

	// DownloadAsset downloads an asset into outputDir. An invalid
	// outputDir fails with a validation error before any callback fires;
	// otherwise the callback, when supplied, receives the full
	// OnStart/OnProgress*/terminal sequence even on failure
	DownloadAsset(assetUID, outputDir string, cb models.ProgressCallback, params Params) (*models.DownloadResult, error)

	// Close releases all resources held by the client. Must tolerate
	// repeated calls without failing
	Close() error
}

// AsyncClient is the context-aware marketplace-client contract.
//
// The operation surface, error mapping and lifecycle are identical to
// Client; every operation is a suspension point receiving the caller's
// context. No operation is implicitly cancelled by this contract —
// cancellation propagates only through the supplied context.
type AsyncClient interface {
	// GetCollection retrieves a collection of assets. Fails with a
	// marketplace error of the appropriate kind
	GetCollection(ctx context.Context, params Params) (*models.Collection, error)

	// GetAsset retrieves a single asset by unique identifier. Fails with a
	// not-found error if the identifier is unknown
	GetAsset(ctx context.Context, assetUID string) (*models.Asset, error)

	// DownloadAsset downloads an asset into outputDir. An invalid
	// outputDir fails with a validation error before any callback fires;
	// otherwise the callback, when supplied, receives the full
	// OnStart/OnProgress*/terminal sequence even on failure
	DownloadAsset(ctx context.Context, assetUID, outputDir string, cb models.AsyncProgressCallback, params Params) (*models.DownloadResult, error)

	// Close releases all resources held by the client. Must tolerate
	// repeated calls without failing
	Close(ctx context.Context) error
}
