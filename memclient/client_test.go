package memclient

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	marketplace "go-marketplace-core"
	"go-marketplace-core/auth"
	"go-marketplace-core/client"
	"go-marketplace-core/models"
)

// recordingCallback records the full callback sequence for assertions.
type recordingCallback struct {
	mu       sync.Mutex
	events   []string
	starts   []int64
	progress [][2]int64
	errs     []error
}

func (r *recordingCallback) OnStart(total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "start")
	r.starts = append(r.starts, total)
}

func (r *recordingCallback) OnProgress(current, total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "progress")
	r.progress = append(r.progress, [2]int64{current, total})
}

func (r *recordingCallback) OnComplete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "complete")
}

func (r *recordingCallback) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "error")
	r.errs = append(r.errs, err)
}

func seededStore() *Store {
	store := NewStore()
	store.Put(models.Asset{UID: "asset-1", Title: "Epic Castle Pack"}, []byte("castle-payload-data"))
	store.Put(models.Asset{UID: "asset-2", Title: "Epic Forest Pack"}, []byte("forest-payload"))
	store.Put(models.Asset{UID: "asset-3", Title: "Space Skybox"}, []byte("skybox"))
	store.Put(models.Asset{UID: "asset-4", Title: "Broken Entry"}, nil)
	return store
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	provider := NewProvider(auth.EndpointConfig{BaseURL: "https://api.example.com"})
	return New(seededStore(), provider, WithChunkSize(4))
}

func TestGetCollection(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()

	tests := []struct {
		name          string
		params        client.Params
		expectedLen   int
		expectedTotal int
	}{
		{"no params", client.Params{}, 4, 4},
		{"nil params", nil, 4, 4},
		{"prefix filter", client.Params{"prefix": "Epic"}, 2, 2},
		{"limit caps results", client.Params{"limit": 2}, 2, 4},
		{"prefix and limit", client.Params{"prefix": "Epic", "limit": 1}, 1, 2},
		{"limit beyond size", client.Params{"limit": 100}, 4, 4},
		{"limit as int64", client.Params{"limit": int64(2)}, 2, 4},
		{"limit as float64 from decoded JSON", client.Params{"limit": float64(3)}, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, err := c.GetCollection(tt.params)
			if err != nil {
				t.Fatalf("GetCollection error: %v", err)
			}
			if collection.Len() != tt.expectedLen {
				t.Errorf("Len() = %d, want %d", collection.Len(), tt.expectedLen)
			}
			if collection.TotalCount == nil || *collection.TotalCount != tt.expectedTotal {
				t.Errorf("TotalCount = %v, want %d (pre-limit total)", collection.TotalCount, tt.expectedTotal)
			}
		})
	}
}

func TestGetCollectionNegativeLimit(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()

	_, err := c.GetCollection(client.Params{"limit": -1})
	if !marketplace.IsValidation(err) {
		t.Errorf("negative limit error = %v, want validation kind", err)
	}
}

func TestGetAsset(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()

	asset, err := c.GetAsset("asset-2")
	if err != nil {
		t.Fatalf("GetAsset error: %v", err)
	}
	if asset.UID != "asset-2" || asset.Title != "Epic Forest Pack" {
		t.Errorf("GetAsset returned %+v", asset)
	}
}

func TestGetAssetNotFound(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()

	_, err := c.GetAsset("missing")
	if !marketplace.IsNotFound(err) {
		t.Errorf("unknown UID error = %v, want not-found kind", err)
	}
}

func TestDownloadAssetSuccessSequence(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	dir := t.TempDir()
	cb := &recordingCallback{}

	result, err := c.DownloadAsset("asset-1", dir, cb, nil)
	if err != nil {
		t.Fatalf("DownloadAsset error: %v", err)
	}

	if !result.Success {
		t.Errorf("result = %+v, want success", result)
	}
	if result.AssetUID != "asset-1" {
		t.Errorf("AssetUID = %q", result.AssetUID)
	}
	if len(result.Files) != 1 {
		t.Fatalf("Files = %v, want one path", result.Files)
	}

	data, err := os.ReadFile(result.Files[0])
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "castle-payload-data" {
		t.Errorf("file content = %q", data)
	}
	if filepath.Base(result.Files[0]) != "Epic Castle Pack.bin" {
		t.Errorf("filename = %q", filepath.Base(result.Files[0]))
	}

	// Callback sequence: start, progress+, complete; never error.
	if len(cb.events) < 3 || cb.events[0] != "start" || cb.events[len(cb.events)-1] != "complete" {
		t.Fatalf("event sequence = %v", cb.events)
	}
	for _, e := range cb.events[1 : len(cb.events)-1] {
		if e != "progress" {
			t.Fatalf("unexpected event in sequence: %v", cb.events)
		}
	}
	if len(cb.errs) != 0 {
		t.Errorf("OnError fired on success: %v", cb.errs)
	}

	// Progress is monotonic with a stable total and finishes at the total.
	total := cb.starts[0]
	var last int64 = -1
	for _, p := range cb.progress {
		if p[0] <= last {
			t.Errorf("progress not monotonically increasing: %v", cb.progress)
		}
		if p[1] != total {
			t.Errorf("total changed mid-operation: %v", cb.progress)
		}
		last = p[0]
	}
	if last != total {
		t.Errorf("final progress = %d, want total %d", last, total)
	}

	// Metadata carries the operation id and both size renderings.
	if id, ok := result.Metadata["operation_id"].(string); !ok || id == "" {
		t.Error("missing operation_id metadata")
	}
	if result.Metadata["size_bytes"] != total {
		t.Errorf("size_bytes = %v, want %d", result.Metadata["size_bytes"], total)
	}
	if result.Metadata["size"] != marketplace.FormatBytes(total) {
		t.Errorf("size = %v", result.Metadata["size"])
	}
}

func TestDownloadAssetValidationBeforeCallback(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	cb := &recordingCallback{}

	_, err := c.DownloadAsset("asset-1", "", cb, nil)
	if !marketplace.IsValidation(err) {
		t.Errorf("empty output dir error = %v, want validation kind", err)
	}
	if len(cb.events) != 0 {
		t.Errorf("callback fired before validation passed: %v", cb.events)
	}
}

func TestDownloadAssetNotFoundBeforeCallback(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	cb := &recordingCallback{}

	_, err := c.DownloadAsset("missing", t.TempDir(), cb, nil)
	if !marketplace.IsNotFound(err) {
		t.Errorf("unknown UID error = %v, want not-found kind", err)
	}
	if len(cb.events) != 0 {
		t.Errorf("callback fired for unknown asset: %v", cb.events)
	}
}

func TestDownloadAssetFailureSequence(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	cb := &recordingCallback{}

	// asset-4 has no payload: the transfer starts, then fails.
	result, err := c.DownloadAsset("asset-4", t.TempDir(), cb, nil)
	if !marketplace.IsAPI(err) {
		t.Errorf("missing payload error = %v, want api kind", err)
	}
	if result == nil || result.Success {
		t.Fatalf("result = %+v, want recorded failure", result)
	}
	if result.Error == "" {
		t.Error("failure result must carry the error message")
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %v, want empty on failure", result.Files)
	}

	if len(cb.events) != 2 || cb.events[0] != "start" || cb.events[1] != "error" {
		t.Errorf("event sequence = %v, want [start error]", cb.events)
	}
}

func TestDownloadAssetNilCallback(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()

	result, err := c.DownloadAsset("asset-3", t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("DownloadAsset without callback error: %v", err)
	}
	if !result.Success {
		t.Errorf("result = %+v", result)
	}
}

func TestClosedClientRejectsOperations(t *testing.T) {
	c := newTestClient(t)

	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("repeated Close error: %v", err)
	}

	if _, err := c.GetCollection(nil); !marketplace.IsAPI(err) {
		t.Errorf("GetCollection on closed client = %v, want api kind", err)
	}
	if _, err := c.GetAsset("asset-1"); !marketplace.IsAPI(err) {
		t.Errorf("GetAsset on closed client = %v, want api kind", err)
	}
	if _, err := c.DownloadAsset("asset-1", t.TempDir(), nil, nil); !marketplace.IsAPI(err) {
		t.Errorf("DownloadAsset on closed client = %v, want api kind", err)
	}
}

func TestScopedAcquisition(t *testing.T) {
	c := newTestClient(t)

	err := client.With(c, func(scoped client.Client) error {
		asset, err := scoped.GetAsset("asset-1")
		if err != nil {
			return err
		}
		if asset.UID != "asset-1" {
			t.Errorf("asset = %+v", asset)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("With error: %v", err)
	}

	// The scoped exit closed the client.
	if _, err := c.GetAsset("asset-1"); !marketplace.IsAPI(err) {
		t.Errorf("client still usable after scope exit: %v", err)
	}
}

func TestScopedAcquisitionClosesOnError(t *testing.T) {
	c := newTestClient(t)
	opErr := errors.New("lookup failed")

	err := client.With(c, func(client.Client) error { return opErr })
	if !errors.Is(err, opErr) {
		t.Fatalf("With = %v, want the operation error", err)
	}
	if _, err := c.GetAsset("asset-1"); !marketplace.IsAPI(err) {
		t.Errorf("client still usable after error exit: %v", err)
	}
}

func TestProviderRefreshRotatesSession(t *testing.T) {
	provider := NewProvider(auth.EndpointConfig{BaseURL: "https://api.example.com"})

	before, err := provider.GetSession()
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	if err := provider.Refresh(); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	after, err := provider.GetSession()
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	if before == after {
		t.Error("Refresh should rotate the session token")
	}
	if provider.GetEndpoints().BaseURL != "https://api.example.com" {
		t.Errorf("endpoints = %+v", provider.GetEndpoints())
	}
}
