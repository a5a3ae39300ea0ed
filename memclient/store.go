package memclient

import (
	"sync"

	"go-marketplace-core/models"
)

// Store is a mutex-guarded in-memory asset store preserving insertion
// order. An asset may be stored without a payload; downloads of such assets
// fail after the transfer starts, which models a marketplace entry whose
// content is unavailable.
type Store struct {
	mu       sync.RWMutex
	order    []string
	assets   map[string]models.Asset
	payloads map[string][]byte
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		assets:   make(map[string]models.Asset),
		payloads: make(map[string][]byte),
	}
}

// Put stores an asset and its payload, replacing any previous entry with
// the same UID. A nil payload marks the content as unavailable
func (s *Store) Put(asset models.Asset, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[asset.UID]; !exists {
		s.order = append(s.order, asset.UID)
	}
	s.assets[asset.UID] = asset
	if payload != nil {
		s.payloads[asset.UID] = payload
	} else {
		delete(s.payloads, asset.UID)
	}
}

// Get returns the asset and its payload. The payload is nil when the
// content is unavailable; the second return reports whether the asset
// exists at all
func (s *Store) Get(uid string) (models.Asset, []byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[uid]
	if !ok {
		return models.Asset{}, nil, false
	}
	return asset, s.payloads[uid], true
}

// List returns a snapshot of all assets in insertion order
func (s *Store) List() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assets := make([]models.Asset, 0, len(s.order))
	for _, uid := range s.order {
		assets = append(assets, s.assets[uid])
	}
	return assets
}

// Len returns the number of assets stored
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
