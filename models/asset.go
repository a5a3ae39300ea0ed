package models

import "time"

// Asset represents a single marketplace item.
//
// Platform-specific implementations extend this with their own fields
// (publisher, category, price, dependencies) by embedding Asset in their
// own type. UID is a stable unique key treated as an opaque comparison
// value; no structure is assumed.
type Asset struct {
	UID         string         `json:"uid"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CreatedAt   *time.Time     `json:"created_at,omitempty"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
	RawData     map[string]any `json:"raw_data,omitempty"`
}
