package models

// Collection is an ordered sequence of assets plus an optional
// server-reported total.
//
// TotalCount may exceed len(Assets) for paginated partial views; nil means
// the server did not report a total. The convention that TotalCount is at
// least len(Assets) is not enforced here.
type Collection struct {
	Assets     []Asset `json:"assets"`
	TotalCount *int    `json:"total_count,omitempty"`
}

// Len returns the number of assets present in the collection, which for a
// paginated view may be less than TotalCount.
func (c Collection) Len() int {
	return len(c.Assets)
}

// Filter returns a new collection containing the assets for which the
// predicate holds. TotalCount on the result is the filtered length, not the
// original total.
func (c Collection) Filter(predicate func(Asset) bool) Collection {
	var filtered []Asset
	for _, asset := range c.Assets {
		if predicate(asset) {
			filtered = append(filtered, asset)
		}
	}
	count := len(filtered)
	return Collection{Assets: filtered, TotalCount: &count}
}

// FindByUID returns the first asset (in sequence order) whose UID matches,
// or false if none match. Linear scan; no dedup assumption.
func (c Collection) FindByUID(uid string) (*Asset, bool) {
	for i := range c.Assets {
		if c.Assets[i].UID == uid {
			return &c.Assets[i], true
		}
	}
	return nil, false
}
