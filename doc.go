// Package marketplace provides the platform-agnostic contract layer for
// marketplace client libraries.
//
// The module defines the pieces a concrete platform integration (for
// example a digital-asset storefront client) implements against:
//   - A closed error taxonomy shared by every collaborator
//   - Data records (models.Asset, models.Collection, models.DownloadResult)
//   - Progress-reporting contracts for long-running transfers
//   - Authentication-provider contracts supplying opaque sessions
//   - Marketplace-client contracts with scoped resource cleanup
//
// Nothing in this layer performs network or filesystem I/O on its own
// behalf; concrete clients own their sessions and file handles and are only
// obligated to release them through Close. The root package holds the error
// taxonomy and the small validation helpers shared by implementations.
package marketplace
