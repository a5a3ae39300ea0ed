// Package memclient provides an in-memory reference implementation of both
// marketplace client families.
//
// It backs the contract's operation surface with a seeded asset store and
// real filesystem downloads, and is intended for tests, examples and as a
// template for platform integrations: every invariant a concrete client
// must uphold (error kinds, progress ordering, tolerant Close, scoped
// acquisition) is exercised here.
//
// DownloadAsset reports transfer failures both ways: the returned
// DownloadResult carries Success=false with the message, and the error
// return carries the taxonomy error for control flow.
package memclient
