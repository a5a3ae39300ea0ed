// Package models defines the data records and progress-reporting contracts
// shared by every marketplace client implementation.
//
// The records (Asset, Collection, DownloadResult) are value-like: freely
// copyable, holding no external resources, and not mutated by the contract
// layer after construction. The progress contracts come in a blocking and a
// context-aware variant with identical ordering guarantees:
//   - OnStart fires exactly once, before any progress
//   - OnProgress fires zero or more times with non-decreasing current
//   - exactly one of OnComplete/OnError fires per operation
package models
