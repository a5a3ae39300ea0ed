package models

// UnknownTotal is the total value passed to progress callbacks when the
// size of an operation is not known upfront (e.g., chunked transfer without
// a Content-Length).
const UnknownTotal int64 = -1

// ProgressCallback is the blocking progress-reporting contract invoked by a
// download implementation during long-running transfer operations.
//
// Ordering guarantees per operation:
//   - OnStart is called exactly once, before any progress, if the
//     operation begins at all
//   - OnProgress is called zero or more times; current is monotonically
//     non-decreasing and total, when known, is stable across calls
//   - exactly one of OnComplete/OnError is called, OnComplete only on
//     success and OnError only on failure
//
// A total below zero (UnknownTotal) means the size is unknown.
type ProgressCallback interface {
	// OnStart is called once when the operation starts
	OnStart(total int64)

	// OnProgress is called periodically during the operation
	OnProgress(current, total int64)

	// OnComplete is called once when the operation completes successfully
	OnComplete()

	// OnError is called once, in place of OnComplete, when the operation
	// fails; it receives the triggering error
	OnError(err error)
}
