// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
type Recorder interface {
	// User lifecycle
	IncUserCreated()
	IncUserDeleted()

	// Order lifecycle
	IncOrderCreated()

	// Rejected writes
	IncValidationFailed()
	IncConflict()

	// Bulk reset invocations
	IncDataReset()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
