package metrics

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (*NoopRecorder) IncUserCreated()      {}
func (*NoopRecorder) IncUserDeleted()      {}
func (*NoopRecorder) IncOrderCreated()     {}
func (*NoopRecorder) IncValidationFailed() {}
func (*NoopRecorder) IncConflict()         {}
func (*NoopRecorder) IncDataReset()        {}
