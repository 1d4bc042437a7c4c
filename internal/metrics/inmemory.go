package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated      uint64
	UsersDeleted      uint64
	OrdersCreated     uint64
	ValidationsFailed uint64
	Conflicts         uint64
	DataResets        uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersCreated      uint64
	usersDeleted      uint64
	ordersCreated     uint64
	validationsFailed uint64
	conflicts         uint64
	dataResets        uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:      atomic.LoadUint64(&m.usersCreated),
		UsersDeleted:      atomic.LoadUint64(&m.usersDeleted),
		OrdersCreated:     atomic.LoadUint64(&m.ordersCreated),
		ValidationsFailed: atomic.LoadUint64(&m.validationsFailed),
		Conflicts:         atomic.LoadUint64(&m.conflicts),
		DataResets:        atomic.LoadUint64(&m.dataResets),
	}
}

func (m *InMemoryRecorder) IncUserCreated()      { atomic.AddUint64(&m.usersCreated, 1) }
func (m *InMemoryRecorder) IncUserDeleted()      { atomic.AddUint64(&m.usersDeleted, 1) }
func (m *InMemoryRecorder) IncOrderCreated()     { atomic.AddUint64(&m.ordersCreated, 1) }
func (m *InMemoryRecorder) IncValidationFailed() { atomic.AddUint64(&m.validationsFailed, 1) }
func (m *InMemoryRecorder) IncConflict()         { atomic.AddUint64(&m.conflicts, 1) }
func (m *InMemoryRecorder) IncDataReset()        { atomic.AddUint64(&m.dataResets, 1) }
