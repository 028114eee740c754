package intro

import (
	"sync"
	"time"
)

// MemoryVisits is an in-process VisitRecorder.
type MemoryVisits struct {
	mu   sync.Mutex
	last time.Time
}

func (m *MemoryVisits) RecordVisit(at time.Time) {
	m.mu.Lock()
	m.last = at
	m.mu.Unlock()
}

// LastVisit returns the last recorded time, zero if none.
func (m *MemoryVisits) LastVisit() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// VisitFunc adapts a function to VisitRecorder.
type VisitFunc func(at time.Time)

func (f VisitFunc) RecordVisit(at time.Time) { f(at) }
