package testutil

import (
	"sync"
	"time"

	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
)

// SlowModule registers a pure "slow" station that forwards its pallet after
// sleeping, recording how many calls were in flight at once.
type SlowModule struct {
	Sleep time.Duration

	mu       sync.Mutex
	inFlight int
	peak     int
	calls    int
}

// Register registers the "slow" station.
func (m *SlowModule) Register(r *registry.Registry) {
	r.Register(&registry.Kind{
		ID:          "slow",
		Inputs:      1,
		Output:      true,
		Procedure:   m.forward,
		Description: "Test station. Sleeps, then forwards its pallet.",
	})
}

func (m *SlowModule) forward(in []*pallet.Pallet) (*pallet.Pallet, error) {
	m.mu.Lock()
	m.inFlight++
	m.calls++
	m.peak = max(m.peak, m.inFlight)
	m.mu.Unlock()

	time.Sleep(m.Sleep)

	m.mu.Lock()
	m.inFlight--
	m.mu.Unlock()

	out := *in[0]
	return &out, nil
}

// Peak returns the largest number of concurrent calls observed.
func (m *SlowModule) Peak() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peak
}

// Calls returns the number of completed and running calls.
func (m *SlowModule) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
