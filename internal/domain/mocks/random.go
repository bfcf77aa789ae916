package mocks

import "sync"

// Random is a deterministic ports.RandomSource that replays Values in order.
// Each value is reduced modulo n; an empty Values always yields 0.
type Random struct {
	Values []int

	mu    sync.Mutex
	next  int
	Calls []int
}

// IntN returns the next scripted value modulo n and records n.
func (m *Random) IntN(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, n)
	if len(m.Values) == 0 {
		return 0
	}
	v := m.Values[m.next%len(m.Values)]
	m.next++
	return v % n
}
