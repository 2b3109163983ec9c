package weather

import (
	"sync"

	"github.com/agrimitra-poc/server/internal/assistant/model"
)

// Cache holds the latest known weather snapshot. No history is kept; a failed
// refresh leaves the previous value standing so the assistant keeps answering
// with the last reading it saw.
type Cache struct {
	mu   sync.RWMutex
	snap model.WeatherSnapshot
}

// Store records a snapshot. The unavailable sentinel is ignored.
func (c *Cache) Store(snap model.WeatherSnapshot) {
	if !snap.Available() {
		return
	}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// Latest returns the last stored snapshot, or the unavailable sentinel when
// nothing was ever stored.
func (c *Cache) Latest() model.WeatherSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
