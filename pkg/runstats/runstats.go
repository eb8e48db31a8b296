// Package runstats collects counters about pipeline runs: how many reports were
// computed, how many failed, and how long they took. A Collector is safe for
// concurrent use and is shared by the stats middleware and the HTTP server.
package runstats

import (
	"sync"
	"time"
)

// Stats is a snapshot of the collected counters.
type Stats struct {
	Computations  uint64        `json:"computations"`
	Failures      uint64        `json:"failures"`
	LastDuration  time.Duration `json:"lastDurationNs"`
	TotalDuration time.Duration `json:"totalDurationNs"`
	LastRun       time.Time     `json:"lastRun"`
}

// Collector accumulates run statistics.
type Collector struct {
	mu    sync.RWMutex // protects stats
	stats Stats
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Observe records one finished run.
func (c *Collector) Observe(at time.Time, took time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Computations++
	if err != nil {
		c.stats.Failures++
	}

	c.stats.LastDuration = took
	c.stats.TotalDuration += took
	c.stats.LastRun = at
}

// GetStats returns the current counters.
func (c *Collector) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.stats
}
