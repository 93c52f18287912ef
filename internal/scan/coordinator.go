// Package scan ties the socket enumerator and the intelligence engine into
// one refresh cycle and publishes the result as an atomic snapshot.
package scan

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arjunmalhotra/portwise/internal/intel"
	"github.com/arjunmalhotra/portwise/internal/lsof"
	"github.com/arjunmalhotra/portwise/internal/proc"
	"github.com/arjunmalhotra/portwise/pkg/model"
)

type Config struct {
	RefreshInterval time.Duration
	KillGraceDelay  time.Duration
}

func DefaultConfig() Config {
	return Config{
		RefreshInterval: 3 * time.Second,
		KillGraceDelay:  500 * time.Millisecond,
	}
}

// Coordinator runs scans and owns the published snapshot. Scans may be
// triggered manually at any time and are not mutually exclusive; at the
// supported refresh cadence overlapping scans are harmless, they just race
// to publish last.
type Coordinator struct {
	run    proc.Runner
	engine *intel.Engine
	cfg    Config

	mu       sync.Mutex
	snapshot model.Snapshot
	stopAuto chan struct{}
}

func New(run proc.Runner, engine *intel.Engine, cfg Config) *Coordinator {
	return &Coordinator{run: run, engine: engine, cfg: cfg}
}

// Scan performs one full refresh: enumerate sockets, enrich every record in
// enumeration order, publish. A failed enumeration publishes an empty list
// rather than an error; the intelligence engine never fails by design.
func (c *Coordinator) Scan() {
	c.setScanning(true)
	start := time.Now()

	records, err := lsof.List(c.run)
	if err != nil {
		logrus.WithError(err).Debug("port enumeration failed")
		records = nil
	}

	enriched := make([]model.EnrichedRecord, 0, len(records))
	for _, rec := range records {
		enriched = append(enriched, model.EnrichedRecord{
			PortRecord: rec,
			Intel:      c.engine.Describe(rec.Process, rec.PID),
		})
	}

	c.mu.Lock()
	c.snapshot.Records = enriched
	c.snapshot.Scanning = false
	c.snapshot.LastScan = time.Now()
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{"records": len(enriched), "took": time.Since(start)}).Debug("scan complete")
}

// Snapshot returns the last published state. The record slice is never
// mutated after publication, so handing it out is safe.
func (c *Coordinator) Snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// ToggleAutoRefresh flips periodic scanning and reports the new state.
func (c *Coordinator) ToggleAutoRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopAuto != nil {
		close(c.stopAuto)
		c.stopAuto = nil
		c.snapshot.AutoRefresh = false
		return false
	}

	stop := make(chan struct{})
	c.stopAuto = stop
	c.snapshot.AutoRefresh = true

	go func() {
		ticker := time.NewTicker(c.cfg.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Scan()
			case <-stop:
				return
			}
		}
	}()
	return true
}

// Terminate stops the process behind a record. On success a follow-up scan
// is scheduled after a short grace delay so the list reflects the exit; on
// failure the system error is returned for the user to read.
func (c *Coordinator) Terminate(rec model.PortRecord, force bool) error {
	if err := proc.Terminate(rec.PID, force); err != nil {
		return err
	}
	time.AfterFunc(c.cfg.KillGraceDelay, c.Scan)
	return nil
}

func (c *Coordinator) setScanning(v bool) {
	c.mu.Lock()
	c.snapshot.Scanning = v
	c.mu.Unlock()
}
