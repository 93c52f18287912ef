package model

import "time"

// EnrichedRecord pairs a port observation with its process intelligence.
type EnrichedRecord struct {
	PortRecord
	Intel ProcessIntelligence
}

// Snapshot is what one scan publishes to the presentation layer. It fully
// replaces the previous snapshot; readers never see a partial update.
type Snapshot struct {
	Records     []EnrichedRecord
	Scanning    bool
	LastScan    time.Time
	AutoRefresh bool
}
