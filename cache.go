package explainconfig

import (
	"context"
	"time"
)

// CacheExpiry is how long a documentation cache stays fresh after a
// successful fetch.
const CacheExpiry = 7 * 24 * time.Hour

// CacheRecord is the metadata persisted alongside each documentation
// corpus. A record is written only after its fetch succeeds; a failed
// fetch leaves the previous record authoritative.
type CacheRecord struct {
	// LastUpdated is when the corpus was last fetched successfully.
	// The zero value means the corpus has never been fetched.
	LastUpdated time.Time

	// Extra holds additional scalar metadata, e.g. the number of files
	// downloaded during a per-component harvest.
	Extra map[string]string
}

// Stale reports whether the record's corpus should be refreshed at the
// given time. A record with no timestamp is always stale.
func (r CacheRecord) Stale(now time.Time) bool {
	if r.LastUpdated.IsZero() {
		return true
	}
	return now.After(r.LastUpdated.Add(CacheExpiry))
}

// CacheStore persists the cache record for a single documentation source.
type CacheStore interface {
	// Record returns the current cache record. A missing or unparsable
	// record yields the zero record (which is stale) rather than an error.
	Record(ctx context.Context) (CacheRecord, error)

	// Save overwrites the record. Callers must never observe a
	// half-written record.
	Save(ctx context.Context, rec CacheRecord) error
}

// DocsFetcher populates a documentation corpus from its remote source.
type DocsFetcher interface {
	// Fetch downloads the corpus if it is stale, absent, or force is set.
	// It reports whether anything was newly downloaded. Zero downloads
	// during a per-component sweep is a soft shortfall, reported as
	// (false, nil) with the cache record left untouched.
	Fetch(ctx context.Context, force bool) (bool, error)
}

// SourceStatus describes the cache state of one documentation source.
type SourceStatus struct {
	Cached      bool      `json:"cached"`
	Stale       bool      `json:"stale"`
	LastUpdated time.Time `json:"lastUpdated"`
	Dir         string    `json:"dir"`
	Files       int       `json:"files"`
}

// CacheStatus describes the cache state of both documentation sources.
// It is produced for display purposes only.
type CacheStatus struct {
	Archive    SourceStatus `json:"archive"`
	Components SourceStatus `json:"components"`
}

// StatusReporter reports cache state for display.
type StatusReporter interface {
	Status(ctx context.Context) (CacheStatus, error)
}
