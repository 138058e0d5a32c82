// Package fs provides filesystem-backed implementations of the cache
// store, corpus, and status reporter.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
)

// RecordFile is the name of the cache metadata file within each cache
// directory.
const RecordFile = "cache_info.json"

// Ensure CacheStore implements explainconfig.CacheStore at compile time.
var _ explainconfig.CacheStore = (*CacheStore)(nil)

// CacheStore persists a single cache record as a JSON file in its cache
// directory. Writes go through a temp file and rename so readers never
// observe a half-written record.
type CacheStore struct {
	dir string
}

// NewCacheStore creates a CacheStore rooted at dir. The directory is
// created on first Save.
func NewCacheStore(dir string) *CacheStore {
	return &CacheStore{dir: dir}
}

// Record returns the current cache record. Missing or unparsable records
// yield the zero record, which reads as stale.
func (s *CacheStore) Record(ctx context.Context) (explainconfig.CacheRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, RecordFile))
	if err != nil {
		return explainconfig.CacheRecord{}, nil
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return explainconfig.CacheRecord{}, nil
	}

	rec := explainconfig.CacheRecord{Extra: make(map[string]string)}
	for k, v := range raw {
		if k == "last_updated" {
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				rec.LastUpdated = ts
			}
			continue
		}
		rec.Extra[k] = v
	}
	return rec, nil
}

// Save overwrites the record atomically.
func (s *CacheStore) Save(ctx context.Context, rec explainconfig.CacheRecord) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	raw := make(map[string]string, len(rec.Extra)+1)
	for k, v := range rec.Extra {
		raw[k] = v
	}
	if !rec.LastUpdated.IsZero() {
		raw["last_updated"] = rec.LastUpdated.Format(time.RFC3339)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	tmp := filepath.Join(s.dir, RecordFile+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.dir, RecordFile))
}
