package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Ensure StatusReporter implements explainconfig.StatusReporter.
var _ explainconfig.StatusReporter = (*StatusReporter)(nil)

// StatusReporter reports the cache state of both documentation sources
// for display.
type StatusReporter struct {
	archiveDir    string
	componentsDir string
	archive       *CacheStore
	components    *CacheStore
	now           func() time.Time
}

// NewStatusReporter creates a StatusReporter over the two cache
// directories.
func NewStatusReporter(archiveDir, componentsDir string) *StatusReporter {
	return &StatusReporter{
		archiveDir:    archiveDir,
		componentsDir: componentsDir,
		archive:       NewCacheStore(archiveDir),
		components:    NewCacheStore(componentsDir),
		now:           time.Now,
	}
}

// Status reads both cache records and corpus directories.
func (r *StatusReporter) Status(ctx context.Context) (explainconfig.CacheStatus, error) {
	archiveRec, err := r.archive.Record(ctx)
	if err != nil {
		return explainconfig.CacheStatus{}, err
	}
	componentsRec, err := r.components.Record(ctx)
	if err != nil {
		return explainconfig.CacheStatus{}, err
	}

	now := r.now()

	status := explainconfig.CacheStatus{
		Archive: explainconfig.SourceStatus{
			Cached:      dirExists(filepath.Join(r.archiveDir, ExtractedDirName)),
			Stale:       archiveRec.Stale(now),
			LastUpdated: archiveRec.LastUpdated,
			Dir:         r.archiveDir,
		},
		Components: explainconfig.SourceStatus{
			Cached:      dirExists(filepath.Join(r.componentsDir, ComponentsDirName)),
			Stale:       componentsRec.Stale(now),
			LastUpdated: componentsRec.LastUpdated,
			Dir:         r.componentsDir,
		},
	}

	if v, ok := componentsRec.Extra["files_downloaded"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			status.Components.Files = n
		}
	}

	return status, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
