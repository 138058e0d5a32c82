package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusReporter_Status(t *testing.T) {
	t.Parallel()

	t.Run("uncached sources report stale and uncached", func(t *testing.T) {
		t.Parallel()

		reporter := fs.NewStatusReporter(t.TempDir(), t.TempDir())

		status, err := reporter.Status(context.Background())
		require.NoError(t, err)

		assert.False(t, status.Archive.Cached)
		assert.True(t, status.Archive.Stale)
		assert.False(t, status.Components.Cached)
		assert.True(t, status.Components.Stale)
	})

	t.Run("populated caches report their state", func(t *testing.T) {
		t.Parallel()

		archiveDir := t.TempDir()
		componentsDir := t.TempDir()

		require.NoError(t, os.MkdirAll(filepath.Join(archiveDir, "extracted"), 0755))
		require.NoError(t, os.MkdirAll(filepath.Join(componentsDir, "collector_docs"), 0755))

		now := time.Now()
		require.NoError(t, fs.NewCacheStore(archiveDir).Save(context.Background(), explainconfig.CacheRecord{LastUpdated: now}))
		require.NoError(t, fs.NewCacheStore(componentsDir).Save(context.Background(), explainconfig.CacheRecord{
			LastUpdated: now,
			Extra:       map[string]string{"files_downloaded": "42"},
		}))

		reporter := fs.NewStatusReporter(archiveDir, componentsDir)
		status, err := reporter.Status(context.Background())
		require.NoError(t, err)

		assert.True(t, status.Archive.Cached)
		assert.False(t, status.Archive.Stale)
		assert.True(t, status.Components.Cached)
		assert.False(t, status.Components.Stale)
		assert.Equal(t, 42, status.Components.Files)
		assert.Equal(t, archiveDir, status.Archive.Dir)
	})
}
