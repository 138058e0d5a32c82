package http_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/fs"
	confhttp "github.com/alexandra5000/explain-config/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip builds an in-memory zip archive from path→content pairs.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestArchiveFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("downloads and extracts on first fetch", func(t *testing.T) {
		t.Parallel()

		archive := buildZip(t, map[string]string{
			"reference/edot-collector/edot-collector.md": "main reference",
		})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(archive)
		}))
		defer server.Close()

		cacheDir := t.TempDir()
		store := fs.NewCacheStore(cacheDir)
		fetcher := confhttp.NewArchiveFetcher(cacheDir, store, confhttp.WithArchiveURL(server.URL))

		downloaded, err := fetcher.Fetch(context.Background(), false)
		require.NoError(t, err)
		assert.True(t, downloaded)

		assert.FileExists(t, filepath.Join(cacheDir, "extracted", "reference", "edot-collector", "edot-collector.md"))

		rec, err := store.Record(context.Background())
		require.NoError(t, err)
		assert.False(t, rec.Stale(time.Now()))
	})

	t.Run("skips when cache is fresh and corpus exists", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write(buildZip(t, map[string]string{"a.md": "a"}))
		}))
		defer server.Close()

		cacheDir := t.TempDir()
		store := fs.NewCacheStore(cacheDir)
		fetcher := confhttp.NewArchiveFetcher(cacheDir, store, confhttp.WithArchiveURL(server.URL))

		_, err := fetcher.Fetch(context.Background(), false)
		require.NoError(t, err)
		require.Equal(t, int64(1), calls.Load())

		downloaded, err := fetcher.Fetch(context.Background(), false)
		require.NoError(t, err)
		assert.False(t, downloaded)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("force refetches a fresh cache", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write(buildZip(t, map[string]string{"a.md": "a"}))
		}))
		defer server.Close()

		cacheDir := t.TempDir()
		store := fs.NewCacheStore(cacheDir)
		fetcher := confhttp.NewArchiveFetcher(cacheDir, store, confhttp.WithArchiveURL(server.URL))

		_, err := fetcher.Fetch(context.Background(), false)
		require.NoError(t, err)

		downloaded, err := fetcher.Fetch(context.Background(), true)
		require.NoError(t, err)
		assert.True(t, downloaded)
		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("replaces the previous corpus wholesale", func(t *testing.T) {
		t.Parallel()

		cacheDir := t.TempDir()
		stale := filepath.Join(cacheDir, "extracted", "leftover.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(buildZip(t, map[string]string{"fresh.md": "new"}))
		}))
		defer server.Close()

		store := fs.NewCacheStore(cacheDir)
		fetcher := confhttp.NewArchiveFetcher(cacheDir, store, confhttp.WithArchiveURL(server.URL))

		_, err := fetcher.Fetch(context.Background(), true)
		require.NoError(t, err)

		assert.NoFileExists(t, stale)
		assert.FileExists(t, filepath.Join(cacheDir, "extracted", "fresh.md"))
	})

	t.Run("malformed archive leaves prior state untouched", func(t *testing.T) {
		t.Parallel()

		cacheDir := t.TempDir()
		existing := filepath.Join(cacheDir, "extracted", "keep.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0755))
		require.NoError(t, os.WriteFile(existing, []byte("keep"), 0644))

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not a zip archive"))
		}))
		defer server.Close()

		store := fs.NewCacheStore(cacheDir)
		fetcher := confhttp.NewArchiveFetcher(cacheDir, store, confhttp.WithArchiveURL(server.URL))

		_, err := fetcher.Fetch(context.Background(), true)
		require.Error(t, err)
		assert.Equal(t, explainconfig.EMALFORMED, explainconfig.ErrorCode(err))

		// Old corpus intact, record never written.
		assert.FileExists(t, existing)
		rec, recErr := store.Record(context.Background())
		require.NoError(t, recErr)
		assert.True(t, rec.LastUpdated.IsZero())
	})

	t.Run("transport failure reports EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cacheDir := t.TempDir()
		fetcher := confhttp.NewArchiveFetcher(cacheDir, fs.NewCacheStore(cacheDir), confhttp.WithArchiveURL(server.URL))

		_, err := fetcher.Fetch(context.Background(), true)
		require.Error(t, err)
		assert.Equal(t, explainconfig.EUNAVAILABLE, explainconfig.ErrorCode(err))
	})

	t.Run("zip entries escaping the destination are rejected", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("../escape.md")
		require.NoError(t, err)
		_, err = f.Write([]byte("bad"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			_, _ = rw.Write(buf.Bytes())
		}))
		defer server.Close()

		cacheDir := t.TempDir()
		fetcher := confhttp.NewArchiveFetcher(cacheDir, fs.NewCacheStore(cacheDir), confhttp.WithArchiveURL(server.URL))

		_, err = fetcher.Fetch(context.Background(), true)
		require.Error(t, err)
		assert.Equal(t, explainconfig.EMALFORMED, explainconfig.ErrorCode(err))
	})
}
