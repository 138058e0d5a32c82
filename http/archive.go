// Package http provides HTTP-based implementations of the documentation
// fetchers: the bulk archive download and the per-component harvest.
package http

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/fs"
)

// DefaultArchiveURL is the bulk documentation archive source.
const DefaultArchiveURL = "https://www.elastic.co/docs/llm.zip"

// DefaultDownloadTimeout bounds each archive or API download.
const DefaultDownloadTimeout = 30 * time.Second

// Ensure ArchiveFetcher implements explainconfig.DocsFetcher.
var _ explainconfig.DocsFetcher = (*ArchiveFetcher)(nil)

// ArchiveFetcher downloads the bulk documentation archive and extracts it
// into the archive cache directory, replacing the previous corpus
// wholesale. Any failure leaves the prior corpus and cache record
// untouched.
type ArchiveFetcher struct {
	url      string
	cacheDir string
	store    explainconfig.CacheStore
	client   *http.Client
}

// ArchiveOption configures an ArchiveFetcher.
type ArchiveOption func(*ArchiveFetcher)

// WithArchiveURL overrides the archive source URL.
func WithArchiveURL(url string) ArchiveOption {
	return func(f *ArchiveFetcher) {
		f.url = url
	}
}

// WithArchiveClient overrides the HTTP client. Defaults to a client with
// DefaultDownloadTimeout.
func WithArchiveClient(client *http.Client) ArchiveOption {
	return func(f *ArchiveFetcher) {
		f.client = client
	}
}

// NewArchiveFetcher creates an ArchiveFetcher writing into cacheDir and
// recording fetches in store.
func NewArchiveFetcher(cacheDir string, store explainconfig.CacheStore, opts ...ArchiveOption) *ArchiveFetcher {
	f := &ArchiveFetcher{
		url:      DefaultArchiveURL,
		cacheDir: cacheDir,
		store:    store,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: DefaultDownloadTimeout}
	}
	return f
}

func (f *ArchiveFetcher) extractedDir() string {
	return filepath.Join(f.cacheDir, fs.ExtractedDirName)
}

// Fetch downloads and extracts the archive. It reports whether a fresh
// download occurred; a fresh, populated cache is skipped unless force is
// set.
func (f *ArchiveFetcher) Fetch(ctx context.Context, force bool) (bool, error) {
	rec, err := f.store.Record(ctx)
	if err != nil {
		return false, err
	}
	if !force && !rec.Stale(time.Now()) && dirExists(f.extractedDir()) {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return false, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return false, explainconfig.Errorf(explainconfig.EUNAVAILABLE, "download documentation archive: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, explainconfig.Errorf(explainconfig.EUNAVAILABLE, "documentation archive: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, explainconfig.Errorf(explainconfig.EUNAVAILABLE, "download documentation archive: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false, explainconfig.Errorf(explainconfig.EMALFORMED, "downloaded file is not a valid zip archive")
	}

	// Extract into a temp directory, then swap it in so the previous
	// corpus survives an extraction failure.
	tmpDir := f.extractedDir() + ".tmp"
	if err := os.RemoveAll(tmpDir); err != nil {
		return false, err
	}
	if err := extractZip(reader, tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return false, explainconfig.Errorf(explainconfig.EMALFORMED, "extract documentation archive: %v", err)
	}

	if err := os.RemoveAll(f.extractedDir()); err != nil {
		return false, err
	}
	if err := os.Rename(tmpDir, f.extractedDir()); err != nil {
		return false, err
	}

	err = f.store.Save(ctx, explainconfig.CacheRecord{
		LastUpdated: time.Now(),
		Extra:       map[string]string{"version": "unknown"},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// extractZip extracts the archive into destDir, rejecting entries that
// would escape it.
func extractZip(reader *zip.Reader, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	for _, file := range reader.File {
		name := filepath.FromSlash(file.Name)
		if filepath.IsAbs(name) || strings.Contains(name, "..") {
			return explainconfig.Errorf(explainconfig.EMALFORMED, "archive entry escapes extraction directory: %q", file.Name)
		}
		target := filepath.Join(destDir, name)

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		src, err := file.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(src)
		_ = src.Close()
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
