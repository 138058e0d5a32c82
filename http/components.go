package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/fs"
	"golang.org/x/time/rate"
)

// Upstream collector repository endpoints. The listing endpoint is the
// GitHub contents API and may be rate limited; the raw endpoint serves
// file content without counting against API rate limits.
const (
	DefaultListingURL = "https://api.github.com/repos/open-telemetry/opentelemetry-collector-contrib/contents"
	DefaultRawURL     = "https://raw.githubusercontent.com/open-telemetry/opentelemetry-collector-contrib/main"
)

// DefaultDownloadInterval is the pause between successful per-component
// downloads, doubling as informal rate limiting.
const DefaultDownloadInterval = 50 * time.Millisecond

// rateLimitBackoff is how long to wait after a 403 before moving on to
// the next candidate.
const rateLimitBackoff = 2 * time.Second

// Ensure ComponentFetcher implements explainconfig.DocsFetcher.
var _ explainconfig.DocsFetcher = (*ComponentFetcher)(nil)

// ComponentFetcher harvests one reference document per component from the
// upstream collector repository. Enumeration failures fall back to a
// curated component table; per-candidate failures are swallowed, and only
// aggregate counts surface. The cache record is updated only when at
// least one file was downloaded.
type ComponentFetcher struct {
	listingURL string
	rawURL     string
	cacheDir   string
	store      explainconfig.CacheStore
	client     *http.Client
	limiter    *rate.Limiter
	fallback   map[explainconfig.ComponentType][]string
	sleep      func(time.Duration)
}

// ComponentOption configures a ComponentFetcher.
type ComponentOption func(*ComponentFetcher)

// WithListingURL overrides the directory-listing endpoint.
func WithListingURL(url string) ComponentOption {
	return func(f *ComponentFetcher) {
		f.listingURL = url
	}
}

// WithRawURL overrides the raw content endpoint.
func WithRawURL(url string) ComponentOption {
	return func(f *ComponentFetcher) {
		f.rawURL = url
	}
}

// WithComponentClient overrides the HTTP client. Defaults to a client
// with DefaultDownloadTimeout.
func WithComponentClient(client *http.Client) ComponentOption {
	return func(f *ComponentFetcher) {
		f.client = client
	}
}

// WithDownloadInterval overrides the pause between successful downloads.
// A non-positive interval disables pacing (useful in tests).
func WithDownloadInterval(d time.Duration) ComponentOption {
	return func(f *ComponentFetcher) {
		f.limiter = newLimiter(d)
	}
}

// WithFallbackComponents overrides the curated fallback table.
func WithFallbackComponents(fallback map[explainconfig.ComponentType][]string) ComponentOption {
	return func(f *ComponentFetcher) {
		f.fallback = fallback
	}
}

// WithSleep overrides the backoff sleep function (useful in tests).
func WithSleep(sleep func(time.Duration)) ComponentOption {
	return func(f *ComponentFetcher) {
		f.sleep = sleep
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// NewComponentFetcher creates a ComponentFetcher writing into cacheDir
// and recording fetches in store.
func NewComponentFetcher(cacheDir string, store explainconfig.CacheStore, opts ...ComponentOption) *ComponentFetcher {
	f := &ComponentFetcher{
		listingURL: DefaultListingURL,
		rawURL:     DefaultRawURL,
		cacheDir:   cacheDir,
		store:      store,
		limiter:    newLimiter(DefaultDownloadInterval),
		fallback:   FallbackComponents(),
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: DefaultDownloadTimeout}
	}
	return f
}

func (f *ComponentFetcher) docsDir() string {
	return filepath.Join(f.cacheDir, fs.ComponentsDirName)
}

// Fetch sweeps all component categories, downloading one reference file
// per candidate. It reports whether any file was newly downloaded; zero
// downloads is a soft shortfall (false, nil) with the record untouched.
func (f *ComponentFetcher) Fetch(ctx context.Context, force bool) (bool, error) {
	rec, err := f.store.Record(ctx)
	if err != nil {
		return false, err
	}
	if !force && !rec.Stale(time.Now()) && dirExists(f.docsDir()) {
		return false, nil
	}

	downloaded := 0
sweep:
	for _, category := range explainconfig.ComponentTypes() {
		names := f.listComponents(ctx, category)
		if len(names) == 0 {
			names = f.fallback[category]
		}

		// Clear the category directory so files from different
		// enumeration strategies never mix across runs.
		categoryDir := filepath.Join(f.docsDir(), string(category))
		if err := os.RemoveAll(categoryDir); err != nil {
			return false, err
		}
		if err := os.MkdirAll(categoryDir, 0755); err != nil {
			return false, err
		}

		for _, name := range names {
			if name == "" {
				continue
			}
			if ctx.Err() != nil {
				break sweep
			}

			status, body, err := f.fetchRaw(ctx, category, name)
			if err != nil {
				continue
			}

			switch status {
			case http.StatusOK:
				path := filepath.Join(categoryDir, name+".md")
				if err := os.WriteFile(path, body, 0644); err != nil {
					continue
				}
				downloaded++
				if err := f.limiter.Wait(ctx); err != nil {
					break sweep
				}
			case http.StatusNotFound:
				// Component has no reference doc.
			case http.StatusForbidden:
				// Rate limited: back off and move on without retrying
				// this candidate.
				f.sleep(rateLimitBackoff)
			default:
				// Other error, skip this component.
			}
		}
	}

	if downloaded == 0 {
		return false, nil
	}

	err = f.store.Save(ctx, explainconfig.CacheRecord{
		LastUpdated: time.Now(),
		Extra:       map[string]string{"files_downloaded": strconv.Itoa(downloaded)},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// listComponents enumerates child component names for a category via the
// directory-listing endpoint. Enumeration failure is non-fatal and yields
// nil, which triggers the curated fallback.
func (f *ComponentFetcher) listComponents(ctx context.Context, category explainconfig.ComponentType) []string {
	url := fmt.Sprintf("%s/%s", f.listingURL, category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var entries []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.Type == "dir" && e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

// fetchRaw downloads a single component reference document via the raw
// content endpoint.
func (f *ComponentFetcher) fetchRaw(ctx context.Context, category explainconfig.ComponentType, name string) (int, []byte, error) {
	url := fmt.Sprintf("%s/%s/%s/README.md", f.rawURL, category, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
