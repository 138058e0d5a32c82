package mock

import (
	"context"

	explainconfig "github.com/alexandra5000/explain-config"
)

var _ explainconfig.DocsFetcher = (*DocsFetcher)(nil)

// DocsFetcher is a mock implementation of explainconfig.DocsFetcher.
type DocsFetcher struct {
	FetchFn func(ctx context.Context, force bool) (bool, error)
}

func (f *DocsFetcher) Fetch(ctx context.Context, force bool) (bool, error) {
	return f.FetchFn(ctx, force)
}

var _ explainconfig.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of explainconfig.CacheStore.
type CacheStore struct {
	RecordFn func(ctx context.Context) (explainconfig.CacheRecord, error)
	SaveFn   func(ctx context.Context, rec explainconfig.CacheRecord) error
}

func (s *CacheStore) Record(ctx context.Context) (explainconfig.CacheRecord, error) {
	return s.RecordFn(ctx)
}

func (s *CacheStore) Save(ctx context.Context, rec explainconfig.CacheRecord) error {
	return s.SaveFn(ctx, rec)
}

var _ explainconfig.ContextProvider = (*ContextProvider)(nil)

// ContextProvider is a mock implementation of explainconfig.ContextProvider.
type ContextProvider struct {
	ComponentContextFn func(ctx context.Context, q explainconfig.ComponentQuery) (string, error)
}

func (p *ContextProvider) ComponentContext(ctx context.Context, q explainconfig.ComponentQuery) (string, error) {
	return p.ComponentContextFn(ctx, q)
}

var _ explainconfig.StatusReporter = (*StatusReporter)(nil)

// StatusReporter is a mock implementation of explainconfig.StatusReporter.
type StatusReporter struct {
	StatusFn func(ctx context.Context) (explainconfig.CacheStatus, error)
}

func (r *StatusReporter) Status(ctx context.Context) (explainconfig.CacheStatus, error) {
	return r.StatusFn(ctx)
}
