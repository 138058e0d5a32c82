package mock

import (
	"context"

	explainconfig "github.com/alexandra5000/explain-config"
)

var _ explainconfig.Corpus = (*Corpus)(nil)

// Corpus is a mock implementation of explainconfig.Corpus.
type Corpus struct {
	ReferenceDocsFn       func(ctx context.Context) ([]explainconfig.Doc, error)
	ConfigDocsFn          func(ctx context.Context) ([]explainconfig.Doc, error)
	TroubleshootingDocsFn func(ctx context.Context) ([]explainconfig.Doc, error)
	GeneralReferenceFn    func(ctx context.Context) (*explainconfig.Doc, error)
}

func (c *Corpus) ReferenceDocs(ctx context.Context) ([]explainconfig.Doc, error) {
	if c.ReferenceDocsFn == nil {
		return nil, nil
	}
	return c.ReferenceDocsFn(ctx)
}

func (c *Corpus) ConfigDocs(ctx context.Context) ([]explainconfig.Doc, error) {
	if c.ConfigDocsFn == nil {
		return nil, nil
	}
	return c.ConfigDocsFn(ctx)
}

func (c *Corpus) TroubleshootingDocs(ctx context.Context) ([]explainconfig.Doc, error) {
	if c.TroubleshootingDocsFn == nil {
		return nil, nil
	}
	return c.TroubleshootingDocsFn(ctx)
}

func (c *Corpus) GeneralReference(ctx context.Context) (*explainconfig.Doc, error) {
	if c.GeneralReferenceFn == nil {
		return nil, nil
	}
	return c.GeneralReferenceFn(ctx)
}
