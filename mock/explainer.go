package mock

import (
	"context"

	explainconfig "github.com/alexandra5000/explain-config"
)

var _ explainconfig.Explainer = (*Explainer)(nil)

// Explainer is a mock implementation of explainconfig.Explainer.
type Explainer struct {
	ExplainComponentFn func(ctx context.Context, component explainconfig.Component, snippet, docContext string) (string, error)
}

func (e *Explainer) ExplainComponent(ctx context.Context, component explainconfig.Component, snippet, docContext string) (string, error) {
	return e.ExplainComponentFn(ctx, component, snippet, docContext)
}
