package explainconfig_test

import (
	"context"
	"strings"
	"testing"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextBuilder_ComponentContext(t *testing.T) {
	t.Parallel()

	t.Run("exact name match wins the first block", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			ReferenceDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				return []explainconfig.Doc{
					{Name: "general.md", Path: "a/general.md", Content: strings.Repeat("otlp otlp otlp otlp otlp\n", 10)},
					{Name: "otlpreceiver.md", Path: "b/otlpreceiver.md", Content: "# OTLP Receiver\nReceives OTLP data."},
				}, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type: explainconfig.TypeReceiver,
			Name: "otlp",
		})

		require.NoError(t, err)
		blocks := strings.Split(out, "\n\n")
		require.NotEmpty(t, blocks)
		assert.Contains(t, blocks[0], "From: otlpreceiver.md")
	})

	t.Run("never exceeds three blocks", func(t *testing.T) {
		t.Parallel()

		var docs []explainconfig.Doc
		for _, p := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
			docs = append(docs, explainconfig.Doc{
				Name:    p + "_batch.md",
				Path:    p + "/" + p + "_batch.md",
				Content: strings.Repeat("documentation for the batch processor\n", 10),
			})
		}

		corpus := &mock.Corpus{
			ReferenceDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) { return docs, nil },
			ConfigDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				return []explainconfig.Doc{{
					Name:    "config.md",
					Path:    "config/config.md",
					Content: "batch\n```yaml\nprocessors:\n  batch:\n    timeout: 5s\n```\n",
				}}, nil
			},
			TroubleshootingDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				return []explainconfig.Doc{{Name: "batch.md", Path: "ts/batch.md", Content: "troubleshooting batch"}}, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type:   explainconfig.TypeProcessor,
			Name:   "batch",
			Fields: []string{"timeout"},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "---\nFrom: ")+strings.Count(out, "---\nField-specific")+strings.Count(out, "---\nTroubleshooting"))
	})

	t.Run("empty corpus yields empty string without error", func(t *testing.T) {
		t.Parallel()

		builder := explainconfig.NewContextBuilder(&mock.Corpus{})
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type: explainconfig.TypeReceiver,
			Name: "otlp",
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("field examples fill remaining slots", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			ConfigDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				return []explainconfig.Doc{{
					Name:    "sampling.md",
					Path:    "config/sampling.md",
					Content: "About tail_sampling.\n```yaml\nprocessors:\n  tail_sampling:\n    decision_wait: 10s\n```\n",
				}}, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type:   explainconfig.TypeProcessor,
			Name:   "tail_sampling",
			Fields: []string{"decision_wait"},
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Field-specific context:")
		assert.Contains(t, out, "decision_wait: 10s")
	})

	t.Run("field examples skipped without config fields", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			ConfigDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				t.Error("config docs should not be consulted without fields")
				return nil, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type: explainconfig.TypeProcessor,
			Name: "batch",
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("troubleshooting prefers filename match", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			TroubleshootingDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				return []explainconfig.Doc{
					{Name: "opentelemetry.md", Path: "ts/opentelemetry.md", Content: "generic advice mentioning kafka"},
					{Name: "kafka.md", Path: "ts/kafka.md", Content: "kafka specific advice"},
				}, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type: explainconfig.TypeExporter,
			Name: "kafka",
		})

		require.NoError(t, err)
		assert.Contains(t, out, "From: kafka.md")
		assert.NotContains(t, out, "generic advice")
	})

	t.Run("generic troubleshooting used only when it mentions the component", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			TroubleshootingDocsFn: func(_ context.Context) ([]explainconfig.Doc, error) {
				return []explainconfig.Doc{
					{Name: "opentelemetry.md", Path: "ts/opentelemetry.md", Content: "generic advice without the component"},
				}, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type: explainconfig.TypeExporter,
			Name: "kafka",
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("falls back to the general reference when nothing matched", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			GeneralReferenceFn: func(_ context.Context) (*explainconfig.Doc, error) {
				return &explainconfig.Doc{
					Name:    "edot-collector.md",
					Path:    "reference/edot-collector.md",
					Content: "The EDOT Collector ships telemetry.",
				}, nil
			},
		}

		builder := explainconfig.NewContextBuilder(corpus)
		out, err := builder.ComponentContext(context.Background(), explainconfig.ComponentQuery{
			Type: explainconfig.TypeExporter,
			Name: "nonexistent",
		})

		require.NoError(t, err)
		assert.Contains(t, out, "From: edot-collector.md")
	})
}
