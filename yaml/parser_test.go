package yaml_test

import (
	"testing"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
receivers:
  otlp:
    protocols:
      grpc:
        endpoint: 0.0.0.0:4317
  filelog:
processors:
  batch:
    timeout: 5s
exporters:
  elasticsearch:
    endpoints: ["https://example.com:9200"]
service:
  pipelines:
    traces:
      receivers: [otlp]
      processors: [batch]
      exporters: [elasticsearch]
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses a collector configuration", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(sampleConfig)
		require.NoError(t, err)
		assert.Contains(t, cfg, "receivers")
		assert.Contains(t, cfg, "service")
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse("   \n  ")
		assert.Equal(t, explainconfig.EINVALID, explainconfig.ErrorCode(err))
	})

	t.Run("rejects comment-only content", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse("# just a comment\n")
		assert.Equal(t, explainconfig.EINVALID, explainconfig.ErrorCode(err))
	})

	t.Run("rejects non-mapping root", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse("- a\n- b\n")
		assert.Equal(t, explainconfig.EINVALID, explainconfig.ErrorCode(err))
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse("receivers: [unclosed")
		assert.Equal(t, explainconfig.EINVALID, explainconfig.ErrorCode(err))
	})
}

func TestLooksLikeCollectorConfig(t *testing.T) {
	t.Parallel()

	cfg, err := yaml.Parse(sampleConfig)
	require.NoError(t, err)
	assert.True(t, yaml.LooksLikeCollectorConfig(cfg))

	other, err := yaml.Parse("foo: bar\n")
	require.NoError(t, err)
	assert.False(t, yaml.LooksLikeCollectorConfig(other))
}

func TestDetectComponents(t *testing.T) {
	t.Parallel()

	cfg, err := yaml.Parse(sampleConfig)
	require.NoError(t, err)

	components := yaml.DetectComponents(cfg)
	require.Len(t, components, 5)

	// Sections in fixed order, names sorted within each section.
	assert.Equal(t, explainconfig.TypeReceiver, components[0].Type)
	assert.Equal(t, "filelog", components[0].Name)
	assert.Equal(t, "otlp", components[1].Name)
	assert.Equal(t, explainconfig.TypeProcessor, components[2].Type)
	assert.Equal(t, "batch", components[2].Name)
	assert.Equal(t, explainconfig.TypeExporter, components[3].Type)
	assert.Equal(t, "elasticsearch", components[3].Name)

	// Service comes last.
	assert.Equal(t, explainconfig.TypeService, components[4].Type)

	// Nil component configs are normalized to empty maps.
	assert.NotNil(t, components[0].Config)
	assert.Empty(t, components[0].Config)
}

func TestFormatSnippet(t *testing.T) {
	t.Parallel()

	t.Run("renders a one-component snippet", func(t *testing.T) {
		t.Parallel()

		snippet, err := yaml.FormatSnippet(explainconfig.Component{
			Type:   explainconfig.TypeProcessor,
			Name:   "batch",
			Config: map[string]any{"timeout": "5s"},
		})

		require.NoError(t, err)
		assert.Contains(t, snippet, "processors:")
		assert.Contains(t, snippet, "batch:")
		assert.Contains(t, snippet, "timeout: 5s")
	})

	t.Run("service section keeps its singular key", func(t *testing.T) {
		t.Parallel()

		snippet, err := yaml.FormatSnippet(explainconfig.Component{
			Type:   explainconfig.TypeService,
			Name:   "service",
			Config: map[string]any{"pipelines": map[string]any{}},
		})

		require.NoError(t, err)
		assert.Contains(t, snippet, "service:")
		assert.NotContains(t, snippet, "services:")
	})

	t.Run("invalid component rejected", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.FormatSnippet(explainconfig.Component{Type: explainconfig.TypeReceiver})
		assert.Equal(t, explainconfig.EINVALID, explainconfig.ErrorCode(err))
	})
}
