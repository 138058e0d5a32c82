// Package yaml parses EDOT Collector configurations using gopkg.in/yaml.v3
// and detects the components they contain.
package yaml

import (
	"sort"
	"strings"

	explainconfig "github.com/alexandra5000/explain-config"
	"gopkg.in/yaml.v3"
)

// componentSections maps configuration section keys to component types,
// in detection order.
var componentSections = []struct {
	key string
	typ explainconfig.ComponentType
}{
	{"receivers", explainconfig.TypeReceiver},
	{"processors", explainconfig.TypeProcessor},
	{"exporters", explainconfig.TypeExporter},
	{"extensions", explainconfig.TypeExtension},
}

// Parse parses YAML content into a configuration mapping. The root must
// be a mapping; empty or comment-only content is rejected.
func Parse(content string) (map[string]any, error) {
	if strings.TrimSpace(content) == "" {
		return nil, explainconfig.Errorf(explainconfig.EINVALID, "empty YAML content provided")
	}

	var data any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, explainconfig.Errorf(explainconfig.EINVALID, "invalid YAML: %v", err)
	}
	if data == nil {
		return nil, explainconfig.Errorf(explainconfig.EINVALID, "YAML file is empty or contains only comments")
	}

	cfg, ok := toStringMap(data)
	if !ok {
		return nil, explainconfig.Errorf(explainconfig.EINVALID, "YAML root must be a mapping")
	}
	return cfg, nil
}

// LooksLikeCollectorConfig reports whether the configuration has at least
// one of the sections a collector configuration typically has.
func LooksLikeCollectorConfig(cfg map[string]any) bool {
	for _, section := range []string{"receivers", "processors", "exporters", "extensions", "service"} {
		if _, ok := cfg[section]; ok {
			return true
		}
	}
	return false
}

// DetectComponents extracts all components from the configuration.
// Components within a section are returned in sorted name order; nil
// configurations (e.g. "otlp:" with no body) are normalized to empty
// maps. The service section, if present, is appended last.
func DetectComponents(cfg map[string]any) []explainconfig.Component {
	var components []explainconfig.Component

	for _, section := range componentSections {
		raw, ok := cfg[section.key]
		if !ok {
			continue
		}
		m, ok := toStringMap(raw)
		if !ok {
			continue
		}

		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			componentCfg, ok := toStringMap(m[name])
			if !ok {
				if m[name] != nil {
					continue
				}
				componentCfg = map[string]any{}
			}
			components = append(components, explainconfig.Component{
				Type:   section.typ,
				Name:   name,
				Config: componentCfg,
			})
		}
	}

	if raw, ok := cfg["service"]; ok {
		if m, ok := toStringMap(raw); ok {
			components = append(components, explainconfig.Component{
				Type:   explainconfig.TypeService,
				Name:   "service",
				Config: m,
			})
		}
	}

	return components
}

// FormatSnippet renders a minimal configuration snippet containing just
// the given component, suitable for inclusion in an explanation prompt.
func FormatSnippet(c explainconfig.Component) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var snippet map[string]any
	if c.Type == explainconfig.TypeService {
		snippet = map[string]any{"service": c.Config}
	} else {
		snippet = map[string]any{
			string(c.Type) + "s": map[string]any{c.Name: c.Config},
		}
	}

	out, err := yaml.Marshal(snippet)
	if err != nil {
		return "", explainconfig.Errorf(explainconfig.EINTERNAL, "marshal component snippet: %v", err)
	}
	return string(out), nil
}

// toStringMap converts a decoded YAML value to a string-keyed map.
// yaml.v3 decodes mappings as map[string]any already, but nested keys may
// decode as any when non-string keys appear.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	default:
		return nil, false
	}
}
