package explainconfig

import (
	"sort"
	"strings"
)

// ComponentType identifies the section of a collector configuration a
// component belongs to.
type ComponentType string

// Component type constants. The first four are the harvestable categories
// in the upstream collector repository; TypeService only appears in
// detection output and never drives documentation retrieval.
const (
	TypeReceiver  ComponentType = "receiver"
	TypeProcessor ComponentType = "processor"
	TypeExporter  ComponentType = "exporter"
	TypeExtension ComponentType = "extension"
	TypeService   ComponentType = "service"
)

// ComponentTypes returns the component categories that have per-component
// reference documentation upstream, in harvest order.
func ComponentTypes() []ComponentType {
	return []ComponentType{TypeReceiver, TypeProcessor, TypeExporter, TypeExtension}
}

// Component represents a single component found in a collector
// configuration.
type Component struct {
	Type   ComponentType  `json:"type"`
	Name   string         `json:"name"`
	Config map[string]any `json:"config"`
}

// Validate returns an error if the component contains invalid fields.
func (c *Component) Validate() error {
	if c.Type == "" {
		return Errorf(EINVALID, "component type required")
	}
	if c.Name == "" {
		return Errorf(EINVALID, "component name required")
	}
	return nil
}

// acronyms are component names rendered in upper case rather than
// title case in display names.
var acronyms = map[string]bool{
	"OTLP": true,
	"HTTP": true,
	"GRPC": true,
	"JSON": true,
	"YAML": true,
	"TLS":  true,
	"SSL":  true,
}

// DisplayName returns a human-readable name for the component, e.g.
// "OTLP receiver" or "Tail Sampling processor".
func (c Component) DisplayName() string {
	upper := strings.ToUpper(c.Name)
	if acronyms[upper] {
		return upper + " " + string(c.Type)
	}

	parts := strings.Split(c.Name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ") + " " + string(c.Type)
}

// ConfigFields returns the top-level field names of the component
// configuration in sorted order.
func (c Component) ConfigFields() []string {
	if len(c.Config) == 0 {
		return nil
	}
	fields := make([]string, 0, len(c.Config))
	for k := range c.Config {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
