package explainconfig

import (
	"context"
	"regexp"
	"strings"
)

// Corpus is the set of documentation files currently materialized on disk.
// Implementations re-scan the filesystem on every call; unreadable files
// are skipped, and missing directories yield empty results rather than
// errors.
type Corpus interface {
	// ReferenceDocs returns every reference document across both sources.
	ReferenceDocs(ctx context.Context) ([]Doc, error)

	// ConfigDocs returns the configuration-reference subset, scanned for
	// fenced configuration examples.
	ConfigDocs(ctx context.Context) ([]Doc, error)

	// TroubleshootingDocs returns the troubleshooting subset.
	TroubleshootingDocs(ctx context.Context) ([]Doc, error)

	// GeneralReference returns the top-level collector reference document,
	// or nil if it does not exist.
	GeneralReference(ctx context.Context) (*Doc, error)
}

// ContextProvider retrieves documentation context for a component.
type ContextProvider interface {
	// ComponentContext returns a bounded context string for the query,
	// possibly empty. An absent corpus yields an empty string, not an
	// error.
	ComponentContext(ctx context.Context, q ComponentQuery) (string, error)
}

// Assembly limits.
const (
	maxContextBlocks     = 3
	maxFieldExamples     = 2
	fieldExampleChars    = 1000
	troubleshootingChars = 1500
)

var yamlFenceRe = regexp.MustCompile("(?s)```yaml\n(.*?)\n```")

// Ensure ContextBuilder implements ContextProvider at compile time.
var _ ContextProvider = (*ContextBuilder)(nil)

// ContextBuilder assembles a size-capped context string from ranked
// corpus matches, field examples, and troubleshooting lookups. The output
// never exceeds three blocks; exact-name evidence always wins a slot over
// generic fallback.
type ContextBuilder struct {
	Corpus Corpus
}

// NewContextBuilder creates a ContextBuilder over the given corpus.
func NewContextBuilder(corpus Corpus) *ContextBuilder {
	return &ContextBuilder{Corpus: corpus}
}

// ComponentContext assembles documentation context for the query.
func (b *ContextBuilder) ComponentContext(ctx context.Context, q ComponentQuery) (string, error) {
	docs, err := b.Corpus.ReferenceDocs(ctx)
	if err != nil {
		return "", err
	}

	var blocks []string
	for _, c := range MatchDocuments(docs, q) {
		if len(blocks) >= maxContextBlocks {
			break
		}
		if c.Tier == TierTypeMention {
			continue
		}
		blocks = append(blocks, formatBlock("From: "+c.Doc.Name, c.Text))
	}

	if len(blocks) < maxContextBlocks && len(q.Fields) > 0 {
		if examples := b.fieldExamples(ctx, q); examples != "" {
			blocks = append(blocks, formatBlock("Field-specific context:", examples))
		}
	}

	if len(blocks) < maxContextBlocks {
		if ts := b.troubleshooting(ctx, q); ts != "" {
			blocks = append(blocks, formatBlock("Troubleshooting:", ts))
		}
	}

	if len(blocks) == 0 {
		general, err := b.Corpus.GeneralReference(ctx)
		if err == nil && general != nil {
			blocks = append(blocks, formatBlock("From: "+general.Name, truncate(general.Content, fallbackTextChars)))
		}
	}

	if len(blocks) > maxContextBlocks {
		blocks = blocks[:maxContextBlocks]
	}
	return strings.Join(blocks, "\n\n"), nil
}

// fieldExamples scans configuration-reference documents for fenced YAML
// snippets that mention the component. At most two examples are returned,
// each capped in size.
func (b *ContextBuilder) fieldExamples(ctx context.Context, q ComponentQuery) string {
	docs, err := b.Corpus.ConfigDocs(ctx)
	if err != nil {
		return ""
	}

	nameLower := strings.ToLower(q.Name)
	var examples []string
	for _, doc := range docs {
		if len(examples) >= maxFieldExamples {
			break
		}
		if !strings.Contains(strings.ToLower(doc.Content), nameLower) {
			continue
		}
		for _, m := range yamlFenceRe.FindAllStringSubmatch(doc.Content, maxFieldExamples) {
			if strings.Contains(strings.ToLower(m[1]), nameLower) {
				examples = append(examples, "Example configuration:\n"+truncate(m[1], fieldExampleChars))
				break
			}
		}
	}
	return strings.Join(examples, "\n\n")
}

// troubleshooting finds a troubleshooting document whose filename contains
// the component name, falling back to the generic troubleshooting document
// only if it mentions the component.
func (b *ContextBuilder) troubleshooting(ctx context.Context, q ComponentQuery) string {
	docs, err := b.Corpus.TroubleshootingDocs(ctx)
	if err != nil {
		return ""
	}

	nameLower := strings.ToLower(q.Name)
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Name), nameLower) {
			return "From: " + doc.Name + "\n" + truncate(doc.Content, troubleshootingChars)
		}
	}

	for _, doc := range docs {
		if doc.Name == GenericTroubleshootingDoc && strings.Contains(strings.ToLower(doc.Content), nameLower) {
			return "From: " + doc.Name + "\n" + truncate(doc.Content, troubleshootingChars)
		}
	}
	return ""
}

// GenericTroubleshootingDoc is the file name of the catch-all
// troubleshooting document within the troubleshooting subset.
const GenericTroubleshootingDoc = "opentelemetry.md"

func formatBlock(label, text string) string {
	return "---\n" + label + "\n" + text + "\n---"
}
