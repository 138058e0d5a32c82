package explainconfig

import (
	"sort"
	"strings"
)

// ComponentQuery asks for documentation context for one component.
type ComponentQuery struct {
	Type ComponentType
	Name string

	// Fields are the top-level configuration field names, used for
	// field-example retrieval. Optional.
	Fields []string
}

// MatchTier is the priority class of a matched document. Lower values are
// more relevant.
type MatchTier int

// Match tiers, in priority order.
const (
	// TierExactName means the component name appears in the document's
	// file name.
	TierExactName MatchTier = iota

	// TierContentMention means the component name appears in the
	// document body.
	TierContentMention

	// TierTypeMention means the body merely mentions the component type
	// generically. Consulted only as a last resort.
	TierTypeMention
)

// Doc is a documentation file loaded from the corpus.
type Doc struct {
	// Name is the base file name, e.g. "otlpreceiver.md".
	Name string

	// Path is the full path of the file within the corpus.
	Path string

	// Content is the file body.
	Content string
}

// MatchCandidate is one ranked document with its extracted text.
type MatchCandidate struct {
	Doc  Doc
	Tier MatchTier
	Text string
}

// Matching and extraction limits.
const (
	maxExactDocs      = 2
	maxContentDocs    = 2
	exactPrefixChars  = 3000
	windowLeadLines   = 3
	windowMaxLines    = 50
	windowMaxChars    = 2000
	windowHeadingGap  = 10
	windowMinChars    = 100
	fallbackTextChars = 2000
)

// MatchDocuments ranks docs against the query into priority tiers and
// extracts bounded text for each candidate. Documents are considered in
// lexicographic path order so equal-tier results are deterministic across
// platforms. Exact-name matches contribute a fixed-size content prefix;
// content mentions contribute a relevant window around the first mention,
// falling back to a content prefix when the window is not substantial.
func MatchDocuments(docs []Doc, q ComponentQuery) []MatchCandidate {
	sorted := make([]Doc, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	nameLower := strings.ToLower(q.Name)
	typeLower := strings.ToLower(string(q.Type))

	var exact, content, typed []Doc
	for _, doc := range sorted {
		if strings.Contains(strings.ToLower(doc.Name), nameLower) || strings.Contains(doc.Name, q.Name) {
			exact = append(exact, doc)
			continue
		}

		bodyLower := strings.ToLower(doc.Content)
		switch {
		// Exact-case substring is checked in addition to the lowercased
		// check to cover acronyms where case matters (e.g. "OTLP").
		case strings.Contains(bodyLower, nameLower) || strings.Contains(doc.Content, q.Name):
			content = append(content, doc)
		case strings.Contains(bodyLower, typeLower):
			typed = append(typed, doc)
		}
	}

	var candidates []MatchCandidate
	for _, doc := range limitDocs(exact, maxExactDocs) {
		candidates = append(candidates, MatchCandidate{
			Doc:  doc,
			Tier: TierExactName,
			Text: truncate(doc.Content, exactPrefixChars),
		})
	}
	for _, doc := range limitDocs(content, maxContentDocs) {
		text := ExtractWindow(doc.Content, q.Name)
		if text == "" {
			text = truncate(doc.Content, fallbackTextChars)
		}
		candidates = append(candidates, MatchCandidate{
			Doc:  doc,
			Tier: TierContentMention,
			Text: text,
		})
	}
	for _, doc := range typed {
		candidates = append(candidates, MatchCandidate{
			Doc:  doc,
			Tier: TierTypeMention,
			Text: truncate(doc.Content, fallbackTextChars),
		})
	}

	return candidates
}

// ExtractWindow extracts a bounded window of lines around the first
// mention of name in content. The window opens a few lines before the
// mention and closes at a line/character budget or at the next heading
// once past a minimum capture. Returns "" when no mention is found or the
// window is not substantial, in which case callers should fall back to a
// content prefix.
func ExtractWindow(content, name string) string {
	lines := strings.Split(content, "\n")
	nameLower := strings.ToLower(name)

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), nameLower) || strings.Contains(line, name) {
			start = i - windowLeadLines
			if start < 0 {
				start = 0
			}
			break
		}
	}
	if start < 0 {
		return ""
	}

	var window []string
	size := 0
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, "#") && i > start+windowHeadingGap {
			break
		}
		window = append(window, line)
		size += len(line) + 1
		if len(window) >= windowMaxLines || size >= windowMaxChars {
			break
		}
	}

	result := strings.Join(window, "\n")
	if len(result) < windowMinChars {
		return ""
	}
	return result
}

func limitDocs(docs []Doc, n int) []Doc {
	if len(docs) > n {
		return docs[:n]
	}
	return docs
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
