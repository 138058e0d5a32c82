package explainconfig

import (
	"context"
	"strings"
)

// Explainer generates a natural language explanation for one component.
// A single backend exists today (the local model server); the interface
// seam is kept for future backends.
type Explainer interface {
	// ExplainComponent explains the component given its YAML snippet and
	// optional documentation context (may be empty).
	ExplainComponent(ctx context.Context, component Component, snippet, docContext string) (string, error)
}

// SystemPrompt is the system instruction sent with every explanation
// request.
const SystemPrompt = "You are a technical writer specializing in OpenTelemetry and Elastic Stack documentation. Provide clear, accurate, and concise explanations."

// BuildPrompt builds the user prompt for a component explanation. The
// documentation context section is included only when non-empty.
func BuildPrompt(component Component, snippet, docContext string) string {
	displayName := component.DisplayName()

	var b strings.Builder
	b.WriteString("You are a technical writer at Elastic.\n\n")
	b.WriteString("Given a YAML configuration snippet from the Elastic Distribution of OpenTelemetry (EDOT) Collector, explain clearly what each part of the configuration does.\n\n")
	b.WriteString("Guidelines:\n")
	b.WriteString("- Give accurate, non-hallucinated explanations.\n")
	b.WriteString("- Keep explanations simple, concise, and technically correct.\n")
	b.WriteString("- Focus on what the user needs to understand: what this config enables, what each field changes, defaults, and gotchas.\n")
	b.WriteString("- If something is ambiguous, explicitly say \"Not enough context to determine.\"\n\n")
	b.WriteString("Output format:\n")
	b.WriteString("- Short title (as a markdown heading: ### " + displayName + ")\n")
	b.WriteString("- Bullet list of explanations (each field/configuration option explained)\n")
	b.WriteString("- Optional \"Why it matters\" section (if relevant) formatted as a heading: #### Why it matters\n\n")
	if docContext != "" {
		b.WriteString("Relevant documentation:\n")
		b.WriteString(docContext)
		b.WriteString("\n\n")
	}
	b.WriteString("Configuration snippet:\n```yaml\n")
	b.WriteString(strings.TrimRight(snippet, "\n"))
	b.WriteString("\n```\n\n")
	b.WriteString("Provide the explanation now:")
	return b.String()
}
