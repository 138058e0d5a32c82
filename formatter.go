package explainconfig

import "strings"

// FormatConsole formats explanations for console output. Explanations are
// separated by blank lines.
func FormatConsole(explanations []string) string {
	if len(explanations) == 0 {
		return "No components found to explain."
	}
	return strings.Join(explanations, "\n\n")
}

// FormatMarkdown formats explanations as a standalone markdown document.
func FormatMarkdown(explanations []string, title string) string {
	if title == "" {
		title = "EDOT Configuration Explanation"
	}
	if len(explanations) == 0 {
		return "# " + title + "\n\nNo components found to explain."
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("This document explains the components found in the EDOT Collector configuration.\n\n")
	b.WriteString("---\n\n")
	b.WriteString(strings.Join(explanations, "\n\n---\n\n"))
	return b.String()
}
