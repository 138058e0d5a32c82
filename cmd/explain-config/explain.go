package main

import (
	"fmt"
	"io"
	"os"

	explainconfig "github.com/alexandra5000/explain-config"
	"github.com/alexandra5000/explain-config/yaml"
)

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	content, err := c.readInput(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", explainconfig.ErrorMessage(err))
		return err
	}

	cfg, err := yaml.Parse(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", explainconfig.ErrorMessage(err))
		return err
	}
	if !yaml.LooksLikeCollectorConfig(cfg) {
		fmt.Fprintln(deps.Stderr, "warning: no collector sections found; this may not be a collector configuration")
	}

	components := yaml.DetectComponents(cfg)
	if len(components) == 0 {
		fmt.Fprintln(deps.Stdout, explainconfig.FormatConsole(nil))
		return nil
	}

	useDocs := !c.NoDocs && deps.Context != nil
	if useDocs && !c.Offline {
		c.refreshDocs(deps)
	}

	fmt.Fprintf(deps.Stderr, "Found %d component(s) to explain...\n", len(components))

	explanations := make([]string, 0, len(components))
	for i, component := range components {
		fmt.Fprintf(deps.Stderr, "Explaining %s %q (%d/%d)...\n", component.Type, component.Name, i+1, len(components))
		explanations = append(explanations, c.explainOne(deps, component, useDocs))
	}

	fmt.Fprintln(deps.Stdout, explainconfig.FormatConsole(explanations))

	if c.MdOut != "" {
		doc := explainconfig.FormatMarkdown(explanations, "")
		if err := os.WriteFile(c.MdOut, []byte(doc), 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to write %s: %s\n", c.MdOut, err)
			return explainconfig.Errorf(explainconfig.EINTERNAL, "write markdown output: %v", err)
		}
		fmt.Fprintf(deps.Stderr, "Explanation written to %s\n", c.MdOut)
	}

	return nil
}

// readInput reads the configuration from the file argument, or stdin
// when no file was given.
func (c *ExplainCmd) readInput(stdin io.Reader) (string, error) {
	if c.File == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", explainconfig.Errorf(explainconfig.EINVALID, "read stdin: %v", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", explainconfig.Errorf(explainconfig.EINVALID, "read %s: %v", c.File, err)
	}
	return string(data), nil
}

// refreshDocs brings both documentation caches up to date. Fetch
// failures degrade to whatever is already cached; explanation proceeds
// either way.
func (c *ExplainCmd) refreshDocs(deps *Dependencies) {
	for _, source := range []struct {
		name    string
		fetcher explainconfig.DocsFetcher
	}{
		{"archive", deps.Archive},
		{"component", deps.Components},
	} {
		if source.fetcher == nil {
			continue
		}
		if _, err := source.fetcher.Fetch(deps.Ctx, false); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s docs refresh failed, using cached copies: %s\n",
				source.name, explainconfig.ErrorMessage(err))
		}
	}
}

// explainOne produces the explanation section for a single component.
// Failures render as an error section so the rest of the batch still
// completes.
func (c *ExplainCmd) explainOne(deps *Dependencies, component explainconfig.Component, useDocs bool) string {
	snippet, err := yaml.FormatSnippet(component)
	if err != nil {
		return errorSection(component, err)
	}

	var docContext string
	if useDocs {
		docContext, err = deps.Context.ComponentContext(deps.Ctx, explainconfig.ComponentQuery{
			Type:   component.Type,
			Name:   component.Name,
			Fields: component.ConfigFields(),
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: documentation lookup failed for %s: %s\n",
				component.Name, explainconfig.ErrorMessage(err))
			docContext = ""
		}
	}

	explanation, err := deps.Explainer.ExplainComponent(deps.Ctx, component, snippet, docContext)
	if err != nil {
		return errorSection(component, err)
	}
	return explanation
}

func errorSection(component explainconfig.Component, err error) string {
	return fmt.Sprintf("### %s\n\nError generating explanation: %s",
		component.DisplayName(), explainconfig.ErrorMessage(err))
}
