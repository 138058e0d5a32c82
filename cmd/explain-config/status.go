package main

import (
	"fmt"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	status, err := deps.Status.Status(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", explainconfig.ErrorMessage(err))
		return err
	}

	printSource(deps, "Bulk archive", status.Archive)
	printSource(deps, "Component docs", status.Components)
	return nil
}

func printSource(deps *Dependencies, label string, s explainconfig.SourceStatus) {
	fmt.Fprintf(deps.Stdout, "%s:\n", label)
	fmt.Fprintf(deps.Stdout, "  cached: %t\n", s.Cached)
	fmt.Fprintf(deps.Stdout, "  stale:  %t\n", s.Stale)
	if s.LastUpdated.IsZero() {
		fmt.Fprintf(deps.Stdout, "  last updated: never\n")
	} else {
		fmt.Fprintf(deps.Stdout, "  last updated: %s\n", s.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(deps.Stdout, "  dir:    %s\n", s.Dir)
	if s.Files > 0 {
		fmt.Fprintf(deps.Stdout, "  files:  %d\n", s.Files)
	}
}
