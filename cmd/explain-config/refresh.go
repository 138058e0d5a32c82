package main

import (
	"fmt"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	var firstErr error

	for _, source := range []struct {
		label   string
		fetcher explainconfig.DocsFetcher
	}{
		{"Bulk archive", deps.Archive},
		{"Component docs", deps.Components},
	} {
		updated, err := source.fetcher.Fetch(deps.Ctx, c.Force)
		switch {
		case err != nil:
			fmt.Fprintf(deps.Stderr, "error: %s refresh failed: %s\n", source.label, explainconfig.ErrorMessage(err))
			if explainconfig.ErrorCode(err) == explainconfig.EUNAVAILABLE {
				fmt.Fprintln(deps.Stderr, "Hint: check your network connection and retry")
			}
			if firstErr == nil {
				firstErr = err
			}
		case updated:
			fmt.Fprintf(deps.Stdout, "%s: updated\n", source.label)
		default:
			fmt.Fprintf(deps.Stdout, "%s: up to date\n", source.label)
		}
	}

	return firstErr
}
