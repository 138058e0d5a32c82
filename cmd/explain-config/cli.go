package main

import (
	"context"
	"io"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Archive    explainconfig.DocsFetcher
	Components explainconfig.DocsFetcher
	Context    explainconfig.ContextProvider
	Explainer  explainconfig.Explainer
	Status     explainconfig.StatusReporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Explain ExplainCmd `cmd:"" help:"Explain an EDOT Collector configuration"`
	Refresh RefreshCmd `cmd:"" help:"Refresh the cached documentation"`
	Status  StatusCmd  `cmd:"" help:"Show documentation cache status"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	File      string `arg:"" optional:"" help:"Collector configuration file (reads stdin when omitted)"`
	MdOut     string `name:"md-out" help:"Write the explanation to a markdown file"`
	Model     string `help:"Model used for explanations"`
	OllamaURL string `name:"ollama-url" help:"Base URL of the local model server"`
	NoDocs    bool   `name:"no-docs" help:"Explain without documentation context"`
	Offline   bool   `help:"Use cached documentation without refreshing"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Force bool `short:"f" help:"Refetch even when the caches are fresh"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
