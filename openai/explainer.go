// Package openai implements the explanation backend against an
// OpenAI-compatible chat completion endpoint. The default target is a
// local Ollama server, which exposes the same API under /v1.
package openai

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Defaults for the local Ollama endpoint.
const (
	DefaultBaseURL = "http://localhost:11434/v1"
	DefaultModel   = "llama3.2"

	// PingTimeout bounds the liveness probe.
	PingTimeout = 5 * time.Second

	// GenerateTimeout bounds a single explanation request. Local models
	// can be slow on first load.
	GenerateTimeout = 120 * time.Second

	temperature = 0.3
	maxTokens   = 1000
)

// Ensure Explainer implements explainconfig.Explainer at compile time.
var _ explainconfig.Explainer = (*Explainer)(nil)

// Explainer generates component explanations via chat completions.
type Explainer struct {
	client *openai.Client
	model  string
}

// ExplainerOption configures an Explainer.
type ExplainerOption func(*Explainer)

// WithModel overrides the default model.
func WithModel(model string) ExplainerOption {
	return func(e *Explainer) {
		if model != "" {
			e.model = model
		}
	}
}

// NewExplainer creates an Explainer talking to the given base URL. An
// empty baseURL selects the local Ollama default. No API key is
// required for Ollama; a placeholder is sent to satisfy the client.
func NewExplainer(baseURL string, opts ...ExplainerOption) *Explainer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	config := openai.DefaultConfig("ollama")
	config.BaseURL = baseURL

	e := &Explainer{
		client: openai.NewClientWithConfig(config),
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the model explanations are generated with.
func (e *Explainer) Model() string {
	return e.model
}

// Ping checks that the model server is reachable.
func (e *Explainer) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	if _, err := e.client.ListModels(ctx); err != nil {
		return explainconfig.Errorf(explainconfig.EUNAVAILABLE, "model server unreachable: %v", err)
	}
	return nil
}

// ExplainComponent implements explainconfig.Explainer.
func (e *Explainer) ExplainComponent(ctx context.Context, component explainconfig.Component, snippet, docContext string) (string, error) {
	if component.Name == "" {
		return "", explainconfig.Errorf(explainconfig.EINVALID, "component name required")
	}

	ctx, cancel := context.WithTimeout(ctx, GenerateTimeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: explainconfig.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: explainconfig.BuildPrompt(component, snippet, docContext)},
		},
	})
	if err != nil {
		return "", explainconfig.Errorf(explainconfig.EUNAVAILABLE, "explanation request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", explainconfig.Errorf(explainconfig.EINTERNAL, "model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
