// Package pipeline wires the prompt builder, the generation provider and
// the response interpreter into a single stateless generation step.
package pipeline

import (
	"github.com/hauran/git-ai/internal/config"
	"github.com/hauran/git-ai/internal/message"
	"github.com/hauran/git-ai/internal/prompt"
	"github.com/hauran/git-ai/internal/provider"
)

// Generator runs one generation attempt at a time. It holds no state
// between attempts and performs no retries.
type Generator struct {
	Provider provider.Provider
	Config   *config.Config
}

func New(p provider.Provider, cfg *config.Config) *Generator {
	return &Generator{Provider: p, Config: cfg}
}

// Generate builds the prompt for ctx, runs the provider call and parses
// the response into a structured commit message. Provider failures come
// back wrapped as provider.ErrRequestFailed; a response that reduces to
// nothing yields message.ErrEmptyResponse.
func (g *Generator) Generate(ctx prompt.Context) (*message.CommitMessage, error) {
	system, user := prompt.Build(ctx, g.Config.MaxDiffSize)

	raw, err := g.Provider.Complete(provider.Request{
		System:      system,
		User:        user,
		Model:       g.Config.Model,
		MaxTokens:   g.Config.MaxTokens,
		Temperature: g.Config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return message.Parse(raw, ctx.Style)
}
