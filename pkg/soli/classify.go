package soli

import (
	"context"

	"github.com/alea-institute/soli-go/internal/classify"
	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/graph"
)

// Classify matches text against one taxonomy branch using the configured
// LLM. Requires ANTHROPIC_API_KEY; returns classify.ErrNoAPIKey otherwise.
func (c *Client) Classify(ctx context.Context, text string, t SOLIType, limit int) ([]classify.Result, error) {
	env := config.GetEnv()
	if env.AnthropicKey == "" {
		return nil, classify.ErrNoAPIKey
	}

	candidates := c.GetByType(t, graph.DefaultMaxDepth)
	completer := classify.NewAnthropic(env.AnthropicKey, env.AnthropicBaseURL, env.Model, nil)
	return classify.New(completer, c.Snapshot()).Classify(ctx, text, candidates, limit)
}
