// Package claude implements suggest.Suggester on the Anthropic Messages
// API.
package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"listcal/internal/suggest"
)

type Suggester struct {
	client *anthropic.Client
	model  string
}

func New(apiKey, model string) *Suggester {
	return &Suggester{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (s *Suggester) Suggest(ctx context.Context, listName string, have []string) ([]suggest.Suggestion, error) {
	resp, err := s.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(s.model),
		// A line per suggestion; 512 tokens is generous for 8 short lines.
		MaxTokens: 512,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(suggest.BuildPrompt(listName, have)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	return suggest.ParseResponse(resp.GetFirstContentText()), nil
}
