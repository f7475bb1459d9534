package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/ai"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/ai/prompt"
)

const maxTokens = 2048

// Client is one live tier, bound to a single model id.
type Client struct {
	*openai.Client
	model string
}

func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domai.ErrMissingCredential
	}
	return &Client{Client: openai.NewClient(apiKey), model: model}, nil
}

func (c *Client) Model() string { return c.model }

func (c *Client) Analyze(ctx context.Context, pageURL, hostname string) (domai.Response, error) {
	model := c.model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(pageURL, hostname)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return domai.Response{}, fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
		}
		return domai.Response{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domai.Response{}, fmt.Errorf("empty completion response")
	}

	msg := resp.Choices[0].Message
	return domai.Response{Text: msg.Content, Citations: citationsFrom(msg)}, nil
}

// citationsFrom pulls URL citations out of annotation metadata, capped at the
// result's source limit.
func citationsFrom(msg openai.ChatCompletionMessage) []string {
	var out []string
	for _, a := range msg.Annotations {
		if a.URLCitation == nil || a.URLCitation.URL == "" {
			continue
		}
		out = append(out, a.URLCitation.URL)
		if len(out) == analysis.MaxSources {
			break
		}
	}
	return out
}
