// Package gemini provides a StoryWriter implementation using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ersonp/story-core/internal/infrastructure/config"
)

// generator is the subset of *genai.GenerativeModel the client uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client implements the StoryWriter interface using the Gemini API.
type Client struct {
	client *genai.Client
	model  generator
}

// NewClient creates a new Gemini story writer.
func NewClient(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	name := config.DefaultGeminiModel
	if cfg.Model != "" {
		name = cfg.Model
	}

	model := client.GenerativeModel(name)
	if cfg.Temperature > 0 {
		model.SetTemperature(cfg.Temperature)
	}

	return &Client{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Write sends prompt to the model and returns the generated story text.
func (c *Client) Write(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", blockedError(blocked.PromptFeedback, blocked.Candidate)
		}
		return "", fmt.Errorf("calling Gemini: %w", err)
	}

	return responseText(resp)
}

// responseText extracts the generated text or explains why there is none.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("generation failed: received an empty or unexpected response from the API")
	}

	if text := extractText(resp); text != "" {
		return text, nil
	}

	var candidate *genai.Candidate
	if len(resp.Candidates) > 0 {
		candidate = resp.Candidates[0]
	}
	return "", blockedError(resp.PromptFeedback, candidate)
}

// blockedError describes a response without text.
func blockedError(feedback *genai.PromptFeedback, candidate *genai.Candidate) error {
	if feedback != nil && feedback.BlockReason != genai.BlockReasonUnspecified {
		return fmt.Errorf("generation blocked due to: %s", feedback.BlockReason)
	}
	if candidate != nil && candidate.FinishReason != genai.FinishReasonStop {
		return fmt.Errorf("generation stopped unexpectedly. Reason: %s", candidate.FinishReason)
	}
	return errors.New("generation failed: received an empty or unexpected response from the API")
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
