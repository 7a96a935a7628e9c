// Package generator is the boundary to the hosted language model. It
// turns authoring input into a structured blog content object and back;
// everything deterministic happens downstream in assembler and analyzer.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

// Client handles all AI operations
type Client struct {
	anthropic *anthropic.Client
	model     anthropic.Model
}

// GenerateRequest carries everything the model needs to write one post.
type GenerateRequest struct {
	Keywords           string              `json:"keywords"`
	UserIntent         string              `json:"userIntent"`
	Framework          string              `json:"framework,omitempty"`
	ExtraInstructions  string              `json:"extraInstructions,omitempty"`
	Products           []blog.ProductEntry `json:"products,omitempty"`
	ProductDetails     []string            `json:"productDetails,omitempty"`
	ImageContexts      []string            `json:"imageContexts,omitempty"`
	HeaderImageContext string              `json:"headerImageContext,omitempty"`
}

// KeywordSuggestion is one long-tail keyword proposal.
type KeywordSuggestion struct {
	Keyword     string `json:"keyword"`
	Volume      string `json:"volume"`
	Competition string `json:"competition"`
	Rationale   string `json:"rationale"`
}

// NewClient creates a new AI client with the provided API key
func NewClient(apiKey string) *Client {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Client{
		anthropic: &client,
		model:     anthropic.ModelClaude3_7Sonnet20250219,
	}
}

// GenerateBlog writes a complete structured blog post for the request.
func (c *Client) GenerateBlog(ctx context.Context, req *GenerateRequest) (*blog.Content, error) {
	text, err := c.complete(ctx, buildGeneratePrompt(req), 8192)
	if err != nil {
		return nil, err
	}
	return parseContent(text)
}

// ModifyBlog applies an instruction to an existing post. The result
// replaces the previous content object wholesale; callers must pass the
// latest accepted object, never a stale one.
func (c *Client) ModifyBlog(ctx context.Context, current *blog.Content, instruction string) (*blog.Content, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize current blog: %w", err)
	}

	text, err := c.complete(ctx, buildModifyPrompt(string(currentJSON), instruction), 8192)
	if err != nil {
		return nil, err
	}
	return parseContent(text)
}

// DescribeImage asks the model for a short description of an uploaded
// image, used as context when writing sections around it.
func (c *Client) DescribeImage(ctx context.Context, base64Data, mimeType string) (string, error) {
	message, err := c.anthropic.Messages.New(ctx, anthropic.MessageNewParams{
		MaxTokens: 1024,
		Model:     c.model,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mimeType, base64Data),
				anthropic.NewTextBlock(imageDescriptionPrompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(message.Content) > 0 {
		return message.Content[0].Text, nil
	}
	return "", fmt.Errorf("unexpected response format from Anthropic")
}

// KeywordSuggestions proposes new long-tail keywords around a topic,
// excluding ones already in use.
func (c *Client) KeywordSuggestions(ctx context.Context, currentTopic string) ([]KeywordSuggestion, error) {
	text, err := c.complete(ctx, buildKeywordSuggestionPrompt(currentTopic), 2048)
	if err != nil {
		return nil, err
	}

	var suggestions []KeywordSuggestion
	if err := json.Unmarshal([]byte(cleanJSON(text)), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse keyword suggestions: %w", err)
	}
	return suggestions, nil
}

// IntentSuggestions proposes user questions worth answering for the
// given keywords.
func (c *Client) IntentSuggestions(ctx context.Context, keywords string) ([]string, error) {
	text, err := c.complete(ctx, buildIntentSuggestionPrompt(keywords), 1024)
	if err != nil {
		return nil, err
	}

	var intents []string
	if err := json.Unmarshal([]byte(cleanJSON(text)), &intents); err != nil {
		return nil, fmt.Errorf("failed to parse intent suggestions: %w", err)
	}
	return intents, nil
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	message, err := c.anthropic.Messages.New(ctx, anthropic.MessageNewParams{
		MaxTokens: maxTokens,
		Model:     c.model,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(message.Content) > 0 {
		return message.Content[0].Text, nil
	}
	return "", fmt.Errorf("unexpected response format from Anthropic")
}

var jsonFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*|\\s*```$")

// cleanJSON strips markdown code fences the model sometimes wraps
// around its JSON output.
func cleanJSON(text string) string {
	if text == "" {
		return "{}"
	}
	return strings.TrimSpace(jsonFenceRe.ReplaceAllString(strings.TrimSpace(text), ""))
}

func parseContent(text string) (*blog.Content, error) {
	var content blog.Content
	if err := json.Unmarshal([]byte(cleanJSON(text)), &content); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	content.Normalize()
	return &content, nil
}
