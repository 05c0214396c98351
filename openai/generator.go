package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Generator = (*Generator)(nil)

// ChatClient abstracts the chat-completions API for testing.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req ChatCompletionsRequest) (*ChatCompletionsResponse, error)
}

// Generator implements commitgen.Generator using the OpenAI API.
type Generator struct {
	client    ChatClient
	model     string
	formatter commitgen.PromptFormatter
}

// NewGenerator creates a new Generator.
func NewGenerator(client ChatClient, model string) *Generator {
	return &Generator{
		client:    client,
		model:     model,
		formatter: &commitgen.DefaultFormatter{},
	}
}

const systemPrompt = `You write git commit messages in the Conventional Commits format.

Given a set of diff hunks, summarize the change as one commit. Use the
imperative mood, keep the description under 72 characters, and add a body
only when the diff needs explanation beyond the description.

Valid types: feat, fix, docs, style, refactor, perf, test, build, ci, chore, revert.

Respond with a JSON object:
{"type": "...", "scope": "...", "breaking": false, "description": "...", "body": "..."}`

// messageResponse mirrors the JSON object the model is instructed to emit.
type messageResponse struct {
	Type        string `json:"type"`
	Scope       string `json:"scope"`
	Breaking    bool   `json:"breaking"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// Generate drafts a Conventional Commits message for the request's hunks.
func (g *Generator) Generate(ctx context.Context, req commitgen.GenerateRequest) (*commitgen.CommitMessage, error) {
	if len(req.Hunks) == 0 {
		return nil, fmt.Errorf("openai: no hunks to describe")
	}

	temp := float32(0.2)
	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionsRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: g.formatter.Format(req)},
		},
		Temperature:    &temp,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: response contains no choices")
	}

	var parsed messageResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("openai: failed to parse response: %w", err)
	}

	typ := commitgen.CommitType(parsed.Type)
	if !typ.Valid() {
		return nil, fmt.Errorf("openai: model returned unknown commit type %q", parsed.Type)
	}
	if parsed.Description == "" {
		return nil, fmt.Errorf("openai: model returned an empty description")
	}

	return &commitgen.CommitMessage{
		Type:        typ,
		Scope:       parsed.Scope,
		Breaking:    parsed.Breaking,
		Description: parsed.Description,
		Body:        parsed.Body,
	}, nil
}
