// Package gemini implements commit message generation using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Generator = (*Generator)(nil)

// Generator implements commitgen.Generator using Google Gemini.
type Generator struct {
	client    GenerativeClient
	model     string
	formatter commitgen.PromptFormatter
}

// NewGenerator creates a new Generator.
func NewGenerator(client GenerativeClient, model string) *Generator {
	return &Generator{
		client:    client,
		model:     model,
		formatter: &commitgen.DefaultFormatter{},
	}
}

// messageResponse mirrors the JSON schema the model is constrained to.
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
		return nil, fmt.Errorf("gemini: no hunks to describe")
	}

	contents := []*Content{{
		Parts: []*Part{{Text: g.formatter.Format(req)}},
	}}

	resp, err := g.client.GenerateContent(ctx, g.model, contents, BuildConfig())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var parsed messageResponse
	if err := json.Unmarshal([]byte(resp.Text), &parsed); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}

	typ := commitgen.CommitType(parsed.Type)
	if !typ.Valid() {
		return nil, fmt.Errorf("gemini: model returned unknown commit type %q", parsed.Type)
	}
	if parsed.Description == "" {
		return nil, fmt.Errorf("gemini: model returned an empty description")
	}

	return &commitgen.CommitMessage{
		Type:        typ,
		Scope:       parsed.Scope,
		Breaking:    parsed.Breaking,
		Description: parsed.Description,
		Body:        parsed.Body,
	}, nil
}

// BuildConfig returns the GenerateContentConfig for commit message calls.
func BuildConfig() *GenerateContentConfig {
	temp := float32(0.2)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: `You write git commit messages in the Conventional Commits format.

Given a set of diff hunks, summarize the change as one commit. Use the
imperative mood, keep the description under 72 characters, and add a body
only when the diff needs explanation beyond the description.

Valid types: feat, fix, docs, style, refactor, perf, test, build, ci, chore, revert.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"type": {
					Type: "string",
					Enum: []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert"},
				},
				"scope":       {Type: "string", Description: "Optional area of the codebase, e.g. parser"},
				"breaking":    {Type: "boolean"},
				"description": {Type: "string", Description: "Imperative summary, no trailing period"},
				"body":        {Type: "string", Description: "Optional longer explanation"},
			},
			Required:         []string{"type", "description"},
			PropertyOrdering: []string{"type", "scope", "breaking", "description", "body"},
		},
	}
}

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

// Content represents a message in a Gemini conversation.
type Content struct {
	Parts []*Part
}

// Part represents a part of a message.
type Part struct {
	Text string
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	SystemInstruction *Content
	Temperature       *float32
	ResponseMIMEType  string
	ResponseSchema    *Schema
}

// Schema represents the structure for controlled JSON generation.
type Schema struct {
	Type             string             // object, array, string, integer, number, boolean
	Properties       map[string]*Schema // For object types
	Items            *Schema            // For array types
	Enum             []string           // For string enums
	Required         []string           // Required property names
	PropertyOrdering []string           // Order of properties in output
	Description      string             // Field description
}

// GenerateContentResponse holds the response from content generation.
type GenerateContentResponse struct {
	Text string
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	return m.GenerateContentFn(ctx, model, contents, config)
}
