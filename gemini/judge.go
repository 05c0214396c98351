package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.RubricJudge = (*Judge)(nil)

// Judge implements commitgen.RubricJudge using Google Gemini.
type Judge struct {
	client GenerativeClient
	model  string
}

// NewJudge creates a new Judge.
func NewJudge(client GenerativeClient, model string) *Judge {
	return &Judge{client: client, model: model}
}

// Judge evaluates whether the output satisfies the given criterion.
func (j *Judge) Judge(ctx context.Context, criterion, output string) (*commitgen.RubricResult, error) {
	prompt := fmt.Sprintf("Criterion: %s\n\nOutput to evaluate:\n%s", criterion, output)

	contents := []*Content{{
		Parts: []*Part{{Text: prompt}},
	}}

	temp := float32(0.0)
	config := &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: "You are an evaluation judge. Decide whether the output satisfies the criterion and explain your reasoning briefly.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"passed":    {Type: "boolean"},
				"reasoning": {Type: "string"},
			},
			Required:         []string{"passed", "reasoning"},
			PropertyOrdering: []string{"passed", "reasoning"},
		},
	}

	resp, err := j.client.GenerateContent(ctx, j.model, contents, config)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var parsed struct {
		Passed    bool   `json:"passed"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(resp.Text), &parsed); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse judge response: %w", err)
	}

	return &commitgen.RubricResult{Passed: parsed.Passed, Reasoning: parsed.Reasoning}, nil
}
