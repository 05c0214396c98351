package mock

import (
	"context"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Generator = (*Generator)(nil)

// Generator is a mock implementation of commitgen.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req commitgen.GenerateRequest) (*commitgen.CommitMessage, error)
}

func (g *Generator) Generate(ctx context.Context, req commitgen.GenerateRequest) (*commitgen.CommitMessage, error) {
	return g.GenerateFn(ctx, req)
}

// Compile-time interface verification.
var _ commitgen.RubricJudge = (*RubricJudge)(nil)

// RubricJudge is a mock implementation of commitgen.RubricJudge.
type RubricJudge struct {
	JudgeFn func(ctx context.Context, criterion, output string) (*commitgen.RubricResult, error)
}

func (j *RubricJudge) Judge(ctx context.Context, criterion, output string) (*commitgen.RubricResult, error) {
	return j.JudgeFn(ctx, criterion, output)
}
