// Package eval provides opt-in LLM-as-judge helpers for checking the
// quality of generated commit messages.
package eval

import (
	"os"
	"testing"

	"github.com/fwojciec/commitgen"
)

// Eval provides assertion helpers for LLM-based test evaluation.
type Eval struct {
	judge commitgen.RubricJudge
}

// New creates a new Eval with the given judge.
func New(judge commitgen.RubricJudge) *Eval {
	return &Eval{judge: judge}
}

// AssertRubric evaluates whether the output satisfies the given criterion.
// If the criterion is not satisfied, the test is marked as failed.
func (e *Eval) AssertRubric(tb testing.TB, criterion, output string) {
	tb.Helper()

	result, err := e.judge.Judge(tb.Context(), criterion, output)
	if err != nil {
		tb.Errorf("rubric evaluation failed: %v", err)
		return
	}

	if !result.Passed {
		tb.Errorf("rubric criterion not satisfied: %q\nReasoning: %s", criterion, result.Reasoning)
	}
}

// baselineCriteria are the rubric criteria every generated commit message
// must satisfy regardless of what the change under test was.
var baselineCriteria = []string{
	"The subject line follows the Conventional Commits form type(scope): description or type: description",
	"The subject line uses the imperative mood and describes the change, not the act of committing",
}

// AssertCommitMessage evaluates a rendered commit message against the
// baseline Conventional Commits criteria plus any change-specific extras.
func (e *Eval) AssertCommitMessage(tb testing.TB, message string, extra ...string) {
	tb.Helper()

	for _, criterion := range baselineCriteria {
		e.AssertRubric(tb, criterion, message)
	}
	for _, criterion := range extra {
		e.AssertRubric(tb, criterion, message)
	}
}

// SkipUnlessEvals skips the test unless GOEVALS environment variable is set.
// Use at the start of eval tests to make them opt-in.
func SkipUnlessEvals(tb testing.TB) {
	tb.Helper()
	if os.Getenv("GOEVALS") == "" {
		tb.Skip("GOEVALS not set")
	}
}
