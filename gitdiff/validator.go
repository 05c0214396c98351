// Package gitdiff validates patch text using bluekeyes/go-gitdiff.
package gitdiff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.PatchValidator = (*Validator)(nil)

// Validator checks serialized patch text with a real unified-diff parser
// before it is handed to git apply. Catching a malformed patch here gives
// a clearer error than git's exit status.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate parses the patch and confirms it contains at least one file
// with at least one fragment.
func (v *Validator) Validate(patch string) error {
	files, _, err := gitdiff.Parse(strings.NewReader(patch))
	if err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("invalid patch: no file changes found")
	}
	for _, f := range files {
		if f.IsBinary {
			continue
		}
		if len(f.TextFragments) == 0 {
			return fmt.Errorf("invalid patch: %s has no hunks", f.NewName)
		}
	}
	return nil
}
