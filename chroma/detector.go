package chroma

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.LexerDetector = (*Detector)(nil)

// Detector resolves lexer names from file paths using chroma. This is for
// display only; commit classification uses commitgen.DetectLanguage.
type Detector struct{}

// NewDetector creates a new chroma-based lexer detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the lexer name for the given path,
// or an empty string if no lexer matches.
// Strips "a/" or "b/" prefixes common in diff output.
func (d *Detector) DetectFromPath(path string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}

	return lexer.Config().Name
}
