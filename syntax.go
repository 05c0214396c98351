package commitgen

// Token represents a syntax-highlighted segment of code.
type Token struct {
	Text  string
	Style Style
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // hex color code or empty for default
	Bold       bool
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// Tokenize splits source code into syntax-highlighted tokens for the
	// given language. Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LexerDetector maps a file path to the lexer name its highlighter expects.
// This is display metadata only; the coarse language tag on DiffHunk comes
// from DetectLanguage and is a fixed closed set.
type LexerDetector interface {
	DetectFromPath(path string) string
}
