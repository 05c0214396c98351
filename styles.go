package commitgen

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format. Empty strings mean no
// override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the visual elements of the hunk picker.
type Styles struct {
	Added      ColorPair // added lines (+) in the preview
	Deleted    ColorPair // deleted lines (-) in the preview
	Context    ColorPair // unchanged lines in the preview
	HunkHeader ColorPair // @@ ... @@ lines
	FilePath   ColorPair // file paths in the hunk list
	Cursor     ColorPair // the row under the cursor
	Selected   ColorPair // the selection marker of picked hunks
	Help       ColorPair // key hints in the status line
}

// Palette holds semantic colors for syntax highlighting in the preview.
type Palette struct {
	Keyword     string
	String      string
	Number      string
	Comment     string
	Function    string
	Type        string
	Operator    string
	Punctuation string
}

// Theme provides styles and a syntax palette for rendering.
// Implementations provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
