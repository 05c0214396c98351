package commitgen

// DiffHunk is one parsed hunk of a unified diff together with derived
// metadata. Values are constructed by NewDiffHunk (or the parser) and never
// mutated afterwards, so they are safe to share across goroutines.
type DiffHunk struct {
	FilePath   string  // current path of the modified file, never empty
	OldPath    string  // path before the change, equals FilePath unless renamed
	OldStart   int     // starting line in the pre-image, 0 for new files
	OldLines   int     // line count in the pre-image
	NewStart   int     // starting line in the post-image, 0 for deleted files
	NewLines   int     // line count in the post-image
	Header     string  // literal @@ header line as seen in the input
	Content    string  // newline-joined body lines, never empty
	Language   string  // coarse tag derived from the file extension
	Complexity float64 // heuristic score over added lines, in [0, 1]
}

// NewDiffHunk validates the hunk invariants and derives language and
// complexity. OldPath defaults to filePath when empty.
func NewDiffHunk(filePath, oldPath string, oldStart, oldLines, newStart, newLines int, header, content string) (DiffHunk, error) {
	if filePath == "" {
		return DiffHunk{}, &DiffError{Reason: ReasonEmptyFilePath}
	}
	if oldStart < 0 || newStart < 0 {
		return DiffHunk{}, &DiffError{Reason: ReasonNegativeLineNumber, Path: filePath}
	}
	if content == "" {
		return DiffHunk{}, &DiffError{Reason: ReasonEmptyContent, Path: filePath}
	}
	if oldPath == "" {
		oldPath = filePath
	}
	return DiffHunk{
		FilePath:   filePath,
		OldPath:    oldPath,
		OldStart:   oldStart,
		OldLines:   oldLines,
		NewStart:   newStart,
		NewLines:   newLines,
		Header:     header,
		Content:    content,
		Language:   DetectLanguage(filePath),
		Complexity: Complexity(content),
	}, nil
}

// IsRename reports whether the file was renamed by this change.
func (h DiffHunk) IsRename() bool {
	return h.OldPath != h.FilePath
}

// IsNewFile reports whether the file did not exist before the change.
func (h DiffHunk) IsNewFile() bool {
	return h.OldStart == 0 && h.OldLines == 0
}

// IsDeletedFile reports whether the file does not exist after the change.
func (h DiffHunk) IsDeletedFile() bool {
	return h.NewStart == 0 && h.NewLines == 0
}
