package commitgen

import (
	"fmt"
	"strings"
)

// ApplicablePatch renders the hunk as a minimal standalone patch suitable
// for an index-only application (`git apply --cached`-style). Line endings
// are normalized to \n, the hunk header always carries explicit line
// counts, and the body ends with exactly one trailing newline.
//
// A hunk whose body has no added or deleted lines cannot be meaningfully
// staged and fails with a NoActualChanges error.
func (h DiffHunk) ApplicablePatch() (string, error) {
	content := strings.ReplaceAll(h.Content, "\r", "")
	if !hasChanges(content) {
		return "", &DiffError{Reason: ReasonNoActualChanges, Path: h.FilePath}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", h.FilePath)
	fmt.Fprintf(&sb, "+++ b/%s\n", h.FilePath)
	fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
	sb.WriteString(strings.TrimRight(content, "\n"))
	sb.WriteString("\n")
	return sb.String(), nil
}

// FullDiff reconstructs the hunk as originally seen, including the
// `diff --git` file header and the original hunk header.
func (h DiffHunk) FullDiff() string {
	return fmt.Sprintf("diff --git a/%s b/%s\n%s\n%s", h.OldPath, h.FilePath, h.Header, h.Content)
}

// AddedLines returns the added lines of the hunk with the leading + marker
// stripped, newline-joined. File-header lines (+++) never belong in a hunk
// body and are excluded.
func (h DiffHunk) AddedLines() string {
	var added []string
	for _, line := range strings.Split(h.Content, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			added = append(added, strings.TrimPrefix(line, "+"))
		}
	}
	return strings.Join(added, "\n")
}

// hasChanges reports whether the body contains at least one change line.
// Only the +++ file-header form is excluded; a deletion line may legitimately
// start with --- when the deleted line itself began with two dashes.
func hasChanges(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			return true
		}
		if strings.HasPrefix(line, "-") {
			return true
		}
	}
	return false
}
