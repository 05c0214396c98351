package commitgen

import (
	"regexp"
	"strconv"
	"strings"
)

const fileHeaderMarker = "diff --git"

var (
	fileHeaderRe = regexp.MustCompile(`^diff --git a/(.+?) b/(.+)$`)
	hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)
)

// ParseHunk parses a single-file diff fragment into a DiffHunk.
//
// The first non-empty line is consumed as the file header. A header that is
// missing or does not match the `diff --git a/X b/Y` form leaves the paths
// empty; the DiffHunk constructor then rejects the hunk. Blank lines between
// the file header and the hunk header are tolerated, because some diff
// producers pad fragments with them. Everything after the hunk header line
// is hunk content, kept verbatim.
func ParseHunk(raw string) (DiffHunk, error) {
	lines := strings.Split(raw, "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}

	var oldPath, filePath string
	if i < len(lines) {
		if m := fileHeaderRe.FindStringSubmatch(lines[i]); m != nil {
			oldPath, filePath = m[1], m[2]
		}
		i++
	}

	for ; i < len(lines); i++ {
		m := hunkHeaderRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		oldStart, _ := strconv.Atoi(m[1])
		oldLines := 1
		if m[2] != "" {
			oldLines, _ = strconv.Atoi(m[2])
		}
		newStart, _ := strconv.Atoi(m[3])
		newLines := 1
		if m[4] != "" {
			newLines, _ = strconv.Atoi(m[4])
		}
		content := strings.Join(lines[i+1:], "\n")
		return NewDiffHunk(filePath, oldPath, oldStart, oldLines, newStart, newLines, lines[i], content)
	}

	return DiffHunk{}, &DiffError{Reason: ReasonMissingHunkHeader, Path: filePath}
}

// ParseHunks parses a multi-file diff into hunks, one per file fragment.
// Fragments that fail to parse are skipped so that one malformed fragment
// never fails the whole listing; use ParseHunksStrict when the caller wants
// failures surfaced. Order follows the input.
func ParseHunks(raw string) []DiffHunk {
	var hunks []DiffHunk
	for _, fragment := range splitFragments(raw) {
		h, err := ParseHunk(fragment)
		if err != nil {
			continue
		}
		hunks = append(hunks, h)
	}
	return hunks
}

// ParseHunksStrict is like ParseHunks but returns the first parse failure
// instead of skipping the offending fragment.
func ParseHunksStrict(raw string) ([]DiffHunk, error) {
	var hunks []DiffHunk
	for _, fragment := range splitFragments(raw) {
		h, err := ParseHunk(fragment)
		if err != nil {
			return nil, err
		}
		hunks = append(hunks, h)
	}
	return hunks, nil
}

// splitFragments splits a multi-file diff on the file-header boundary and
// re-prefixes the marker onto each fragment.
func splitFragments(raw string) []string {
	var fragments []string
	for _, part := range strings.Split(raw, fileHeaderMarker) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		fragments = append(fragments, fileHeaderMarker+part)
	}
	return fragments
}
