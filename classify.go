package commitgen

import (
	"path/filepath"
	"regexp"
	"strings"
)

// languageByExt is the closed set of recognized extensions. Matching is
// case-sensitive and purely extension-based; there is no content sniffing.
var languageByExt = map[string]string{
	"php":   "php",
	"js":    "javascript",
	"ts":    "javascript",
	"py":    "python",
	"java":  "java",
	"go":    "go",
	"rb":    "ruby",
	"rs":    "rust",
	"cpp":   "c++",
	"c":     "c++",
	"h":     "c++",
	"swift": "swift",
	"kt":    "kotlin",
	"kts":   "kotlin",
}

// DetectLanguage maps a file extension to a coarse language tag.
// Unrecognized or missing extensions map to "text".
func DetectLanguage(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}
	return "text"
}

// complexityMarkers and structuralRe together define which added lines count
// as complex. The rule set is a cheap proxy, not a real complexity metric,
// and downstream prompt templates are tuned to it; changing it changes the
// score distribution.
var complexityMarkers = []string{"if", "for", "while", "=>", "return"}

var structuralRe = regexp.MustCompile(`[{}();]`)

// Complexity scores hunk content in [0, 1] by the fraction of added lines
// that contain a structural marker. Content with no added lines scores 0.
func Complexity(content string) float64 {
	var added, complex int
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "+") {
			continue
		}
		added++
		trimmed := strings.TrimSpace(strings.TrimPrefix(line, "+"))
		if isComplexLine(trimmed) {
			complex++
		}
	}
	if added == 0 {
		return 0.0
	}
	score := float64(complex) / float64(added)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func isComplexLine(line string) bool {
	for _, marker := range complexityMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return structuralRe.MatchString(line)
}
