package commitgen

import (
	"fmt"
	"strings"
)

// PromptFormatter renders a generation request as structured text for LLM
// prompts. Providers share one formatter so prompt tuning happens in one
// place.
type PromptFormatter interface {
	Format(req GenerateRequest) string
}

// DefaultFormatter implements PromptFormatter with the standard format.
type DefaultFormatter struct {
	// MaxContentLines truncates each hunk body in the prompt. 0 means no limit.
	MaxContentLines int
}

// Format renders the request as structured text.
func (f *DefaultFormatter) Format(req GenerateRequest) string {
	var sb strings.Builder

	sb.WriteString("<context>\n")
	fmt.Fprintf(&sb, "Changed files: %d hunks\n", len(req.Hunks))
	if req.Context != "" {
		fmt.Fprintf(&sb, "Additional context: %s\n", req.Context)
	}
	sb.WriteString("</context>\n\n")

	for i, h := range req.Hunks {
		fmt.Fprintf(&sb, "<hunk index=\"%d\">\n", i)
		fmt.Fprintf(&sb, "File: %s\n", h.FilePath)
		switch {
		case h.IsNewFile():
			sb.WriteString("Change: new file\n")
		case h.IsDeletedFile():
			sb.WriteString("Change: file deleted\n")
		case h.IsRename():
			fmt.Fprintf(&sb, "Change: renamed from %s\n", h.OldPath)
		}
		fmt.Fprintf(&sb, "Language: %s\n", h.Language)
		fmt.Fprintf(&sb, "Complexity: %.2f\n", h.Complexity)
		sb.WriteString("Diff:\n")
		sb.WriteString(f.truncate(h.Content))
		sb.WriteString("\n</hunk>\n\n")
	}

	return sb.String()
}

func (f *DefaultFormatter) truncate(content string) string {
	if f.MaxContentLines <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= f.MaxContentLines {
		return content
	}
	omitted := len(lines) - f.MaxContentLines
	lines = lines[:f.MaxContentLines]
	return strings.Join(lines, "\n") + fmt.Sprintf("\n... (%d lines omitted)", omitted)
}
