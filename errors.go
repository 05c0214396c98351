package commitgen

import (
	"fmt"
	"time"
)

// DiffReason identifies why diff parsing or serialization failed.
type DiffReason string

// Diff failure reasons.
const (
	ReasonMalformedHeader    DiffReason = "malformed_header"
	ReasonMissingHunkHeader  DiffReason = "missing_hunk_header"
	ReasonEmptyContent       DiffReason = "empty_content"
	ReasonEmptyFilePath      DiffReason = "empty_file_path"
	ReasonNegativeLineNumber DiffReason = "negative_line_number"
	ReasonNoActualChanges    DiffReason = "no_actual_changes"
)

// DiffError describes a single diff parsing or serialization failure.
type DiffError struct {
	Reason DiffReason
	Path   string // file path when known
	Detail string // optional extra context
}

// Error implements the error interface.
func (e *DiffError) Error() string {
	switch e.Reason {
	case ReasonMalformedHeader:
		return fmt.Sprintf("diff: malformed file header: %s", e.Detail)
	case ReasonMissingHunkHeader:
		if e.Path != "" {
			return fmt.Sprintf("diff: no hunk header found for %q", e.Path)
		}
		return "diff: no hunk header found"
	case ReasonEmptyContent:
		return fmt.Sprintf("diff: hunk for %q has no content", e.Path)
	case ReasonEmptyFilePath:
		return "diff: hunk has no file path"
	case ReasonNegativeLineNumber:
		return fmt.Sprintf("diff: hunk for %q has a negative start line", e.Path)
	case ReasonNoActualChanges:
		return fmt.Sprintf("diff: hunk for %q contains no added or deleted lines", e.Path)
	default:
		return fmt.Sprintf("diff: %s: %s", e.Reason, e.Detail)
	}
}

// APIError is an error from a hosted AI or forge HTTP API. It preserves the
// response context so callers can inspect it programmatically; no retries
// are attempted anywhere in this module.
type APIError struct {
	Provider   string        // "gemini", "openai", "github", "gitlab"
	Operation  string        // e.g. "generate_content", "create_repository"
	StatusCode int           // HTTP status, 0 when the request never completed
	RetryAfter time.Duration // parsed Retry-After header, 0 when absent
	Body       string        // raw response body, possibly truncated
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s failed (HTTP %d): %s", e.Provider, e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s failed: %s", e.Provider, e.Operation, e.Message)
}
