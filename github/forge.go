// Package github implements remote repository creation via the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Forge = (*Forge)(nil)

// DefaultBaseURL is the hosted GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

const maxErrorBody = 2048

// Forge creates repositories for the authenticated user.
type Forge struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewForge creates a new Forge. An empty baseURL selects the hosted API.
func NewForge(baseURL, token string, timeout time.Duration) *Forge {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Forge{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type createRepoBody struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
}

type repoResponse struct {
	Name     string `json:"name"`
	CloneURL string `json:"clone_url"`
	HTMLURL  string `json:"html_url"`
	Private  bool   `json:"private"`
}

// CreateRepository creates a repository via POST /user/repos.
func (f *Forge) CreateRepository(ctx context.Context, req commitgen.CreateRepoRequest) (*commitgen.Repository, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("github: repository name is required")
	}

	body, err := json.Marshal(createRepoBody{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
	})
	if err != nil {
		return nil, fmt.Errorf("github: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/user/repos", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("github: new request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("Authorization", "Bearer "+f.token)

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, &commitgen.APIError{
			Provider:  string(commitgen.ForgeGitHub),
			Operation: "create_repository",
			Message:   err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github: read response body: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		trimmed := string(respBody)
		if len(trimmed) > maxErrorBody {
			trimmed = trimmed[:maxErrorBody]
		}
		return nil, &commitgen.APIError{
			Provider:   string(commitgen.ForgeGitHub),
			Operation:  "create_repository",
			StatusCode: resp.StatusCode,
			Body:       trimmed,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	var parsed repoResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("github: decode response: %w", err)
	}

	return &commitgen.Repository{
		Name:     parsed.Name,
		CloneURL: parsed.CloneURL,
		HTMLURL:  parsed.HTMLURL,
		Private:  parsed.Private,
	}, nil
}
