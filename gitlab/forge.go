// Package gitlab implements remote repository creation via the GitLab REST API.
package gitlab

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

// DefaultBaseURL is the hosted GitLab API endpoint.
const DefaultBaseURL = "https://gitlab.com"

const maxErrorBody = 2048

// Forge creates projects for the authenticated user.
type Forge struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewForge creates a new Forge. An empty baseURL selects gitlab.com.
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

type createProjectBody struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
}

type projectResponse struct {
	Name       string `json:"name"`
	HTTPURL    string `json:"http_url_to_repo"`
	WebURL     string `json:"web_url"`
	Visibility string `json:"visibility"`
}

// CreateRepository creates a project via POST /api/v4/projects.
func (f *Forge) CreateRepository(ctx context.Context, req commitgen.CreateRepoRequest) (*commitgen.Repository, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("gitlab: project name is required")
	}

	visibility := "public"
	if req.Private {
		visibility = "private"
	}
	body, err := json.Marshal(createProjectBody{
		Name:        req.Name,
		Description: req.Description,
		Visibility:  visibility,
	})
	if err != nil {
		return nil, fmt.Errorf("gitlab: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/api/v4/projects", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gitlab: new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("PRIVATE-TOKEN", f.token)

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, &commitgen.APIError{
			Provider:  string(commitgen.ForgeGitLab),
			Operation: "create_repository",
			Message:   err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gitlab: read response body: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		trimmed := string(respBody)
		if len(trimmed) > maxErrorBody {
			trimmed = trimmed[:maxErrorBody]
		}
		return nil, &commitgen.APIError{
			Provider:   string(commitgen.ForgeGitLab),
			Operation:  "create_repository",
			StatusCode: resp.StatusCode,
			Body:       trimmed,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	var parsed projectResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("gitlab: decode response: %w", err)
	}

	return &commitgen.Repository{
		Name:     parsed.Name,
		CloneURL: parsed.HTTPURL,
		HTMLURL:  parsed.WebURL,
		Private:  parsed.Visibility == "private",
	}, nil
}
