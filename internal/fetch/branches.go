package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alea-institute/soli-go/internal/config"
)

// ListBranches returns the branch names of the ontology's GitHub
// repository, which double as published ontology versions.
func (l *Loader) ListBranches(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/branches",
		config.DefaultGitHubAPIURL, l.cfg.RepoOwner, l.cfg.RepoName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing branches for %s/%s: %w", l.cfg.RepoOwner, l.cfg.RepoName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing branches for %s/%s: status %d",
			l.cfg.RepoOwner, l.cfg.RepoName, resp.StatusCode)
	}

	var branches []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&branches); err != nil {
		return nil, fmt.Errorf("decoding branches response: %w", err)
	}

	names := make([]string, 0, len(branches))
	for _, branch := range branches {
		names = append(names, branch.Name)
	}
	return names, nil
}
