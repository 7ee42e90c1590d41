package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/skillforge/skillforge/config"
	"github.com/skillforge/skillforge/internal/apperror"
)

const githubAPIBase = "https://api.github.com"

// ProfileFetcher retrieves a candidate's public external profile by handle.
// Failures surface as FetchError.
type ProfileFetcher interface {
	Fetch(ctx context.Context, handle string) (map[string]any, error)
}

type githubProfileFetcher struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewGithubProfileFetcher(cfg *config.Config) ProfileFetcher {
	return &githubProfileFetcher{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    githubAPIBase,
		token:      cfg.GithubToken,
	}
}

func (f *githubProfileFetcher) Fetch(ctx context.Context, handle string) (map[string]any, error) {
	if handle == "" {
		return nil, apperror.NewFetch(fmt.Errorf("github handle is empty"))
	}

	var user map[string]any
	if err := f.getJSON(ctx, fmt.Sprintf("%s/users/%s", f.baseURL, handle), &user); err != nil {
		return nil, err
	}

	// Repo listing failures are tolerated; the user payload alone is enough
	// for analysis.
	var repos []map[string]any
	if err := f.getJSON(ctx, fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=10", f.baseURL, handle), &repos); err == nil {
		summaries := make([]map[string]any, 0, len(repos))
		for _, repo := range repos {
			summaries = append(summaries, map[string]any{
				"name":        repo["name"],
				"language":    repo["language"],
				"description": repo["description"],
				"stars":       repo["stargazers_count"],
			})
		}
		user["recent_repos"] = summaries
	}

	return user, nil
}

func (f *githubProfileFetcher) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperror.NewFetch(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return apperror.NewFetch(fmt.Errorf("github request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperror.NewFetch(fmt.Errorf("github returned status %d for %s", resp.StatusCode, url))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewFetch(fmt.Errorf("failed to decode github response: %w", err))
	}
	return nil
}
