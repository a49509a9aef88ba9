// Package github is the boundary to the repository hosting service. It
// fetches and parses repository pages into the structured records the
// generation pipeline consumes. Fetching is deliberately thin: no retries,
// no backoff, one request per resource.
package github

//go:generate mockgen -destination=mock/mock_client.go -package=githubmock github.com/repoquest/repoquest/internal/clients/github Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.github.com"

// List limits match what the world builder consumes.
const (
	maxIssues       = 20
	maxPullRequests = 10
	maxCommits      = 30
)

// Client defines the interface for fetching repository data. Implementations
// return zero values (empty string, empty slices) for data that is missing
// rather than erroring; errors mean the repository itself was unreachable.
type Client interface {
	// GetRepoMeta fetches the repository's headline metadata
	GetRepoMeta(ctx context.Context, owner, repo string) (*entities.RepoMeta, error)

	// GetReadme fetches the raw README text, "" when the repo has none
	GetReadme(ctx context.Context, owner, repo string) (string, error)

	// GetTree fetches the full recursive file tree
	GetTree(ctx context.Context, owner, repo string) ([]entities.TreeEntry, error)

	// ListIssues fetches up to 20 recent issues, pull requests excluded
	ListIssues(ctx context.Context, owner, repo string) ([]entities.IssueData, error)

	// ListPullRequests fetches up to 10 recent pull requests with diff stats
	ListPullRequests(ctx context.Context, owner, repo string) ([]entities.PullRequestData, error)

	// ListCommits fetches the recent commit history
	ListCommits(ctx context.Context, owner, repo string) ([]entities.CommitData, error)
}

// Config holds the dependencies for the HTTP client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string

	// Token enables authenticated requests and the higher rate limit.
	// Anonymous access works fine for small repositories.
	Token string
}

// Validate fills defaults; only a malformed base URL is fatal.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", c.BaseURL, err)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.UserAgent == "" {
		c.UserAgent = "repoquest"
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	token      string
}

// New creates an HTTP-backed Client.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		userAgent:  cfg.UserAgent,
		token:      cfg.Token,
	}, nil
}

// get performs one API request. A nil result with nil error means 404.
func (c *client) get(ctx context.Context, path, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("request failed for %s", path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("unexpected status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response for %s", path)
	}
	return body, nil
}

func (c *client) GetRepoMeta(ctx context.Context, owner, repo string) (*entities.RepoMeta, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), "")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.NotFoundf("repository %s/%s not found", owner, repo)
	}

	var raw struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Language    string `json:"language"`
		Stars       int    `json:"stargazers_count"`
		Forks       int    `json:"forks_count"`
		Watchers    int    `json:"subscribers_count"`
		UpdatedAt   string `json:"updated_at"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrapf(err, "failed to parse repo metadata for %s/%s", owner, repo)
	}

	return &entities.RepoMeta{
		Name:            raw.Name,
		Description:     raw.Description,
		PrimaryLanguage: raw.Language,
		Stars:           raw.Stars,
		Forks:           raw.Forks,
		Watchers:        raw.Watchers,
		LastUpdate:      raw.UpdatedAt,
	}, nil
}

func (c *client) GetReadme(ctx context.Context, owner, repo string) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/readme", owner, repo),
		"application/vnd.github.raw+json")
	if err != nil {
		return "", err
	}
	// No README is a valid degenerate input, not an error.
	return string(body), nil
}

func (c *client) GetTree(ctx context.Context, owner, repo string) ([]entities.TreeEntry, error) {
	body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/git/trees/HEAD?recursive=1", owner, repo), "")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var raw struct {
		Tree []struct {
			Path string `json:"path"`
			Type string `json:"type"`
			Size int    `json:"size"`
		} `json:"tree"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		// Malformed payloads degrade to an empty tree.
		return nil, nil
	}

	entries := make([]entities.TreeEntry, 0, len(raw.Tree))
	for _, node := range raw.Tree {
		entries = append(entries, entities.TreeEntry{
			Path:     node.Path,
			IsDir:    node.Type == "tree",
			FileType: fileExtension(node.Path),
			Size:     node.Size,
		})
	}
	return entries, nil
}

func (c *client) ListIssues(ctx context.Context, owner, repo string) ([]entities.IssueData, error) {
	body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/issues?state=all&per_page=%d", owner, repo, maxIssues), "")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var raw []struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		State  string `json:"state"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
		Comments  int    `json:"comments"`
		CreatedAt string `json:"created_at"`
		User      struct {
			Login string `json:"login"`
		} `json:"user"`
		PullRequest json.RawMessage `json:"pull_request,omitempty"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil
	}

	issues := make([]entities.IssueData, 0, len(raw))
	for _, node := range raw {
		// The issues endpoint interleaves pull requests; skip them.
		if node.PullRequest != nil {
			continue
		}
		labels := make([]string, 0, len(node.Labels))
		for _, l := range node.Labels {
			labels = append(labels, l.Name)
		}
		issues = append(issues, entities.IssueData{
			IssueNumber:  node.Number,
			Title:        node.Title,
			Labels:       labels,
			CommentCount: node.Comments,
			IsOpen:       node.State == "open",
			CreatedAt:    node.CreatedAt,
			Author:       node.User.Login,
		})
	}
	return issues, nil
}

func (c *client) ListPullRequests(ctx context.Context, owner, repo string) ([]entities.PullRequestData, error) {
	body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/pulls?state=all&per_page=%d", owner, repo, maxPullRequests), "")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var raw []struct {
		Number   int    `json:"number"`
		Title    string `json:"title"`
		State    string `json:"state"`
		MergedAt string `json:"merged_at"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil
	}

	pulls := make([]entities.PullRequestData, 0, len(raw))
	for _, node := range raw {
		pr := entities.PullRequestData{
			PRNumber: node.Number,
			Title:    node.Title,
			IsOpen:   node.State == "open",
			IsMerged: node.MergedAt != "",
		}

		// The list payload has no comment or diff counts; fetch the detail
		// view per PR. Failures leave the counts unknown (zero).
		detail, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, node.Number), "")
		if err == nil && detail != nil {
			var d struct {
				Comments  int `json:"comments"`
				Additions int `json:"additions"`
				Deletions int `json:"deletions"`
			}
			if err := json.Unmarshal(detail, &d); err == nil {
				pr.CommentCount = d.Comments
				pr.Additions = d.Additions
				pr.Deletions = d.Deletions
			}
		}

		pulls = append(pulls, pr)
	}
	return pulls, nil
}

func (c *client) ListCommits(ctx context.Context, owner, repo string) ([]entities.CommitData, error) {
	body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/commits?per_page=%d", owner, repo, maxCommits), "")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var raw []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Name string `json:"name"`
				Date string `json:"date"`
			} `json:"author"`
		} `json:"commit"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil
	}

	commits := make([]entities.CommitData, 0, len(raw))
	for _, node := range raw {
		hash := node.SHA
		if len(hash) > 7 {
			hash = hash[:7]
		}
		commits = append(commits, entities.CommitData{
			ShortHash: hash,
			Author:    node.Commit.Author.Name,
			Message:   node.Commit.Message,
			Date:      node.Commit.Author.Date,
		})
	}
	return commits, nil
}

// fileExtension returns the lowercase extension without the dot, or "".
func fileExtension(path string) string {
	base := path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	idx := strings.LastIndex(base, ".")
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}
