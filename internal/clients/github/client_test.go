package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/repoquest/repoquest/internal/clients/github"
	"github.com/repoquest/repoquest/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite

	mux    *http.ServeMux
	server *httptest.Server
	client github.Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)

	client, err := github.New(&github.Config{
		BaseURL:    s.server.URL,
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)

	s.client = client
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestGetRepoMeta() {
	s.mux.HandleFunc("/repos/octocat/hello", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"name": "hello",
			"description": "A greeting service",
			"language": "Go",
			"stargazers_count": 450,
			"forks_count": 120,
			"subscribers_count": 31,
			"updated_at": "2024-03-01T12:00:00Z"
		}`)
	})

	meta, err := s.client.GetRepoMeta(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Require().NotNil(meta)

	s.Equal("hello", meta.Name)
	s.Equal("A greeting service", meta.Description)
	s.Equal("Go", meta.PrimaryLanguage)
	s.Equal(450, meta.Stars)
	s.Equal(120, meta.Forks)
	s.Equal(31, meta.Watchers)
	s.Equal("2024-03-01T12:00:00Z", meta.LastUpdate)
}

func (s *ClientTestSuite) TestGetRepoMetaNotFound() {
	_, err := s.client.GetRepoMeta(s.ctx, "nobody", "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetRepoMetaServerError() {
	s.mux.HandleFunc("/repos/octocat/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.client.GetRepoMeta(s.ctx, "octocat", "broken")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestGetReadme() {
	s.mux.HandleFunc("/repos/octocat/hello/readme", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/vnd.github.raw+json", r.Header.Get("Accept"))
		fmt.Fprint(w, "# Hello\n\nA web framework for backend services.")
	})

	text, err := s.client.GetReadme(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Contains(text, "# Hello")
}

func (s *ClientTestSuite) TestGetReadmeMissing() {
	text, err := s.client.GetReadme(s.ctx, "octocat", "bare")
	s.Require().NoError(err)
	s.Empty(text)
}

func (s *ClientTestSuite) TestGetTree() {
	s.mux.HandleFunc("/repos/octocat/hello/git/trees/HEAD", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("1", r.URL.Query().Get("recursive"))
		fmt.Fprint(w, `{
			"tree": [
				{"path": "src", "type": "tree"},
				{"path": "src/main.py", "type": "blob", "size": 1024},
				{"path": "README.md", "type": "blob", "size": 300},
				{"path": "Makefile", "type": "blob", "size": 80}
			]
		}`)
	})

	tree, err := s.client.GetTree(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Require().Len(tree, 4)

	s.True(tree[0].IsDir)
	s.Equal("", tree[0].FileType)

	s.False(tree[1].IsDir)
	s.Equal("py", tree[1].FileType)
	s.Equal(1024, tree[1].Size)

	s.Equal("md", tree[2].FileType)
	s.Equal("", tree[3].FileType)
}

func (s *ClientTestSuite) TestGetTreeMalformedDegradesToEmpty() {
	s.mux.HandleFunc("/repos/octocat/junk/git/trees/HEAD", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	})

	tree, err := s.client.GetTree(s.ctx, "octocat", "junk")
	s.Require().NoError(err)
	s.Empty(tree)
}

func (s *ClientTestSuite) TestListIssuesSkipsPullRequests() {
	s.mux.HandleFunc("/repos/octocat/hello/issues", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{
				"number": 12,
				"title": "Crash on empty input",
				"state": "open",
				"labels": [{"name": "bug"}, {"name": "help wanted"}],
				"comments": 4,
				"created_at": "2024-02-01T00:00:00Z",
				"user": {"login": "alice"}
			},
			{
				"number": 13,
				"title": "Add dark mode",
				"state": "open",
				"comments": 0,
				"user": {"login": "bob"},
				"pull_request": {"url": "https://example.test/pulls/13"}
			},
			{
				"number": 10,
				"title": "Improve docs",
				"state": "closed",
				"labels": [{"name": "enhancement"}],
				"comments": 1,
				"created_at": "2024-01-15T00:00:00Z",
				"user": {"login": "carol"}
			}
		]`)
	})

	issues, err := s.client.ListIssues(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Require().Len(issues, 2)

	s.Equal(12, issues[0].IssueNumber)
	s.Equal("Crash on empty input", issues[0].Title)
	s.Equal([]string{"bug", "help wanted"}, issues[0].Labels)
	s.Equal(4, issues[0].CommentCount)
	s.True(issues[0].IsOpen)
	s.Equal("alice", issues[0].Author)

	s.Equal(10, issues[1].IssueNumber)
	s.False(issues[1].IsOpen)
}

func (s *ClientTestSuite) TestListPullRequests() {
	s.mux.HandleFunc("/repos/octocat/hello/pulls", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"number": 17, "title": "Rewrite storage", "state": "open", "merged_at": null},
			{"number": 15, "title": "Fix typo", "state": "closed", "merged_at": "2024-01-20T00:00:00Z"}
		]`)
	})
	s.mux.HandleFunc("/repos/octocat/hello/pulls/17", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"comments": 6, "additions": 600, "deletions": 600}`)
	})
	s.mux.HandleFunc("/repos/octocat/hello/pulls/15", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"comments": 0, "additions": 1, "deletions": 1}`)
	})

	pulls, err := s.client.ListPullRequests(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Require().Len(pulls, 2)

	s.Equal(17, pulls[0].PRNumber)
	s.True(pulls[0].IsOpen)
	s.False(pulls[0].IsMerged)
	s.Equal(6, pulls[0].CommentCount)
	s.Equal(600, pulls[0].Additions)
	s.Equal(600, pulls[0].Deletions)

	s.Equal(15, pulls[1].PRNumber)
	s.False(pulls[1].IsOpen)
	s.True(pulls[1].IsMerged)
}

func (s *ClientTestSuite) TestListPullRequestsDetailFailureLeavesZeroCounts() {
	s.mux.HandleFunc("/repos/octocat/hello/pulls", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"number": 9, "title": "Orphan", "state": "open", "merged_at": null}]`)
	})

	pulls, err := s.client.ListPullRequests(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Require().Len(pulls, 1)
	s.Zero(pulls[0].CommentCount)
	s.Zero(pulls[0].Additions)
	s.Zero(pulls[0].Deletions)
}

func (s *ClientTestSuite) TestListCommits() {
	s.mux.HandleFunc("/repos/octocat/hello/commits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{
				"sha": "abcdef1234567890",
				"commit": {
					"message": "Initial commit",
					"author": {"name": "alice", "date": "2024-01-01T00:00:00Z"}
				}
			}
		]`)
	})

	commits, err := s.client.ListCommits(s.ctx, "octocat", "hello")
	s.Require().NoError(err)
	s.Require().Len(commits, 1)

	s.Equal("abcdef1", commits[0].ShortHash)
	s.Equal("alice", commits[0].Author)
	s.Equal("Initial commit", commits[0].Message)
}

func (s *ClientTestSuite) TestListCommitsNotFound() {
	commits, err := s.client.ListCommits(s.ctx, "nobody", "missing")
	s.Require().NoError(err)
	s.Empty(commits)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestConfigValidate(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var cfg *github.Config
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for nil config")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := &github.Config{}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != github.DefaultBaseURL {
			t.Fatalf("base URL not defaulted, got %q", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Fatal("http client not defaulted")
		}
	})
}
