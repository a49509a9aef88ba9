package entities

// Records produced by the scraping/parsing layer. The generation pipeline
// consumes these as already-parsed inputs and never mutates them.

// RepoMeta is the headline metadata of a repository.
type RepoMeta struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	PrimaryLanguage string `json:"primary_language,omitempty"`
	Stars           int    `json:"stars"`
	Forks           int    `json:"forks"`
	Watchers        int    `json:"watchers"`
	LastUpdate      string `json:"last_update,omitempty"`
}

// TreeEntry is one file or directory in the repository tree. FileType is the
// lowercase extension without the dot, empty when there is none.
type TreeEntry struct {
	Path     string `json:"path"`
	IsDir    bool   `json:"is_dir"`
	FileType string `json:"file_type,omitempty"`
	Size     int    `json:"size,omitempty"`
}

// IssueData is one issue as scraped from the issue list.
type IssueData struct {
	IssueNumber  int      `json:"issue_number"`
	Title        string   `json:"title"`
	Labels       []string `json:"labels,omitempty"`
	CommentCount int      `json:"comment_count"`
	IsOpen       bool     `json:"is_open"`
	CreatedAt    string   `json:"created_at,omitempty"`
	Author       string   `json:"author,omitempty"`
}

// PullRequestData is one pull request. Additions/Deletions are 0 when the
// diff size could not be determined.
type PullRequestData struct {
	PRNumber     int    `json:"pr_number"`
	Title        string `json:"title"`
	CommentCount int    `json:"comment_count"`
	IsOpen       bool   `json:"is_open"`
	IsMerged     bool   `json:"is_merged"`
	Additions    int    `json:"additions"`
	Deletions    int    `json:"deletions"`
}

// CommitData is one commit from the recent history page.
type CommitData struct {
	ShortHash string `json:"short_hash"`
	Author    string `json:"author,omitempty"`
	Message   string `json:"message,omitempty"`
	Date      string `json:"date,omitempty"`
	DiffSize  string `json:"diff_size,omitempty"`
}
