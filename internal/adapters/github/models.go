package github

// Label is a GitHub issue label
type Label struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// User is a partial GitHub user document with the fields we use
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	HTMLURL   string `json:"html_url"`
	Blog      string `json:"blog"`
	Bio       string `json:"bio"`
}

// Issue is a partial GitHub issue document with the fields we use
type Issue struct {
	ID            int64   `json:"id"`
	Number        int     `json:"number"`
	Title         string  `json:"title"`
	HTMLURL       string  `json:"html_url"`
	Labels        []Label `json:"labels"`
	RepositoryURL string  `json:"repository_url"`
	CreatedAt     string  `json:"created_at"`
	Comments      int     `json:"comments"`
	State         string  `json:"state"`
	Assignee      any     `json:"assignee"`
	User          User    `json:"user"`
	Body          string  `json:"body"`
}

// SearchResult is the issue search response envelope
type SearchResult struct {
	TotalCount        int     `json:"total_count"`
	IncompleteResults bool    `json:"incomplete_results"`
	Items             []Issue `json:"items"`
}

// Repo is a partial GitHub repository document with the fields we use
type Repo struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stargazers  int    `json:"stargazers_count"`
	OpenIssues  int    `json:"open_issues_count"`
	HTMLURL     string `json:"html_url"`
}

// RepoSearchResult is the repository search response envelope
type RepoSearchResult struct {
	TotalCount int    `json:"total_count"`
	Items      []Repo `json:"items"`
}
