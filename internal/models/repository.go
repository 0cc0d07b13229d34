package models

// RepositorySummary is the slice of GitHub repository metadata the projects
// section renders.
type RepositorySummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Homepage    *string  `json:"homepage"`
	Language    string   `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Topics      []string `json:"topics"`
	UpdatedAt   string   `json:"updated_at"`
}

// HasHomepage reports whether the repository links to a live site.
// GitHub returns "" for a cleared homepage, which counts as absent.
func (r RepositorySummary) HasHomepage() bool {
	return r.Homepage != nil && *r.Homepage != ""
}
