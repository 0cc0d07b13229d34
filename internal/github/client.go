package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v84/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/kongnyuysido/portfolio/internal/models"
)

const (
	// Account is the GitHub user whose repositories the page shows.
	Account = "KONGNYUYSIDO"
	// PageSize is the number of repositories requested.
	PageSize = 6
	// ProfileURL is the public profile linked from the contact section.
	ProfileURL = "https://github.com/" + Account
)

// FetchError covers every way the repository listing can fail: transport
// errors, non-2xx responses and bodies that are not a JSON array.
type FetchError struct {
	Account string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching repositories for %s: %v", e.Account, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client lists recently updated repositories through the GitHub REST API.
type Client struct {
	gh      *gh.Client
	account string
}

type Option func(*Client) error

// WithBaseURL points the client at another API root, e.g. an httptest server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "parsing base url %q", raw)
		}
		c.gh.BaseURL = u
		return nil
	}
}

// WithAccount overrides the account to list repositories for.
func WithAccount(account string) Option {
	return func(c *Client) error {
		c.account = account
		return nil
	}
}

// NewClient builds a client. An empty token means anonymous access.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	httpClient := http.DefaultClient
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	c := &Client{
		gh:      gh.NewClient(httpClient),
		account: Account,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ListRecent returns up to PageSize repositories, most recently updated first.
func (c *Client) ListRecent(ctx context.Context) ([]models.RepositorySummary, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: PageSize},
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, c.account, opts)
	if err != nil {
		return nil, &FetchError{Account: c.account, Err: errors.Wrap(err, "listing repositories")}
	}

	out := make([]models.RepositorySummary, 0, len(repos))
	for _, r := range repos {
		out = append(out, toSummary(r))
	}
	return out, nil
}

func toSummary(r *gh.Repository) models.RepositorySummary {
	s := models.RepositorySummary{
		ID:          r.GetID(),
		Name:        r.GetName(),
		Description: r.Description,
		HTMLURL:     r.GetHTMLURL(),
		Homepage:    r.Homepage,
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Topics:      r.Topics,
	}
	if r.UpdatedAt != nil {
		s.UpdatedAt = r.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if s.Topics == nil {
		s.Topics = []string{}
	}
	return s
}
