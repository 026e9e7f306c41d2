// Package gateway provides a gateway to the GitHub REST API.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/dates"
	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

// interPageDelay is a fixed pause between list pages to stay clear of the
// provider's secondary rate limits.
const interPageDelay = 120 * time.Millisecond

// Fetcher defines the behavior of a gateway for fetching pull request data
// from the hosting provider.
type Fetcher interface {
	// ProbeRepository verifies the repository is reachable with the
	// configured credential before any pagination starts.
	ProbeRepository(ctx context.Context, owner, repo string) error
	// FetchPullRequests returns every pull request of the repository in any
	// state, plus the untouched provider payload of each record for the
	// debug dump.
	FetchPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, []json.RawMessage, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	perPage    int
	logger     *log.Logger
}

var _ Fetcher = (*GitHubGateway)(nil)

// NewGitHubGateway builds a gateway whose transport retries transient
// failures (429 and 5xx, exponential backoff, five attempts), waits out
// secondary rate limits, and authenticates with a static token.
func NewGitHubGateway(token string, perPage int, logger *log.Logger) (*GitHubGateway, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 5
	retryClient.Logger = nil

	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(
		retryClient.StandardClient().Transport,
		github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient: github.NewClient(httpClient),
		perPage:    perPage,
		logger:     logger,
	}, nil
}

// ProbeRepository performs the metadata probe. Any non-200 response becomes
// a *domain.RepositoryAccessError carrying the status and response body.
func (g *GitHubGateway) ProbeRepository(ctx context.Context, owner, repo string) error {
	g.logger.Printf("Probing repository %s/%s...", owner, repo)
	u, err := g.restClient.BaseURL.Parse(fmt.Sprintf("repos/%v/%v", owner, repo))
	if err != nil {
		return fmt.Errorf("failed to build probe URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.restClient.Client().Do(req)
	if err != nil {
		return fmt.Errorf("repository probe failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.RepositoryAccessError{
			Owner:      owner,
			Repo:       repo,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return nil
}

// providerPullRequest mirrors the provider's pull request JSON, reduced to
// the fields the pipeline reads. Timestamps stay strings here: they are
// optional and go through the permissive dates.ParseProviderInstant.
type providerPullRequest struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	User   *struct {
		Login string `json:"login"`
	} `json:"user"`
	CreatedAt string `json:"created_at"`
	MergedAt  string `json:"merged_at"`
	ClosedAt  string `json:"closed_at"`
	Base      *struct {
		Ref string `json:"ref"`
	} `json:"base"`
	Head *struct {
		SHA string `json:"sha"`
	} `json:"head"`
}

func (p *providerPullRequest) toDomain() domain.PullRequest {
	pr := domain.PullRequest{ID: p.ID, Number: p.Number, Title: p.Title}
	if p.User != nil && p.User.Login != "" {
		login := p.User.Login
		pr.AuthorLogin = &login
	}
	if t, ok := dates.ParseProviderInstant(p.CreatedAt); ok {
		pr.CreatedAt = &t
	}
	if t, ok := dates.ParseProviderInstant(p.MergedAt); ok {
		pr.MergedAt = &t
	}
	if t, ok := dates.ParseProviderInstant(p.ClosedAt); ok {
		pr.ClosedAt = &t
	}
	if p.Base != nil && p.Base.Ref != "" {
		ref := p.Base.Ref
		pr.BaseRef = &ref
	}
	if p.Head != nil && p.Head.SHA != "" {
		sha := p.Head.SHA
		pr.HeadSHA = &sha
	}
	return pr
}

// FetchPullRequests pages through the repository's pull requests one page at
// a time, starting at page 1 and stopping at the first empty page.
func (g *GitHubGateway) FetchPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, []json.RawMessage, error) {
	g.logger.Printf("Fetching pull requests for %s/%s...", owner, repo)

	var all []domain.PullRequest
	var raw []json.RawMessage
	page := 1
	for {
		path := fmt.Sprintf("repos/%v/%v/pulls?state=all&per_page=%d&page=%d", owner, repo, g.perPage, page)
		req, err := g.restClient.NewRequest(http.MethodGet, path, nil)
		if err != nil {
			return nil, nil, &domain.PageFetchError{Page: page, Err: err}
		}
		var items []json.RawMessage
		if _, err := g.restClient.Do(ctx, req, &items); err != nil {
			return nil, nil, &domain.PageFetchError{Page: page, Err: err}
		}
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			var p providerPullRequest
			if err := json.Unmarshal(item, &p); err != nil {
				return nil, nil, &domain.PageFetchError{Page: page, Err: err}
			}
			all = append(all, p.toDomain())
			raw = append(raw, item)
		}
		g.logger.Printf("  Fetched page %d (%d pull requests so far)", page, len(all))
		page++
		time.Sleep(interPageDelay)
	}
	g.logger.Printf("Completed fetching pull requests: %d total.", len(all))
	return all, raw, nil
}
