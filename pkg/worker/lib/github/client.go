package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
)

//go:generate mockgen -package github -source client.go -destination client_mock.go

// Max value allowed by github for the events API.
const eventsPerPage = 100

type Client interface {
	GetRepo(ctx context.Context, repo Repo) (*gh.Repository, error)
	ListEvents(ctx context.Context, repo Repo, page int) ([]*gh.Event, int, error)
	CreateCommentReaction(ctx context.Context, repo Repo, commentID int64, content string) error
	RateLimit(ctx context.Context) (int, int, error)

	GetPullRequest(ctx context.Context, repo Repo, number int) (*gh.PullRequest, error)
	ListPullRequests(ctx context.Context, repo Repo, head, state string) ([]*gh.PullRequest, error)
	CreatePullRequest(ctx context.Context, repo Repo, pull *gh.NewPullRequest) (*gh.PullRequest, error)
}

type MyClient struct {
	gc  *gh.Client
	log logutil.Log

	maxRetries    uint64
	maxRetryDelay time.Duration
}

var _ Client = &MyClient{}

func NewMyClient(httpClient *http.Client, log logutil.Log) *MyClient {
	return &MyClient{
		gc:            gh.NewClient(httpClient),
		log:           log,
		maxRetries:    3,
		maxRetryDelay: time.Minute,
	}
}

func (c *MyClient) SetBaseURL(s string) error {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}

	baseURL, err := url.Parse(s)
	if err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	c.gc.BaseURL = baseURL
	return nil
}

func (c *MyClient) SetRetries(n uint64, maxDelay time.Duration) {
	c.maxRetries = n
	c.maxRetryDelay = maxDelay
}

func (c MyClient) retryGet(ctx context.Context, f func() error) error {
	var lastErr error
	op := func() error {
		lastErr = f()
		if lastErr != nil && !isRetryableError(lastErr) {
			return nil // stop retrying, lastErr is returned below
		}
		return lastErr
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxRetryDelay
	bmr := backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx)

	if err := backoff.Retry(op, bmr); err != nil {
		c.log.Warnf("Github operation failed to retry with %v and took %s: %s", c.maxRetries, b.GetElapsedTime(), err)
		return err
	}

	return lastErr
}

func wrapGithubError(err error, format string, args ...interface{}) error {
	if terr := transformGithubError(err); terr != nil {
		return errors.Wrapf(terr, format, args...)
	}

	return errors.Wrapf(err, format, args...)
}

func (c *MyClient) GetRepo(ctx context.Context, repo Repo) (*gh.Repository, error) {
	var ret *gh.Repository

	f := func() error {
		r, _, err := c.gc.Repositories.Get(ctx, repo.Owner, repo.Name)
		if err != nil {
			return err
		}

		ret = r
		return nil
	}

	if err := c.retryGet(ctx, f); err != nil {
		return nil, wrapGithubError(err, "can't get repo %s", repo.FullName())
	}

	return ret, nil
}

// ListEvents returns one page of the repo activity feed, newest first, and the number of the next page
// (0 for the last page).
func (c *MyClient) ListEvents(ctx context.Context, repo Repo, page int) ([]*gh.Event, int, error) {
	var ret []*gh.Event
	var nextPage int

	f := func() error {
		opts := &gh.ListOptions{
			Page:    page,
			PerPage: eventsPerPage,
		}
		events, resp, err := c.gc.Activity.ListRepositoryEvents(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return err
		}

		ret = events
		nextPage = resp.NextPage
		return nil
	}

	if err := c.retryGet(ctx, f); err != nil {
		return nil, 0, wrapGithubError(err, "can't list events of %s (page %d)", repo.FullName(), page)
	}

	return ret, nextPage, nil
}

func (c *MyClient) CreateCommentReaction(ctx context.Context, repo Repo, commentID int64, content string) error {
	_, _, err := c.gc.Reactions.CreateIssueCommentReaction(ctx, repo.Owner, repo.Name, commentID, content)
	if err != nil {
		return wrapGithubError(err, "can't create reaction %q on comment %d in %s", content, commentID, repo.FullName())
	}

	return nil
}

// RateLimit returns remaining and total calls of the core API quota.
func (c *MyClient) RateLimit(ctx context.Context) (int, int, error) {
	limits, _, err := c.gc.RateLimits(ctx)
	if err != nil {
		return 0, 0, wrapGithubError(err, "can't get rate limits")
	}

	if limits.Core == nil {
		return 0, 0, errors.New("no core rate limit in github response")
	}

	return limits.Core.Remaining, limits.Core.Limit, nil
}

func (c *MyClient) GetPullRequest(ctx context.Context, repo Repo, number int) (*gh.PullRequest, error) {
	var ret *gh.PullRequest

	f := func() error {
		pr, _, err := c.gc.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
		if err != nil {
			return err
		}

		ret = pr
		return nil
	}

	if err := c.retryGet(ctx, f); err != nil {
		return nil, wrapGithubError(err, "can't get pull request %s#%d", repo.FullName(), number)
	}

	return ret, nil
}

func (c *MyClient) ListPullRequests(ctx context.Context, repo Repo, head, state string) ([]*gh.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State: state,
		Head:  head,
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var ret []*gh.PullRequest
	for {
		var page []*gh.PullRequest
		var resp *gh.Response

		f := func() error {
			var err error
			page, resp, err = c.gc.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
			return err
		}
		if err := c.retryGet(ctx, f); err != nil {
			return nil, wrapGithubError(err, "can't list pull requests of %s", repo.FullName())
		}

		ret = append(ret, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return ret, nil
}

func (c *MyClient) CreatePullRequest(ctx context.Context, repo Repo, pull *gh.NewPullRequest) (*gh.PullRequest, error) {
	pr, _, err := c.gc.PullRequests.Create(ctx, repo.Owner, repo.Name, pull)
	if err != nil {
		return nil, wrapGithubError(err, "can't create pull request in %s", repo.FullName())
	}

	return pr, nil
}
