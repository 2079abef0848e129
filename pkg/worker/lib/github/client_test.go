package github

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepo = Repo{Owner: "golangci", Name: "upstream"}

func newTestClient(t *testing.T, mux *http.ServeMux) *MyClient {
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewMyClient(srv.Client(), logutil.NewStderrLog("github"))
	require.NoError(t, c.SetBaseURL(srv.URL))
	c.SetRetries(2, 10*time.Second)
	return c
}

func TestListEventsPaging(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		page := r.URL.Query().Get("page")
		if page == "1" {
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/repos/golangci/upstream/events?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[{"id":"3","type":"PullRequestEvent"},{"id":"2","type":"WatchEvent"}]`)
			return
		}
		fmt.Fprint(w, `[{"id":"1","type":"IssueCommentEvent"}]`)
	})
	c := newTestClient(t, mux)

	events, next, err := c.ListEvents(context.Background(), testRepo, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	if assert.Len(t, events, 2) {
		assert.Equal(t, "3", events[0].GetID())
		assert.Equal(t, "PullRequestEvent", events[0].GetType())
	}

	events, next, err = c.ListEvents(context.Background(), testRepo, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
	assert.Len(t, events, 1)
}

func TestListEventsNotFound(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/events", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	c := newTestClient(t, mux)

	_, _, err := c.ListEvents(context.Background(), testRepo, 1)
	assert.Equal(t, ErrNotFound, errors.Cause(err))
	assert.False(t, IsRecoverableError(err))
	assert.Equal(t, 1, calls, "404 must not be retried")
}

func TestGetRepoUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Bad credentials"}`)
	})
	c := newTestClient(t, mux)

	_, err := c.GetRepo(context.Background(), testRepo)
	assert.Equal(t, ErrUnauthorized, errors.Cause(err))
}

func TestRateLimitedIsRecoverable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", fmt.Sprint(time.Now().Add(time.Hour).Unix()))
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"API rate limit exceeded for 127.0.0.1."}`)
	})
	c := newTestClient(t, mux)

	_, _, err := c.ListEvents(context.Background(), testRepo, 1)
	assert.Equal(t, ErrRateLimited, errors.Cause(err))
	assert.True(t, IsRecoverableError(err))
}

func TestRetryOnServerError(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/pulls/7", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"number":7,"merged":true,"merge_commit_sha":"abc"}`)
	})
	c := newTestClient(t, mux)

	pr, err := c.GetPullRequest(context.Background(), testRepo, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, pr.GetMerged())
	assert.Equal(t, "abc", pr.GetMergeCommitSHA())
}

func TestCreateCommentReaction(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/issues/comments/42/reactions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"content":"-1"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":1,"content":"-1"}`)
	})
	c := newTestClient(t, mux)

	assert.NoError(t, c.CreateCommentReaction(context.Background(), testRepo, 42, "-1"))
}

func TestRateLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resources":{"core":{"limit":5000,"remaining":97,"reset":1372700873}}}`)
	})
	c := newTestClient(t, mux)

	remaining, limit, err := c.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 97, remaining)
	assert.Equal(t, 5000, limit)
}

func TestListPullRequestsByHead(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golangci:mirror/pr-7", r.URL.Query().Get("head"))
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		fmt.Fprint(w, `[{"number":12,"state":"closed"}]`)
	})
	c := newTestClient(t, mux)

	prs, err := c.ListPullRequests(context.Background(), testRepo, "golangci:mirror/pr-7", "all")
	require.NoError(t, err)
	if assert.Len(t, prs, 1) {
		assert.Equal(t, 12, prs[0].GetNumber())
	}
}

func TestCreatePullRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/golangci/upstream/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"number":13}`)
	})
	c := newTestClient(t, mux)

	pr, err := c.CreatePullRequest(context.Background(), testRepo, &gh.NewPullRequest{
		Title: gh.String("Mirror #7"),
		Head:  gh.String("mirror/pr-7"),
		Base:  gh.String("master"),
	})
	require.NoError(t, err)
	assert.Equal(t, 13, pr.GetNumber())
}

func TestCredentials(t *testing.T) {
	assert.True(t, Credentials{}.IsEmpty())
	assert.True(t, Credentials{Username: "u"}.IsEmpty())
	assert.False(t, Credentials{Username: "u", Password: "p"}.IsEmpty())
	assert.False(t, Credentials{AccessToken: "t"}.IsEmpty())
}
