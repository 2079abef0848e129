package github

import (
	"context"
	"os"
	"testing"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEventsOfRealRepo(t *testing.T) {
	test.MarkAsSlow(t)
	test.Init()

	creds := Credentials{AccessToken: os.Getenv("GITHUB_TOKEN")}
	if creds.IsEmpty() {
		t.Skip("no GITHUB_TOKEN")
	}

	ctx := context.Background()
	c := NewMyClient(creds.GetHTTPClient(ctx), logutil.NewStderrLog("github"))

	evs, _, err := c.ListEvents(ctx, Repo{Owner: "golang", Name: "go"}, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, evs)

	remaining, limit, err := c.RateLimit(ctx)
	require.NoError(t, err)
	assert.True(t, remaining <= limit)
}
