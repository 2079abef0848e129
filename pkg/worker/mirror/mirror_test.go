package mirror

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/git"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
	gh "github.com/google/go-github/github"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var any = gomock.Any()

var _ LocalRepo = &git.Repo{}

var testCfg = Config{
	Upstream:   github.Repo{Owner: "golangci", Name: "upstream"},
	Downstream: github.Repo{Owner: "golangci", Name: "downstream"},
}

const (
	testMergeSHA = "5f3a"
	testHead     = "golangci:mirror/pr-7"
)

type testDeps struct {
	ctrl   *gomock.Controller
	client *github.MockClient
	repo   *MockLocalRepo
}

func newTestRunner(t *testing.T, locker Locker) (*Runner, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		ctrl:   ctrl,
		client: github.NewMockClient(ctrl),
		repo:   NewMockLocalRepo(ctrl),
	}

	log := logutil.NewStderrLog("mirror")
	log.SetLevel(logutil.LogLevelError)
	return NewRunner(deps.client, deps.repo, locker, log, testCfg), deps
}

func mergedPull(n int) *gh.PullRequest {
	return &gh.PullRequest{
		Number:         gh.Int(n),
		Title:          gh.String("Fix typo"),
		Merged:         gh.Bool(true),
		MergeCommitSHA: gh.String(testMergeSHA),
	}
}

func (d testDeps) expectCopy(force bool, parents int, mainline int) {
	d.client.EXPECT().GetPullRequest(any, testCfg.Upstream, 7).Return(mergedPull(7), nil)
	d.client.EXPECT().GetRepo(any, testCfg.Downstream).Return(&gh.Repository{DefaultBranch: gh.String("main")}, nil)
	gomock.InOrder(
		d.repo.EXPECT().Fetch(any, RemoteUpstream).Return(nil),
		d.repo.EXPECT().Fetch(any, RemoteDownstream).Return(nil),
		d.repo.EXPECT().CheckoutBranch(any, "mirror/pr-7", "downstream/main").Return(nil),
		d.repo.EXPECT().ParentsCount(any, testMergeSHA).Return(parents, nil),
		d.repo.EXPECT().CherryPick(any, testMergeSHA, mainline).Return(nil),
		d.repo.EXPECT().Push(any, RemoteDownstream, "mirror/pr-7", force).Return(nil),
	)
}

func TestMirrorCreatesPull(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "all").Return(nil, nil)
	d.expectCopy(true, 2, 1)

	var created *gh.NewPullRequest
	d.client.EXPECT().CreatePullRequest(any, testCfg.Downstream, any).
		Do(func(_ context.Context, _ github.Repo, p *gh.NewPullRequest) { created = p }).
		Return(&gh.PullRequest{Number: gh.Int(12)}, nil)

	assert.NoError(t, r.Mirror(context.Background(), 7))
	if assert.NotNil(t, created) {
		assert.Equal(t, "Mirror #7: Fix typo", created.GetTitle())
		assert.Equal(t, "mirror/pr-7", created.GetHead())
		assert.Equal(t, "main", created.GetBase())
		assert.Contains(t, created.GetBody(), "golangci/upstream#7")
	}
}

func TestMirrorRegularCommitHasNoMainline(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "all").Return(nil, nil)
	d.expectCopy(true, 1, 0)
	d.client.EXPECT().CreatePullRequest(any, testCfg.Downstream, any).Return(&gh.PullRequest{Number: gh.Int(12)}, nil)

	assert.NoError(t, r.Mirror(context.Background(), 7))
}

func TestMirrorIsNoopWhenAlreadyMirrored(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "all").
		Return([]*gh.PullRequest{{Number: gh.Int(12), State: gh.String("closed")}}, nil)

	assert.NoError(t, r.Mirror(context.Background(), 7))
}

func TestMirrorNotMerged(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "all").Return(nil, nil)
	d.client.EXPECT().GetPullRequest(any, testCfg.Upstream, 7).
		Return(&gh.PullRequest{Number: gh.Int(7), Merged: gh.Bool(false)}, nil)

	err := r.Mirror(context.Background(), 7)
	assert.Equal(t, ErrNotMerged, pkgerrors.Cause(err))
}

func TestMirrorCherryPickConflict(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "all").Return(nil, nil)
	d.client.EXPECT().GetPullRequest(any, testCfg.Upstream, 7).Return(mergedPull(7), nil)
	d.client.EXPECT().GetRepo(any, testCfg.Downstream).Return(&gh.Repository{}, nil)
	d.repo.EXPECT().Fetch(any, any).Return(nil).Times(2)
	d.repo.EXPECT().CheckoutBranch(any, "mirror/pr-7", "downstream/master").Return(nil)
	d.repo.EXPECT().ParentsCount(any, testMergeSHA).Return(1, nil)
	d.repo.EXPECT().CherryPick(any, testMergeSHA, 0).Return(pkgerrors.Wrap(git.ErrCherryPickConflict, testMergeSHA))

	err := r.Mirror(context.Background(), 7)
	assert.Equal(t, git.ErrCherryPickConflict, pkgerrors.Cause(err))
}

func TestRemirrorForcePushesWithoutSecondPull(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().GetPullRequest(any, testCfg.Downstream, 12).Return(&gh.PullRequest{
		Number: gh.Int(12),
		Head:   &gh.PullRequestBranch{Ref: gh.String("mirror/pr-7"), Label: gh.String(testHead)},
	}, nil)
	d.expectCopy(true, 2, 1)
	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "open").
		Return([]*gh.PullRequest{{Number: gh.Int(12)}}, nil)

	assert.NoError(t, r.Remirror(context.Background(), 12))
}

func TestRemirrorReopensPull(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().GetPullRequest(any, testCfg.Downstream, 12).Return(&gh.PullRequest{
		Number: gh.Int(12),
		Head:   &gh.PullRequestBranch{Ref: gh.String("mirror/pr-7")},
	}, nil)
	d.expectCopy(true, 2, 1)
	d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "open").Return(nil, nil)
	d.client.EXPECT().CreatePullRequest(any, testCfg.Downstream, any).Return(&gh.PullRequest{Number: gh.Int(13)}, nil)

	assert.NoError(t, r.Remirror(context.Background(), 12))
}

func TestRemirrorRejectsForeignBranch(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().GetPullRequest(any, testCfg.Downstream, 12).Return(&gh.PullRequest{
		Number: gh.Int(12),
		Head:   &gh.PullRequestBranch{Ref: gh.String("feature/x")},
	}, nil)

	err := r.Remirror(context.Background(), 12)
	assert.Equal(t, ErrNotMirrorBranch, pkgerrors.Cause(err))
}

func TestRemirrorOfIssue(t *testing.T) {
	r, d := newTestRunner(t, nil)
	defer d.ctrl.Finish()

	d.client.EXPECT().GetPullRequest(any, testCfg.Downstream, 3).Return(nil, github.ErrNotFound)

	err := r.Remirror(context.Background(), 3)
	assert.Equal(t, github.ErrNotFound, pkgerrors.Cause(err))
}

func TestMirrorHoldsLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locker := NewMockLocker(ctrl)
	mu := NewMockMutex(ctrl)
	r, d := newTestRunner(t, locker)
	defer d.ctrl.Finish()

	gomock.InOrder(
		locker.EXPECT().NewMutex("mirror:golangci/downstream:7").Return(mu),
		mu.EXPECT().Lock().Return(nil),
		d.client.EXPECT().ListPullRequests(any, testCfg.Downstream, testHead, "all").
			Return([]*gh.PullRequest{{Number: gh.Int(12)}}, nil),
		mu.EXPECT().Unlock().Return(true),
	)

	assert.NoError(t, r.Mirror(context.Background(), 7))
}

func TestMirrorLockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locker := NewMockLocker(ctrl)
	mu := NewMockMutex(ctrl)
	r, d := newTestRunner(t, locker)
	defer d.ctrl.Finish()

	locker.EXPECT().NewMutex(any).Return(mu)
	mu.EXPECT().Lock().Return(errors.New("redsync: failed to acquire lock"))

	assert.Error(t, r.Mirror(context.Background(), 7))
}

func TestParseBranchName(t *testing.T) {
	n, ok := ParseBranchName(BranchName(42))
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, b := range []string{"master", "mirror/pr-", "mirror/pr-x", "mirror/pr-0"} {
		_, ok = ParseBranchName(b)
		assert.False(t, ok, b)
	}
}
