package mirror

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
)

//go:generate mockgen -package mirror -source mirror.go -destination mirror_mock.go

const (
	RemoteUpstream   = "upstream"
	RemoteDownstream = "downstream"

	branchPrefix      = "mirror/pr-"
	defaultBaseBranch = "master"
)

var (
	ErrNotMerged       = errors.New("pull request isn't merged")
	ErrNotMirrorBranch = errors.New("pull request wasn't opened by mirroring")
)

// LocalRepo is the local working copy with upstream and downstream remotes.
type LocalRepo interface {
	Fetch(ctx context.Context, remote string) error
	CheckoutBranch(ctx context.Context, branch, startPoint string) error
	ParentsCount(ctx context.Context, sha string) (int, error)
	CherryPick(ctx context.Context, sha string, mainline int) error
	Push(ctx context.Context, remote, branch string, force bool) error
}

type Config struct {
	Upstream   github.Repo
	Downstream github.Repo
}

type Runner struct {
	client github.Client
	repo   LocalRepo
	locker Locker
	log    logutil.Log
	cfg    Config
}

func NewRunner(client github.Client, repo LocalRepo, locker Locker, log logutil.Log, cfg Config) *Runner {
	if locker == nil {
		locker = NopLocker{}
	}

	return &Runner{
		client: client,
		repo:   repo,
		locker: locker,
		log:    log,
		cfg:    cfg,
	}
}

func BranchName(upstreamPullNumber int) string {
	return branchPrefix + strconv.Itoa(upstreamPullNumber)
}

// ParseBranchName returns upstream pull request number of the mirror branch.
func ParseBranchName(branch string) (int, bool) {
	if !strings.HasPrefix(branch, branchPrefix) {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimPrefix(branch, branchPrefix))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

// Mirror copies merged upstream pull request into a new downstream pull request. Nothing is done if
// a downstream pull request for it already exists in any state.
func (m Runner) Mirror(ctx context.Context, upstreamPullNumber int) error {
	return m.locked(upstreamPullNumber, func() error {
		branch := BranchName(upstreamPullNumber)
		pulls, err := m.listMirrorPulls(ctx, branch, "all")
		if err != nil {
			return err
		}
		if len(pulls) != 0 {
			m.log.Infof("Upstream pull request #%d is already mirrored in #%d, skipping",
				upstreamPullNumber, pulls[0].GetNumber())
			return nil
		}

		return m.copy(ctx, upstreamPullNumber, false)
	})
}

// Remirror rebuilds the mirror branch of the downstream pull request and reopens a pull request
// if no open one exists.
func (m Runner) Remirror(ctx context.Context, downstreamNumber int) error {
	dpr, err := m.client.GetPullRequest(ctx, m.cfg.Downstream, downstreamNumber)
	if err != nil {
		return errors.Wrapf(err, "can't get downstream pull request #%d", downstreamNumber)
	}

	upstreamPullNumber, ok := ParseBranchName(dpr.GetHead().GetRef())
	headRepo := dpr.GetHead().GetRepo().GetFullName()
	if !ok || (headRepo != "" && headRepo != m.cfg.Downstream.FullName()) {
		return errors.Wrapf(ErrNotMirrorBranch, "#%d has head %s", downstreamNumber, dpr.GetHead().GetLabel())
	}

	return m.locked(upstreamPullNumber, func() error {
		return m.copy(ctx, upstreamPullNumber, true)
	})
}

func (m Runner) locked(upstreamPullNumber int, f func() error) error {
	name := fmt.Sprintf("mirror:%s:%d", m.cfg.Downstream.FullName(), upstreamPullNumber)
	mu := m.locker.NewMutex(name)
	if err := mu.Lock(); err != nil {
		return errors.Wrapf(err, "failed to acquire lock %s", name)
	}
	defer mu.Unlock()

	return f()
}

func (m Runner) listMirrorPulls(ctx context.Context, branch, state string) ([]*gh.PullRequest, error) {
	head := fmt.Sprintf("%s:%s", m.cfg.Downstream.Owner, branch)
	pulls, err := m.client.ListPullRequests(ctx, m.cfg.Downstream, head, state)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list downstream pull requests for %s", head)
	}

	return pulls, nil
}

func (m Runner) copy(ctx context.Context, upstreamPullNumber int, rebuild bool) error {
	upr, err := m.client.GetPullRequest(ctx, m.cfg.Upstream, upstreamPullNumber)
	if err != nil {
		return errors.Wrapf(err, "can't get upstream pull request #%d", upstreamPullNumber)
	}
	if !upr.GetMerged() || upr.GetMergeCommitSHA() == "" {
		return errors.Wrapf(ErrNotMerged, "upstream #%d", upstreamPullNumber)
	}

	base, err := m.baseBranch(ctx)
	if err != nil {
		return err
	}

	branch := BranchName(upstreamPullNumber)
	if err = m.buildBranch(ctx, branch, base, upr.GetMergeCommitSHA()); err != nil {
		return err
	}

	// A branch left by an interrupted attempt has no pull request and is safe to overwrite.
	if err = m.repo.Push(ctx, RemoteDownstream, branch, true); err != nil {
		return errors.Wrapf(err, "can't push %s", branch)
	}

	if rebuild {
		open, lerr := m.listMirrorPulls(ctx, branch, "open")
		if lerr != nil {
			return lerr
		}
		if len(open) != 0 {
			m.log.Infof("Updated branch %s of open pull request #%d", branch, open[0].GetNumber())
			return nil
		}
	}

	pull, err := m.client.CreatePullRequest(ctx, m.cfg.Downstream, &gh.NewPullRequest{
		Title: gh.String(fmt.Sprintf("Mirror #%d: %s", upstreamPullNumber, upr.GetTitle())),
		Head:  gh.String(branch),
		Base:  gh.String(base),
		Body: gh.String(fmt.Sprintf("Mirrored from %s#%d (%s).",
			m.cfg.Upstream.FullName(), upstreamPullNumber, upr.GetMergeCommitSHA())),
	})
	if err != nil {
		return errors.Wrapf(err, "can't create downstream pull request for %s", branch)
	}

	m.log.Infof("Mirrored upstream pull request #%d into #%d", upstreamPullNumber, pull.GetNumber())
	return nil
}

func (m Runner) baseBranch(ctx context.Context) (string, error) {
	repo, err := m.client.GetRepo(ctx, m.cfg.Downstream)
	if err != nil {
		return "", errors.Wrapf(err, "can't get downstream repo %s", m.cfg.Downstream.FullName())
	}

	if b := repo.GetDefaultBranch(); b != "" {
		return b, nil
	}

	return defaultBaseBranch, nil
}

func (m Runner) buildBranch(ctx context.Context, branch, base, sha string) error {
	for _, remote := range []string{RemoteUpstream, RemoteDownstream} {
		if err := m.repo.Fetch(ctx, remote); err != nil {
			return errors.Wrapf(err, "can't fetch %s", remote)
		}
	}

	if err := m.repo.CheckoutBranch(ctx, branch, RemoteDownstream+"/"+base); err != nil {
		return errors.Wrapf(err, "can't checkout %s", branch)
	}

	parents, err := m.repo.ParentsCount(ctx, sha)
	if err != nil {
		return err
	}

	mainline := 0
	if parents > 1 {
		mainline = 1
	}

	return m.repo.CherryPick(ctx, sha, mainline)
}
