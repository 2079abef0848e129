package git

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/executors"
	"github.com/pkg/errors"
)

var (
	ErrNotGitRepo         = errors.New("directory exists and is not a git repository")
	ErrCherryPickConflict = errors.New("cherry-pick conflict")
	ErrNoBranchOrRepo     = errors.New("repo or branch not found")
)

type Remote struct {
	Name, URL string
}

// Repo runs git in a local working copy.
type Repo struct {
	exec executors.Executor
	log  logutil.Log
}

func NewRepo(exec executors.Executor, log logutil.Log) *Repo {
	return &Repo{
		exec: exec,
		log:  log,
	}
}

// WithAuth makes git send basic auth to host without storing credentials in the repo config.
func WithAuth(exec executors.Executor, host, user, password string) executors.Executor {
	token := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	return exec.
		WithEnv("GIT_CONFIG_COUNT", "1").
		WithEnv("GIT_CONFIG_KEY_0", fmt.Sprintf("http.https://%s/.extraheader", host)).
		WithEnv("GIT_CONFIG_VALUE_0", "AUTHORIZATION: basic "+token)
}

func IsRepo(dir string) (bool, error) {
	fi, err := os.Stat(filepath.Join(dir, ".git"))
	if err == nil {
		return fi.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrapf(err, "can't stat %s", dir)
}

// Ensure returns repo in dir, cloning cloneURL into dir if it doesn't exist and adding missing remotes.
func Ensure(ctx context.Context, exec executors.Executor, log logutil.Log, dir, cloneURL string, remotes []Remote) (*Repo, error) {
	_, err := os.Stat(dir)
	switch {
	case err == nil:
		isRepo, rerr := IsRepo(dir)
		if rerr != nil {
			return nil, rerr
		}
		if !isRepo {
			return nil, errors.Wrap(ErrNotGitRepo, dir)
		}
	case os.IsNotExist(err):
		log.Warnf("Local clone not found in %s, cloning %s", dir, cloneURL)
		if err = clone(ctx, exec, dir, cloneURL); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(err, "can't stat %s", dir)
	}

	r := NewRepo(exec.WithWorkDir(dir), log)
	if err = r.ensureRemotes(ctx, remotes); err != nil {
		return nil, err
	}

	return r, nil
}

func clone(ctx context.Context, exec executors.Executor, dir, cloneURL string) error {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, "can't make dir %s", parent)
	}

	args := []string{"clone", "-q", cloneURL, dir}
	if out, err := exec.WithWorkDir(parent).Run(ctx, "git", args...); err != nil {
		if strings.Contains(out, "could not read Username for") || strings.Contains(out, "not found") {
			return errors.Wrap(ErrNoBranchOrRepo, out)
		}

		return errors.Wrapf(err, "can't run git cmd %v: %s", args, out)
	}

	return nil
}

func (r Repo) run(ctx context.Context, args ...string) (string, error) {
	out, err := r.exec.Run(ctx, "git", args...)
	if err != nil {
		return out, errors.Wrapf(err, "can't run git cmd %v: %s", args, out)
	}

	return out, nil
}

func (r Repo) RemoteNames(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "remote")
	if err != nil {
		return nil, err
	}

	return strings.Fields(out), nil
}

func (r Repo) AddRemote(ctx context.Context, remote Remote) error {
	_, err := r.run(ctx, "remote", "add", remote.Name, remote.URL)
	return err
}

func (r Repo) ensureRemotes(ctx context.Context, remotes []Remote) error {
	names, err := r.RemoteNames(ctx)
	if err != nil {
		return err
	}

	existing := map[string]bool{}
	for _, n := range names {
		existing[n] = true
	}

	for _, remote := range remotes {
		if existing[remote.Name] {
			continue
		}

		r.log.Infof("Adding remote %s %s", remote.Name, remote.URL)
		if err = r.AddRemote(ctx, remote); err != nil {
			return err
		}
	}

	return nil
}

func (r Repo) Fetch(ctx context.Context, remote string) error {
	_, err := r.run(ctx, "fetch", "-q", "--prune", remote)
	return err
}

// CheckoutBranch creates or resets branch to startPoint and checks it out, local changes are dropped.
func (r Repo) CheckoutBranch(ctx context.Context, branch, startPoint string) error {
	_, err := r.run(ctx, "checkout", "-q", "-f", "-B", branch, startPoint)
	return err
}

func (r Repo) ParentsCount(ctx context.Context, sha string) (int, error) {
	out, err := r.run(ctx, "rev-list", "--parents", "-n", "1", sha)
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, fmt.Errorf("no commit %s", sha)
	}

	return len(fields) - 1, nil
}

// CherryPick applies sha onto the current branch, mainline selects the parent of a merge commit (0 for
// a regular commit). A conflicting cherry-pick is aborted.
func (r Repo) CherryPick(ctx context.Context, sha string, mainline int) error {
	args := []string{"cherry-pick", "-x", "--allow-empty"}
	if mainline != 0 {
		args = append(args, "-m", strconv.Itoa(mainline))
	}
	args = append(args, sha)

	out, err := r.exec.Run(ctx, "git", args...)
	if err == nil {
		return nil
	}

	if _, abortErr := r.exec.Run(ctx, "git", "cherry-pick", "--abort"); abortErr != nil {
		r.log.Warnf("Can't abort cherry-pick of %s: %s", sha, abortErr)
	}

	if strings.Contains(out, "CONFLICT") || strings.Contains(out, "could not apply") {
		return errors.Wrapf(ErrCherryPickConflict, "%s: %s", sha, out)
	}

	return errors.Wrapf(err, "can't cherry-pick %s: %s", sha, out)
}

func (r Repo) Push(ctx context.Context, remote, branch string, force bool) error {
	args := []string{"push", "-q"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, remote, fmt.Sprintf("%s:refs/heads/%s", branch, branch))

	_, err := r.run(ctx, args...)
	return err
}
