package app

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/golangci/golangci-mirror/internal/shared/apperrors"
	"github.com/golangci/golangci-mirror/internal/shared/config"
	"github.com/golangci/golangci-mirror/internal/shared/db/redis"
	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/dispatch"
	"github.com/golangci/golangci-mirror/pkg/worker/events"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/executors"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/git"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/quota"
	"github.com/golangci/golangci-mirror/pkg/worker/mirror"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrNoCredentials  = errors.New("no GITHUB_TOKEN or GITHUB_USERNAME and GITHUB_PASSWORD in config")
	ErrNoRepos        = errors.New("UPSTREAM_OWNER, UPSTREAM_REPO, DOWNSTREAM_OWNER and DOWNSTREAM_REPO must be set")
	ErrNoLocalRepoDir = errors.New("no LOCAL_REPO_DIR in config")
	ErrNotGitRepo     = git.ErrNotGitRepo
)

const gitHost = "github.com"

type App struct {
	log        logutil.Log
	trackedLog logutil.Log
	errTracker apperrors.Tracker
	cfg        config.Config

	gc       github.Client
	exec     executors.Executor
	locker   mirror.Locker
	mirrorer dispatch.Mirrorer

	upstream, downstream github.Repo
	localRepo            mirror.LocalRepo
	qt                   *quota.Tracker
	stream               *events.Stream
	dispatchCfg          dispatch.Config
}

func NewApp(modifiers ...Modifier) *App {
	var a App
	for _, modifier := range modifiers {
		modifier(&a)
	}

	a.buildDeps()

	return &a
}

func (a *App) buildDeps() {
	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(logutil.NewStderrLog("config"))
	}

	if a.log == nil {
		slog := logutil.NewStderrLog("golangci-mirror", a.cfg.GetStrings("DEBUG_KEYS")...)
		slog.SetLevel(logutil.ParseLevel(a.cfg.GetString("LOG_LEVEL"), logutil.LogLevelInfo))
		a.log = slog
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "mirror")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}
}

func (a App) credentials() github.Credentials {
	return github.Credentials{
		AccessToken: a.cfg.GetString("GITHUB_TOKEN"),
		Username:    a.cfg.GetString("GITHUB_USERNAME"),
		Password:    a.cfg.GetString("GITHUB_PASSWORD"),
	}
}

// Init validates config, resolves both repos and prepares the local clone. It never exits the process.
func (a *App) Init(ctx context.Context) error {
	creds := a.credentials()
	if creds.IsEmpty() {
		return ErrNoCredentials
	}

	a.upstream = github.Repo{Owner: a.cfg.GetString("UPSTREAM_OWNER"), Name: a.cfg.GetString("UPSTREAM_REPO")}
	a.downstream = github.Repo{Owner: a.cfg.GetString("DOWNSTREAM_OWNER"), Name: a.cfg.GetString("DOWNSTREAM_REPO")}
	if a.upstream.IsEmpty() || a.downstream.IsEmpty() {
		return ErrNoRepos
	}

	if err := a.buildGithubClient(ctx, creds); err != nil {
		return err
	}

	for _, r := range []struct {
		role events.Role
		repo github.Repo
	}{{events.RoleUpstream, a.upstream}, {events.RoleDownstream, a.downstream}} {
		if _, err := a.gc.GetRepo(ctx, r.repo); err != nil {
			return errors.Wrapf(err, "can't resolve %s repo %s", r.role, r.repo.FullName())
		}
	}

	if err := a.prepareLocalRepo(ctx, creds); err != nil {
		return err
	}

	if err := a.buildLocker(); err != nil {
		return err
	}

	a.qt = quota.NewTracker(a.gc)
	a.dispatchCfg = dispatch.Config{
		CommandKeyword: a.cfg.GetStringDefault("COMMAND_KEYWORD", dispatch.DefaultCommandKeyword),
		ActionTimeout:  a.cfg.GetDuration("MIRROR_TIMEOUT", 10*time.Minute),
	}
	a.stream = events.NewStream(a.gc, events.StreamConfig{
		Repos: []events.WatchedRepo{
			{Repo: a.upstream, Role: events.RoleUpstream},
			{Repo: a.downstream, Role: events.RoleDownstream},
		},
		Kinds:        []events.Kind{events.KindPullRequest, events.KindIssueComment},
		PollInterval: a.cfg.GetDuration("POLL_INTERVAL", 30*time.Second),
		MaxPages:     a.cfg.GetInt("EVENTS_MAX_PAGES", 3),
		SkipBacklog:  a.cfg.GetBool("SKIP_BACKLOG", true),
	}, a.trackedLog.Child("events"))

	a.log.Infof("Mirroring %s into %s", a.upstream.FullName(), a.downstream.FullName())
	return nil
}

func (a *App) buildGithubClient(ctx context.Context, creds github.Credentials) error {
	if a.gc != nil {
		return nil
	}

	c := github.NewMyClient(creds.GetHTTPClient(ctx), a.log.Child("github"))
	c.SetRetries(5, 2*time.Minute)
	if baseURL := a.cfg.GetString("GITHUB_BASE_URL"); baseURL != "" {
		if err := c.SetBaseURL(baseURL); err != nil {
			return errors.Wrap(err, "invalid GITHUB_BASE_URL")
		}
	}

	a.gc = c
	return nil
}

func (a *App) prepareLocalRepo(ctx context.Context, creds github.Credentials) error {
	dir := a.cfg.GetString("LOCAL_REPO_DIR")
	if dir == "" {
		return ErrNoLocalRepoDir
	}

	exec := a.exec
	if exec == nil {
		exec = executors.NewShell(dir, a.log.Child("exec"))
	}
	exec = exec.
		WithEnv("GIT_TERMINAL_PROMPT", "0").
		WithEnv("GIT_COMMITTER_NAME", a.cfg.GetStringDefault("GIT_COMMITTER_NAME", "golangci-mirror")).
		WithEnv("GIT_COMMITTER_EMAIL", a.cfg.GetStringDefault("GIT_COMMITTER_EMAIL", "mirror@golangci.com"))
	if creds.AccessToken != "" {
		exec = git.WithAuth(exec, gitHost, "x-access-token", creds.AccessToken)
	} else {
		exec = git.WithAuth(exec, gitHost, creds.Username, creds.Password)
	}

	repo, err := git.Ensure(ctx, exec, a.log.Child("git"), dir, a.downstream.CloneURL(), []git.Remote{
		{Name: mirror.RemoteUpstream, URL: a.upstream.CloneURL()},
		{Name: mirror.RemoteDownstream, URL: a.downstream.CloneURL()},
	})
	if err != nil {
		return errors.Wrapf(err, "can't prepare local repo in %s", dir)
	}

	a.localRepo = repo
	return nil
}

func (a *App) buildLocker() error {
	if a.locker != nil {
		return nil
	}

	if a.cfg.GetString("REDIS_URL") == "" {
		a.locker = mirror.NopLocker{}
		return nil
	}

	pool, err := redis.GetPool(a.cfg)
	if err != nil {
		return errors.Wrap(err, "can't get redis pool")
	}
	if err = redis.Ping(pool); err != nil {
		return err
	}

	a.locker = mirror.NewRedisLocker(pool, a.cfg.GetDuration("MIRROR_LOCK_EXPIRY", 15*time.Minute))
	return nil
}

// Run processes events until ctx is done. Failed actions are reported and skipped.
func (a App) Run(ctx context.Context) error {
	if a.stream == nil {
		return errors.New("app isn't initialized")
	}

	for {
		ev, err := a.stream.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				a.log.Infof("Stopping: %s", ctx.Err())
				return nil
			}
			a.trackedLog.Errorf("Can't get next event: %s", err)
			return err
		}

		a.processEvent(ctx, ev)
	}
}

func (a App) processEvent(ctx context.Context, ev *events.Event) {
	lctx := logutil.Context{
		"eventID":  ev.ID,
		"kind":     string(ev.Kind),
		"repo":     ev.Repo.FullName(),
		"actionID": uuid.NewV4().String(),
	}
	log := logutil.WrapLogWithContext(a.log, lctx)
	trackedLog := apperrors.WrapLogWithTracker(log, lctx, a.errTracker)

	startedAt := time.Now()
	outcome, err := a.dispatchPanicSafe(ctx, ev, log)
	if err != nil {
		if ctx.Err() != nil {
			log.Warnf("Interrupted %s event: %s", ev.Role, err)
			return
		}
		trackedLog.Errorf("Processing of %s event failed: %s", ev.Role, err)
		return
	}

	if outcome != dispatch.OutcomeIgnored {
		log.Infof("Processed %s event: %s for %s", ev.Role, outcome, time.Since(startedAt))
	}
}

func (a App) dispatchPanicSafe(ctx context.Context, ev *events.Event, log logutil.Log) (outcome dispatch.Outcome, err error) {
	defer func() {
		if rerr := recover(); rerr != nil {
			outcome = dispatch.OutcomeFailed
			err = errors.Errorf("panic occurred: %s, %s", rerr, debug.Stack())
		}
	}()

	m := a.mirrorer
	if m == nil {
		m = mirror.NewRunner(a.gc, a.localRepo, a.locker, log.Child("mirror"), mirror.Config{
			Upstream:   a.upstream,
			Downstream: a.downstream,
		})
	}

	d := dispatch.NewDispatcher(m, a.gc, a.qt, log, a.dispatchCfg)
	return d.Dispatch(ctx, ev)
}
