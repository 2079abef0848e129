package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/events"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/quota"
	"github.com/pkg/errors"
)

//go:generate mockgen -package dispatch -source dispatcher.go -destination dispatcher_mock.go

type Mirrorer interface {
	// Mirror copies merged upstream pull request into downstream, repeated calls are no-op.
	Mirror(ctx context.Context, upstreamPullNumber int) error
	// Remirror redoes the copy for the downstream pull request (or issue) the command was posted to.
	Remirror(ctx context.Context, downstreamNumber int) error
}

type Reactor interface {
	CreateCommentReaction(ctx context.Context, repo github.Repo, commentID int64, content string) error
}

type Outcome string

const (
	OutcomeIgnored    Outcome = "ignored"
	OutcomeMirrored   Outcome = "mirrored"
	OutcomeRemirrored Outcome = "remirrored"
	OutcomeRejected   Outcome = "rejected"
	OutcomeFailed     Outcome = "failed"
)

const (
	DefaultCommandKeyword = "remirror"
	ReactionThumbsDown    = "-1"
)

var defaultAllowedRoles = []string{"MEMBER", "OWNER"}

type Config struct {
	CommandKeyword string
	// AllowedRoles are author associations which may run commands, case-insensitive.
	AllowedRoles []string
	// ActionTimeout limits one Mirror or Remirror call, quota reads aren't limited by it. Zero means no limit.
	ActionTimeout time.Duration
}

type Dispatcher struct {
	m   Mirrorer
	r   Reactor
	qt  *quota.Tracker
	log logutil.Log
	cfg Config
}

func NewDispatcher(m Mirrorer, r Reactor, qt *quota.Tracker, log logutil.Log, cfg Config) *Dispatcher {
	if cfg.CommandKeyword == "" {
		cfg.CommandKeyword = DefaultCommandKeyword
	}
	cfg.CommandKeyword = strings.ToLower(cfg.CommandKeyword)

	if len(cfg.AllowedRoles) == 0 {
		cfg.AllowedRoles = defaultAllowedRoles
	}

	return &Dispatcher{
		m:   m,
		r:   r,
		qt:  qt,
		log: log,
		cfg: cfg,
	}
}

// Dispatch performs at most one action for ev. A returned error means the action was attempted and failed.
func (d Dispatcher) Dispatch(ctx context.Context, ev *events.Event) (Outcome, error) {
	switch p := ev.Payload.(type) {
	case *events.PullRequestPayload:
		if ev.Role != events.RoleUpstream {
			return OutcomeIgnored, nil
		}
		return d.dispatchPull(ctx, p)
	case *events.IssueCommentPayload:
		if ev.Role != events.RoleDownstream {
			return OutcomeIgnored, nil
		}
		return d.dispatchComment(ctx, ev.Repo, p)
	}

	return OutcomeIgnored, nil
}

func (d Dispatcher) dispatchPull(ctx context.Context, p *events.PullRequestPayload) (Outcome, error) {
	if p.Action != "closed" || !p.Merged {
		d.log.Debugf("dispatch", "Skipping upstream pull #%d: action %s, merged %t", p.Number, p.Action, p.Merged)
		return OutcomeIgnored, nil
	}

	d.log.Infof("Mirroring merged upstream pull #%d %q", p.Number, p.Title)
	usage, err := d.qt.Measure(ctx, func() error {
		actx, cancel := d.actionContext(ctx)
		defer cancel()
		return d.m.Mirror(actx, p.Number)
	})
	d.reportUsage(usage)
	if err != nil {
		return OutcomeFailed, errors.Wrapf(err, "can't mirror upstream pull #%d", p.Number)
	}

	return OutcomeMirrored, nil
}

func (d Dispatcher) actionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.cfg.ActionTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d.cfg.ActionTimeout)
}

func (d Dispatcher) reportUsage(u *quota.Usage) {
	if !u.Known {
		d.log.Infof("Performed unknown number of requests: can't read quota")
		return
	}

	d.log.Infof("Performed %d requests (%d left)", u.Cost, u.Left)
}

func (d Dispatcher) parseCommand(body string) (string, bool) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return "", false
	}

	cmd := strings.ToLower(fields[0])
	return cmd, strings.HasPrefix(cmd, d.cfg.CommandKeyword)
}

func (d Dispatcher) isAllowedRole(role string) bool {
	for _, r := range d.cfg.AllowedRoles {
		if strings.EqualFold(r, role) {
			return true
		}
	}

	return false
}

func (d Dispatcher) dispatchComment(ctx context.Context, repo github.Repo, p *events.IssueCommentPayload) (Outcome, error) {
	if p.Action != "created" {
		return OutcomeIgnored, nil
	}

	cmd, ok := d.parseCommand(p.Body)
	if !ok {
		return OutcomeIgnored, nil
	}

	if !d.isAllowedRole(p.AuthorRole) {
		d.log.Infof("Rejecting command %q of %s (%s) on #%d", cmd, p.Author, p.AuthorRole, p.IssueNumber)
		if err := d.r.CreateCommentReaction(ctx, repo, p.CommentID, ReactionThumbsDown); err != nil {
			return OutcomeRejected, errors.Wrapf(err, "can't react to rejected command on #%d", p.IssueNumber)
		}
		return OutcomeRejected, nil
	}

	d.log.Infof("Remirroring #%d on command of %s", p.IssueNumber, p.Author)
	actx, cancel := d.actionContext(ctx)
	defer cancel()
	if err := d.m.Remirror(actx, p.IssueNumber); err != nil {
		return OutcomeFailed, errors.Wrapf(err, "can't remirror #%d", p.IssueNumber)
	}

	return OutcomeRemirrored, nil
}
