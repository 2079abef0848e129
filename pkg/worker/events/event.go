package events

import (
	"time"

	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
)

type Kind string

const (
	KindPullRequest  Kind = "PullRequestEvent"
	KindIssueComment Kind = "IssueCommentEvent"
)

type Role string

const (
	RoleUpstream   Role = "upstream"
	RoleDownstream Role = "downstream"
)

type WatchedRepo struct {
	Repo github.Repo
	Role Role
}

type Event struct {
	ID        string
	Kind      Kind
	Role      Role
	Repo      github.Repo
	CreatedAt time.Time
	Payload   Payload
}

// Payload is implemented only by the payload types of this package.
type Payload interface {
	kind() Kind
}

type PullRequestPayload struct {
	Action string
	Number int
	Merged bool
	Title  string
}

func (PullRequestPayload) kind() Kind {
	return KindPullRequest
}

type IssueCommentPayload struct {
	Action    string
	CommentID int64
	Body      string
	Author    string
	// AuthorRole is the github author association of the comment: OWNER, MEMBER, CONTRIBUTOR, NONE...
	AuthorRole    string
	IssueNumber   int
	IsPullRequest bool
}

func (IssueCommentPayload) kind() Kind {
	return KindIssueComment
}
