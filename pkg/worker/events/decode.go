package events

import (
	"fmt"

	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
)

func Decode(raw *gh.Event, w WatchedRepo) (*Event, error) {
	ev := &Event{
		ID:        raw.GetID(),
		Kind:      Kind(raw.GetType()),
		Role:      w.Role,
		Repo:      w.Repo,
		CreatedAt: raw.GetCreatedAt(),
	}

	p, err := raw.ParsePayload()
	if err != nil {
		return nil, errors.Wrapf(err, "can't parse payload of %s %s", ev.Kind, ev.ID)
	}

	switch p := p.(type) {
	case *gh.PullRequestEvent:
		number := p.GetNumber()
		if number == 0 {
			number = p.GetPullRequest().GetNumber()
		}
		ev.Payload = &PullRequestPayload{
			Action: p.GetAction(),
			Number: number,
			Merged: p.GetPullRequest().GetMerged(),
			Title:  p.GetPullRequest().GetTitle(),
		}
	case *gh.IssueCommentEvent:
		ev.Payload = &IssueCommentPayload{
			Action:        p.GetAction(),
			CommentID:     p.GetComment().GetID(),
			Body:          p.GetComment().GetBody(),
			Author:        p.GetComment().GetUser().GetLogin(),
			AuthorRole:    p.GetComment().GetAuthorAssociation(),
			IssueNumber:   p.GetIssue().GetNumber(),
			IsPullRequest: p.GetIssue().IsPullRequest(),
		}
	default:
		return nil, fmt.Errorf("unsupported event kind %s", ev.Kind)
	}

	return ev, nil
}
