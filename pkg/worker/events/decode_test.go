package events

import (
	"encoding/json"
	"testing"

	gh "github.com/google/go-github/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawEvent(id string, kind Kind, payload string) *gh.Event {
	p := json.RawMessage(payload)
	return &gh.Event{
		ID:         gh.String(id),
		Type:       gh.String(string(kind)),
		RawPayload: &p,
	}
}

func prEvent(id, action string, number int, merged bool) *gh.Event {
	payload, _ := json.Marshal(map[string]interface{}{
		"action": action,
		"number": number,
		"pull_request": map[string]interface{}{
			"number": number,
			"merged": merged,
			"title":  "Fix typo",
		},
	})
	return rawEvent(id, KindPullRequest, string(payload))
}

func commentEvent(id, action, body, role string, issue int) *gh.Event {
	payload, _ := json.Marshal(map[string]interface{}{
		"action": action,
		"issue": map[string]interface{}{
			"number":       issue,
			"pull_request": map[string]interface{}{"url": "https://api.github.com/repos/o/r/pulls/1"},
		},
		"comment": map[string]interface{}{
			"id":                 int64(1000 + issue),
			"body":               body,
			"author_association": role,
			"user":               map[string]interface{}{"login": "octocat"},
		},
	})
	return rawEvent(id, KindIssueComment, string(payload))
}

func TestDecodePullRequest(t *testing.T) {
	ev, err := Decode(prEvent("1", "closed", 7, true), upstream)
	require.NoError(t, err)

	assert.Equal(t, "1", ev.ID)
	assert.Equal(t, KindPullRequest, ev.Kind)
	assert.Equal(t, RoleUpstream, ev.Role)
	assert.Equal(t, &PullRequestPayload{Action: "closed", Number: 7, Merged: true, Title: "Fix typo"}, ev.Payload)
}

func TestDecodeIssueComment(t *testing.T) {
	ev, err := Decode(commentEvent("2", "created", "remirror please", "MEMBER", 5), downstream)
	require.NoError(t, err)

	p, ok := ev.Payload.(*IssueCommentPayload)
	require.True(t, ok)
	assert.Equal(t, "created", p.Action)
	assert.Equal(t, int64(1005), p.CommentID)
	assert.Equal(t, "remirror please", p.Body)
	assert.Equal(t, "octocat", p.Author)
	assert.Equal(t, "MEMBER", p.AuthorRole)
	assert.Equal(t, 5, p.IssueNumber)
	assert.True(t, p.IsPullRequest)
}

func TestDecodeUnsupportedKind(t *testing.T) {
	_, err := Decode(rawEvent("3", "WatchEvent", `{"action":"started"}`), upstream)
	assert.Error(t, err)
}

func TestDecodeBrokenPayload(t *testing.T) {
	_, err := Decode(rawEvent("4", KindPullRequest, `{"action":`), upstream)
	assert.Error(t, err)
}
