package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

type Repo struct {
	Owner, Name string
}

func (r Repo) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

func (r Repo) CloneURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Name)
}

func (r Repo) IsEmpty() bool {
	return r.Owner == "" || r.Name == ""
}

// Credentials hold either an access token or a username/password pair, the token wins if both are set.
type Credentials struct {
	AccessToken string
	Username    string
	Password    string
}

func (c Credentials) IsEmpty() bool {
	return c.AccessToken == "" && (c.Username == "" || c.Password == "")
}

func (c Credentials) GetHTTPClient(ctx context.Context) *http.Client {
	if c.AccessToken != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: c.AccessToken},
		)
		return oauth2.NewClient(ctx, ts)
	}

	t := gh.BasicAuthTransport{
		Username: c.Username,
		Password: c.Password,
	}
	return t.Client()
}
