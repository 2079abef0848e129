package github

import (
	"net/http"

	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
)

var (
	ErrNotFound     = errors.New("not found in github")
	ErrUnauthorized = errors.New("invalid github authorization")
	ErrRateLimited  = errors.New("github rate limit exceeded")
)

// IsRecoverableError reports whether an operation can succeed if repeated later.
func IsRecoverableError(err error) bool {
	cause := errors.Cause(err)
	return cause != ErrNotFound && cause != ErrUnauthorized
}

func isRetryableError(err error) bool {
	terr := transformGithubError(err)
	return terr == nil
}

func transformGithubError(err error) error {
	switch er := err.(type) {
	case *gh.RateLimitError:
		return errors.Wrap(ErrRateLimited, er.Message)
	case *gh.AbuseRateLimitError:
		return errors.Wrap(ErrRateLimited, er.Message)
	case *gh.ErrorResponse:
		if er.Response == nil {
			return nil
		}
		if er.Response.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		if er.Response.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
	}

	return nil
}
