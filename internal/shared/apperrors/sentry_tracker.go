package apperrors

import (
	"fmt"
	"strings"

	"github.com/getsentry/raven-go"
	"github.com/pkg/errors"
)

type SentryTracker struct {
	project string
}

func NewSentryTracker(dsn, project, env string) (*SentryTracker, error) {
	raven.SetEnvironment(env)
	err := raven.SetDSN(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "can't set sentry dsn")
	}

	return &SentryTracker{
		project: project,
	}, nil
}

func (t SentryTracker) Track(level Level, errorText string, ctx map[string]interface{}) {
	tags := map[string]string{
		"project": t.project,
	}
	for k, v := range ctx {
		tags[k] = fmt.Sprintf("%v", v)
	}

	errorParts := strings.SplitN(errorText, ": ", 2)
	errorClass := errorParts[0]

	p := raven.NewPacket(errorText)
	p.Fingerprint = []string{errorClass}

	switch level {
	case LevelError:
		p.Level = raven.ERROR
	case LevelWarn:
		p.Level = raven.WARNING
	default:
		panic("invalid level " + level)
	}

	raven.Capture(p, tags)
}
