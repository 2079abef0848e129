package apperrors

import (
	"errors"
	"strings"

	"github.com/stvp/rollbar"
)

type RollbarTracker struct {
	project string
}

func NewRollbarTracker(token, project, env string) *RollbarTracker {
	rollbar.Environment = env
	rollbar.Token = token

	return &RollbarTracker{
		project: project,
	}
}

func (t RollbarTracker) Track(level Level, errorText string, ctx map[string]interface{}) {
	fields := []*rollbar.Field{}

	// group by the outermost wrap message, the rest is per-event detail (pull number, sha)
	errorParts := strings.SplitN(errorText, ": ", 2)
	errorClass := errorParts[0]
	props := map[string]interface{}{}
	for k, v := range ctx {
		props[k] = v
	}
	if len(errorParts) == 2 {
		props["error_detail"] = errorParts[1]
	}

	if len(props) != 0 {
		fields = append(fields, &rollbar.Field{
			Name: "props",
			Data: props,
		})
	}

	fields = append(fields, &rollbar.Field{
		Name: "project",
		Data: t.project,
	})

	var rollbarLevel string
	switch level {
	case LevelError:
		rollbarLevel = rollbar.ERR
	case LevelWarn:
		rollbarLevel = rollbar.WARN
	default:
		panic("invalid level " + level)
	}

	rollbar.Error(rollbarLevel, errors.New(errorClass), fields...)
}
