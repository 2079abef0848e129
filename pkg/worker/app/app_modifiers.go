package app

import (
	"github.com/golangci/golangci-mirror/internal/shared/apperrors"
	"github.com/golangci/golangci-mirror/internal/shared/config"
	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/dispatch"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/executors"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
	"github.com/golangci/golangci-mirror/pkg/worker/mirror"
)

type Modifier func(a *App)

func SetLog(log logutil.Log) Modifier {
	return func(a *App) {
		a.log = log
	}
}

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}

func SetErrTracker(t apperrors.Tracker) Modifier {
	return func(a *App) {
		a.errTracker = t
	}
}

func SetGithubClient(gc github.Client) Modifier {
	return func(a *App) {
		a.gc = gc
	}
}

func SetExecutor(exec executors.Executor) Modifier {
	return func(a *App) {
		a.exec = exec
	}
}

func SetLocker(l mirror.Locker) Modifier {
	return func(a *App) {
		a.locker = l
	}
}

// SetMirrorer replaces git based mirroring, it's used by tests.
func SetMirrorer(m dispatch.Mirrorer) Modifier {
	return func(a *App) {
		a.mirrorer = m
	}
}
