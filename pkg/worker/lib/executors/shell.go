package executors

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
)

type Shell struct {
	envStore
	wd  string
	log logutil.Log
}

var _ Executor = &Shell{}

func NewShell(workDir string, log logutil.Log) *Shell {
	return &Shell{
		envStore: *newEnvStore(),
		wd:       workDir,
		log:      log,
	}
}

func (s Shell) Run(ctx context.Context, name string, args ...string) (string, error) {
	startedAt := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = s.env
	cmd.Dir = s.wd

	out, err := cmd.CombinedOutput()

	logger := s.log.Infof
	if err == nil {
		logger = func(format string, args ...interface{}) {
			s.log.Debugf("exec", format, args...)
		}
	}
	logger("shell[%s]: %s %v executed for %s: %v", s.wd, name, args, time.Since(startedAt), err)

	// XXX: it's important to not change error here, because it holds exit code
	return strings.TrimSpace(string(out)), err
}

func (s Shell) WorkDir() string {
	return s.wd
}

func (s Shell) WithEnv(k, v string) Executor {
	eCopy := s
	eCopy.env = s.copyEnv()
	eCopy.SetEnv(k, v)
	return &eCopy
}

func (s Shell) WithWorkDir(wd string) Executor {
	eCopy := s
	eCopy.wd = wd
	return &eCopy
}
