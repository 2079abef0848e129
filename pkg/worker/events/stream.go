package events

import (
	"context"
	"time"

	"github.com/golangci/golangci-mirror/internal/shared/logutil"
	"github.com/golangci/golangci-mirror/pkg/worker/lib/github"
	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
)

//go:generate mockgen -package events -source stream.go -destination stream_mock.go

type Fetcher interface {
	ListEvents(ctx context.Context, repo github.Repo, page int) ([]*gh.Event, int, error)
}

type StreamConfig struct {
	Repos        []WatchedRepo
	Kinds        []Kind
	PollInterval time.Duration
	// MaxPages limits pages read from one feed per pass.
	MaxPages int
	// SkipBacklog marks events of the first pass as seen without delivering them.
	SkipBacklog bool
}

// Stream merges activity feeds of the watched repos into one sequence. Each pass polls the repos one
// after another in configured order; events of one repo in one pass are delivered oldest first.
// Stream isn't safe for concurrent use.
type Stream struct {
	f     Fetcher
	cfg   StreamConfig
	log   logutil.Log
	kinds map[Kind]bool
	seen  *SeenSet

	queue   []*Event
	repoIdx int
	pass    int

	// primed holds indexes of repos polled successfully at least once.
	primed map[int]bool

	sleep func(ctx context.Context, d time.Duration) error
}

func NewStream(f Fetcher, cfg StreamConfig, log logutil.Log) *Stream {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}

	kinds := map[Kind]bool{}
	for _, k := range cfg.Kinds {
		kinds[k] = true
	}

	return &Stream{
		f:      f,
		cfg:    cfg,
		log:    log,
		kinds:  kinds,
		seen:   NewSeenSet(),
		primed: map[int]bool{},
		sleep:  sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s Stream) Seen() *SeenSet {
	return s.seen
}

// Next blocks until the next event is available. It returns an error only when ctx is done:
// feed failures are logged and the failed repo is retried on the next pass.
func (s *Stream) Next(ctx context.Context) (*Event, error) {
	for len(s.queue) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(s.cfg.Repos) == 0 {
			return nil, errors.New("no repos to watch")
		}

		if s.repoIdx == len(s.cfg.Repos) {
			s.repoIdx = 0
			s.pass++
			s.log.Debugf("events", "Pass %d done, seen %d events, sleeping %s", s.pass, s.seen.Len(), s.cfg.PollInterval)
			if err := s.sleep(ctx, s.cfg.PollInterval); err != nil {
				return nil, err
			}
		}

		idx := s.repoIdx
		w := s.cfg.Repos[idx]
		s.repoIdx++

		batch, err := s.poll(ctx, w)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.logPollError(w, err)
		}

		// The backlog is the feed window up to the first successful poll of the repo.
		if s.cfg.SkipBacklog && !s.primed[idx] {
			if err == nil {
				s.primed[idx] = true
			}
			if len(batch) != 0 {
				s.log.Infof("Skipped %d backlog events of %s repo %s", len(batch), w.Role, w.Repo.FullName())
			}
			continue
		}

		s.queue = append(s.queue, batch...)
	}

	ev := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return ev, nil
}

func (s Stream) logPollError(w WatchedRepo, err error) {
	if !github.IsRecoverableError(err) {
		s.log.Errorf("Can't poll events of %s repo %s, check credentials and repo name: %s",
			w.Role, w.Repo.FullName(), err)
		return
	}

	s.log.Warnf("Can't poll events of %s repo %s, will retry on the next pass: %s",
		w.Role, w.Repo.FullName(), err)
}

// poll reads the feed from the newest page until it reaches an already seen event, the last page or
// MaxPages. Returned events are new, allowed and in chronological order. On error the events collected
// from the previous pages are returned too: they are already marked as seen.
func (s *Stream) poll(ctx context.Context, w WatchedRepo) ([]*Event, error) {
	var batch []*Event
	var err error

	page := 1
	for pagesRead := 0; pagesRead < s.cfg.MaxPages; pagesRead++ {
		var raws []*gh.Event
		var nextPage int
		raws, nextPage, err = s.f.ListEvents(ctx, w.Repo, page)
		if err != nil {
			break
		}

		reachedSeen := false
		for _, raw := range raws {
			if !s.seen.Add(raw.GetID()) {
				reachedSeen = true
				continue
			}

			if !s.kinds[Kind(raw.GetType())] {
				continue
			}

			ev, decodeErr := Decode(raw, w)
			if decodeErr != nil {
				s.log.Warnf("Skipping event of %s: %s", w.Repo.FullName(), decodeErr)
				continue
			}

			batch = append(batch, ev)
		}

		if reachedSeen || nextPage == 0 {
			break
		}
		page = nextPage
	}

	for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
		batch[i], batch[j] = batch[j], batch[i]
	}

	if len(batch) != 0 {
		s.log.Debugf("events", "Got %d new events from %s repo %s", len(batch), w.Role, w.Repo.FullName())
	}

	return batch, err
}
