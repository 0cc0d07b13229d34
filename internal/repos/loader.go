package repos

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/kongnyuysido/portfolio/internal/models"
)

// Source lists repositories. *github.Client satisfies it.
type Source interface {
	ListRecent(ctx context.Context) ([]models.RepositorySummary, error)
}

// Loader performs one best-effort fetch per process and exposes the result.
// Failures are logged and leave the list empty.
type Loader struct {
	source Source
	logger *slog.Logger

	once  sync.Once
	state atomic.Pointer[State]
	done  chan struct{}
}

func NewLoader(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		source: source,
		logger: logger,
		done:   make(chan struct{}),
	}
	l.set(Idle{})
	return l
}

// Start runs the fetch. Only the first call does anything; later calls
// return immediately. It blocks until the loader has settled.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		l.set(Loading{})
		l.logger.Debug("fetching repositories")

		repos, err := l.source.ListRecent(ctx)
		if err != nil {
			l.logger.Error("failed to fetch GitHub repos", "error", err)
			repos = nil
		} else {
			l.logger.Info("fetched repositories", "count", len(repos))
		}

		l.set(Settled{Repos: repos})
		close(l.done)
	})
}

// State returns the current state. Safe for concurrent use.
func (l *Loader) State() State {
	return *l.state.Load()
}

// Done is closed once the loader has settled.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

func (l *Loader) set(s State) {
	l.state.Store(&s)
}
