package repos

import "github.com/kongnyuysido/portfolio/internal/models"

// State is the loader's lifecycle: Idle, Loading or Settled.
type State interface {
	Phase() string
}

// Idle is the state before Start is called.
type Idle struct{}

// Loading is the state while the single request is in flight.
type Loading struct{}

// Settled is terminal. Repos is empty when the fetch failed.
type Settled struct {
	Repos []models.RepositorySummary
}

func (Idle) Phase() string    { return "idle" }
func (Loading) Phase() string { return "loading" }
func (Settled) Phase() string { return "settled" }
