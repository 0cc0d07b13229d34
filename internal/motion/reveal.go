package motion

import (
	"math"
	"strconv"
	"sync"
)

// Reveal tracks viewport-enter animations that play once: an element is
// revealed the first time it is seen and stays revealed.
type Reveal struct {
	mu       sync.Mutex
	source   VisibilitySource
	revealed map[string]bool
}

func NewReveal(source VisibilitySource) *Reveal {
	if source == nil {
		source = NoneVisible
	}
	return &Reveal{source: source, revealed: map[string]bool{}}
}

// Revealed polls the source for id and reports whether it has ever been
// visible.
func (r *Reveal) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.revealed[id] {
		return true
	}
	if r.source.Visible(id) {
		r.revealed[id] = true
	}
	return r.revealed[id]
}

// Stagger returns the CSS delay for the index-th item of a list.
func Stagger(index int, step float64) string {
	d := math.Round(float64(index)*step*1000) / 1000
	return strconv.FormatFloat(d, 'f', -1, 64) + "s"
}
