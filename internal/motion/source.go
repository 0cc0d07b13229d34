package motion

// ScrollSource reports the vertical scroll offset in pixels.
type ScrollSource interface {
	ScrollY() float64
}

// VisibilitySource reports whether the element with the given id is in the
// viewport.
type VisibilitySource interface {
	Visible(id string) bool
}

// FixedScroll is a ScrollSource pinned to one offset. Server renders use
// FixedScroll(0), the top of the page.
type FixedScroll float64

func (f FixedScroll) ScrollY() float64 { return float64(f) }

// VisibleSet is a VisibilitySource backed by a set of element ids.
type VisibleSet map[string]bool

func (v VisibleSet) Visible(id string) bool { return v[id] }

// NoneVisible reports every element as off-screen, leaving reveals to the
// browser.
var NoneVisible VisibilitySource = VisibleSet{}
