package motion

import "fmt"

// Transform maps a scroll offset from In onto Out linearly. Offsets outside
// In clamp to the nearest end of Out.
type Transform struct {
	In  [2]float64
	Out [2]float64
}

// Hero parallax layers.
var (
	HeroBackground = Transform{In: [2]float64{0, 300}, Out: [2]float64{0, -50}}
	HeroForeground = Transform{In: [2]float64{0, 300}, Out: [2]float64{0, 25}}
)

func (t Transform) At(x float64) float64 {
	lo, hi := t.In[0], t.In[1]
	if lo == hi {
		if x < lo {
			return t.Out[0]
		}
		return t.Out[1]
	}

	p := (x - lo) / (hi - lo)
	switch {
	case p <= 0:
		return t.Out[0]
	case p >= 1:
		return t.Out[1]
	}
	return t.Out[0] + p*(t.Out[1]-t.Out[0])
}

// Style renders the translateY for offset x as an inline CSS value.
func (t Transform) Style(x float64) string {
	return fmt.Sprintf("transform: translateY(%gpx)", t.At(x))
}

// Attr encodes the transform for the browser script as "in0,in1,out0,out1".
func (t Transform) Attr() string {
	return fmt.Sprintf("%g,%g,%g,%g", t.In[0], t.In[1], t.Out[0], t.Out[1])
}
