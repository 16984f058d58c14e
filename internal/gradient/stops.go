package gradient

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is a color pinned to a position of a Stops gradient.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Stops is a gradient interpolating between fixed stops in CIE-L*a*b* space.
// Stops must be sorted by Pos, the first at 0 and the last at 1.
type Stops []Stop

// At evaluates the ramp at t.
func (s Stops) At(t float64) colorful.Color {
	t = clamp01(t)

	if t <= s[0].Pos {
		return s[0].Color
	}
	if t >= s[len(s)-1].Pos {
		return s[len(s)-1].Color
	}

	// first stop strictly above t
	i := sort.Search(len(s), func(i int) bool { return s[i].Pos > t })
	lo, hi := s[i-1], s[i]

	return lo.Color.BlendLab(hi.Color, (t-lo.Pos)/(hi.Pos-lo.Pos)).Clamped()
}

// Terrain is a hypsometric ramp from lowland green over brown to snow.
func Terrain() Stops {
	return Stops{
		{0.00, colorful.Color{R: 0.200, G: 0.400, B: 0.000}},
		{0.15, colorful.Color{R: 0.506, G: 0.765, B: 0.122}},
		{0.40, colorful.Color{R: 1.000, G: 1.000, B: 0.800}},
		{0.60, colorful.Color{R: 0.957, G: 0.741, B: 0.271}},
		{0.80, colorful.Color{R: 0.400, G: 0.196, B: 0.047}},
		{1.00, colorful.Color{R: 1.000, G: 1.000, B: 1.000}},
	}
}
