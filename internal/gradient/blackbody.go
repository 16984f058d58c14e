package gradient

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ColorMap adapts a gonum plot color map to a Gradient.
type ColorMap struct {
	cm palette.ColorMap
}

// NewColorMap wraps cm, rescaling it to [0, 1].
func NewColorMap(cm palette.ColorMap) ColorMap {
	cm.SetMin(0)
	cm.SetMax(1)
	return ColorMap{cm: cm}
}

// BlackBody is Kenneth Moreland's extended black body ramp (black, red, yellow, white).
func BlackBody() ColorMap {
	return NewColorMap(moreland.ExtendedBlackBody())
}

// At evaluates the ramp at t.
func (m ColorMap) At(t float64) colorful.Color {
	c, err := m.cm.At(clamp01(t))
	if err != nil {
		// only reachable for a broken color map, t is always in range
		return colorful.Color{}
	}
	cc, _ := colorful.MakeColor(c)
	return cc
}
