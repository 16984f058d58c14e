package gradient

import "github.com/lucasb-eyer/go-colorful"

// Turbo is a polynomial approximation of Google's Turbo rainbow colormap.
type Turbo struct{}

// At evaluates the ramp at t.
func (Turbo) At(t float64) colorful.Color {
	t = clamp01(t)

	r := 34.61 + t*(1172.33-t*(10793.56-t*(33300.12-t*(38394.49-t*14825.05))))
	g := 23.31 + t*(557.33+t*(1225.33-t*(3574.96-t*(1073.77+t*707.56))))
	b := 27.2 + t*(3211.1-t*(15327.97-t*(27814-t*(22569.18-t*6838.66))))

	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped()
}
