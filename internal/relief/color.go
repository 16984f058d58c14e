package relief

import (
	"github.com/ShahidHasib586/dem-viewer/internal/dem"
)

// Color normalizes every valid sample to t in [0, 1] over rng and looks it up in
// opts.Gradient. Channels are scaled to bytes by truncation. No-data cells are black.
// On flat terrain every valid cell gets the color at t = 0.
func Color(raster *dem.EsriASCIIRaster, rng dem.Range, opts Options) *Image {
	opts = opts.withDefaults()
	img := newImage(raster.Ncols, raster.Nrows, 3)

	span := rng.Max - rng.Min

	forEachRow(raster.Nrows, opts.Workers, func(y int) {
		for i := y * raster.Ncols; i < (y+1)*raster.Ncols; i++ {
			if !raster.Valid(i) {
				continue
			}

			t := 0.0
			if span > 0 {
				t = (raster.Data[i] - rng.Min) / span
			}
			c := opts.Gradient.At(clamp01(t))

			img.Pix[i*3] = clampByte(c.R * 255)
			img.Pix[i*3+1] = clampByte(c.G * 255)
			img.Pix[i*3+2] = clampByte(c.B * 255)
		}
	})

	return img
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
