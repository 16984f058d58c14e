package relief

import (
	"github.com/ShahidHasib586/dem-viewer/internal/dem"
)

// Grayscale maps every valid sample linearly from [rng.Min, rng.Max] to [0, 255],
// truncating the fraction. No-data cells are 0. On flat terrain every valid cell is 0.
func Grayscale(raster *dem.EsriASCIIRaster, rng dem.Range, opts Options) *Image {
	opts = opts.withDefaults()
	img := newImage(raster.Ncols, raster.Nrows, 1)

	scale := 0.0
	if !rng.Flat() {
		scale = 255 / (rng.Max - rng.Min)
	}

	forEachRow(raster.Nrows, opts.Workers, func(y int) {
		for i := y * raster.Ncols; i < (y+1)*raster.Ncols; i++ {
			if !raster.Valid(i) {
				continue
			}
			img.Pix[i] = clampByte((raster.Data[i] - rng.Min) * scale)
		}
	})

	return img
}
