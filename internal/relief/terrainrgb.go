package relief

import (
	"github.com/ShahidHasib586/dem-viewer/internal/dem"
	"github.com/ShahidHasib586/dem-viewer/internal/terrainrgb"
)

// TerrainRGB encodes every valid sample as a Mapbox Terrain-RGB color.
// No-data cells are black.
func TerrainRGB(raster *dem.EsriASCIIRaster, opts Options) *Image {
	opts = opts.withDefaults()
	img := newImage(raster.Ncols, raster.Nrows, 3)

	forEachRow(raster.Nrows, opts.Workers, func(y int) {
		for i := y * raster.Ncols; i < (y+1)*raster.Ncols; i++ {
			if !raster.Valid(i) {
				continue
			}
			c := terrainrgb.HeightToRgb(raster.Data[i])
			img.Pix[i*3] = c.R
			img.Pix[i*3+1] = c.G
			img.Pix[i*3+2] = c.B
		}
	})

	return img
}
