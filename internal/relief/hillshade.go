package relief

import (
	"math"

	"github.com/ShahidHasib586/dem-viewer/internal/dem"
)

// Hillshade estimates the illumination of every interior cell with Horn's 3x3 kernel.
// Border cells and no-data cells are 0.
//
// The shading term uses 1 - atan(|gradient|) as the slope angle:
//
//	shade = max(0, sin(alt)*cos(1-atan(m)) + cos(alt)*sin(1-atan(m))*cos(az-aspect))
//
// rather than the textbook cos(slope)/sin(slope). Existing renders depend on it.
func Hillshade(raster *dem.EsriASCIIRaster, opts Options) *Image {
	opts = opts.withDefaults()

	width, height := raster.Dims()
	img := newImage(width, height, 1)

	azimuth := opts.Light.Azimuth * math.Pi / 180
	altitude := opts.Light.Altitude * math.Pi / 180
	sinAlt, cosAlt := math.Sincos(altitude)
	scale := opts.ZFactor

	forEachRow(height, opts.Workers, func(y int) {
		if y == 0 || y >= height-1 {
			return
		}

		for x := 1; x < width-1; x++ {
			center := raster.Index(x, y)
			if !raster.Valid(center) {
				continue
			}

			// no-data neighbours take part with their sentinel value
			get := func(dx, dy int) float64 {
				return raster.Z(x+dx, y+dy)
			}

			dzdx := ((get(1, -1) + 2*get(1, 0) + get(1, 1)) -
				(get(-1, -1) + 2*get(-1, 0) + get(-1, 1))) / (8 * scale)
			dzdy := ((get(-1, 1) + 2*get(0, 1) + get(1, 1)) -
				(get(-1, -1) + 2*get(0, -1) + get(1, -1))) / (8 * scale)

			slope := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
			aspect := math.Atan2(dzdy, -dzdx)

			tilt := 1 - math.Atan(slope)
			shade := math.Max(0, sinAlt*math.Cos(tilt)+cosAlt*math.Sin(tilt)*math.Cos(azimuth-aspect))

			img.Pix[center] = clampByte(shade * 255)
		}
	})

	return img
}
