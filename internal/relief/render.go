// Package relief turns elevation rasters into pixel buffers: grayscale and color
// elevation maps, hillshades and their composite.
//
// Every function here is pure. Inputs are only read, each call allocates a fresh
// Image, and nothing is logged.
package relief

import (
	"fmt"

	"github.com/ShahidHasib586/dem-viewer/internal/dem"
)

// Render produces the image for mode. Modes that normalize elevation fail with
// *dem.EmptyDataError when raster has no valid samples.
func Render(raster *dem.EsriASCIIRaster, mode Mode, opts Options) (*Image, error) {
	opts = opts.withDefaults()

	switch mode {
	case ModeGrayscale:
		rng, err := raster.Range()
		if err != nil {
			return nil, err
		}
		return Grayscale(raster, rng, opts), nil

	case ModeColor:
		rng, err := raster.Range()
		if err != nil {
			return nil, err
		}
		return Color(raster, rng, opts), nil

	case ModeHillshade:
		return Hillshade(raster, opts), nil

	case ModeColorHillshade:
		rng, err := raster.Range()
		if err != nil {
			return nil, err
		}
		return Composite(Color(raster, rng, opts), Hillshade(raster, opts), opts)

	case ModeTerrainRGB:
		return TerrainRGB(raster, opts), nil
	}

	return nil, &UnknownModeError{Mode: fmt.Sprint(mode)}
}
