package dem

import (
	"github.com/paulmach/orb"
)

// EsriASCIIRaster represents a ESRI ASCII Grid with its samples stored row-major
// in a flat slice. len(Data) is always Ncols * Nrows for a parsed raster.
type EsriASCIIRaster struct {
	Ncols, Nrows int
	// Xll and Yll are the lower-left coordinates of the grid. Center reports
	// whether the header declared them as XLLCENTER/YLLCENTER instead of corners.
	Xll, Yll    float64
	Center      bool
	CellSize    float64
	NoDataValue float64
	Data        []float64
}

// Dims returns the dimensions of the grid.
func (raster *EsriASCIIRaster) Dims() (c, r int) {
	return raster.Ncols, raster.Nrows
}

// Index returns the offset of cell (c, r) in Data.
func (raster *EsriASCIIRaster) Index(c, r int) int {
	return r*raster.Ncols + c
}

// Z returns the value of a grid value at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (raster *EsriASCIIRaster) Z(c, r int) float64 {
	return raster.Data[r*raster.Ncols+c]
}

// IsNoData reports whether v is the raster's no-data sentinel. The comparison is
// exact, the sentinel is matched as stored.
func (raster *EsriASCIIRaster) IsNoData(v float64) bool {
	return v == raster.NoDataValue
}

// Valid reports whether the sample at offset i holds an elevation.
func (raster *EsriASCIIRaster) Valid(i int) bool {
	return raster.Data[i] != raster.NoDataValue
}

// Extent returns the area covered by the grid in the raster's own coordinate system.
func (raster *EsriASCIIRaster) Extent() orb.Bound {
	minX, minY := raster.Xll, raster.Yll
	if raster.Center {
		minX -= raster.CellSize / 2
		minY -= raster.CellSize / 2
	}

	return orb.Bound{
		Min: orb.Point{minX, minY},
		Max: orb.Point{minX + float64(raster.Ncols)*raster.CellSize, minY + float64(raster.Nrows)*raster.CellSize},
	}
}
