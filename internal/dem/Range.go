package dem

import (
	"gonum.org/v1/gonum/floats"
)

// Range holds the elevation statistics of the valid samples of a raster.
type Range struct {
	Min, Max float64
	// Count is the number of valid samples.
	Count int
}

// Flat reports whether all valid samples share one elevation.
func (rng Range) Flat() bool {
	return rng.Max == rng.Min
}

// Range computes min and max over all samples which aren't the no-data value.
// A raster without any valid sample yields an *EmptyDataError.
func (raster *EsriASCIIRaster) Range() (Range, error) {
	valid := make([]float64, 0, len(raster.Data))
	for i, v := range raster.Data {
		if raster.Valid(i) {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return Range{}, &EmptyDataError{Samples: len(raster.Data)}
	}

	return Range{
		Min:   floats.Min(valid),
		Max:   floats.Max(valid),
		Count: len(valid),
	}, nil
}
