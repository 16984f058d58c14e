package dem

import (
	"errors"
	"strings"
	"testing"
)

func TestEsriASCIIRaster_Range(t *testing.T) {
	tests := []struct {
		name      string
		data      []float64
		wantMin   float64
		wantMax   float64
		wantCount int
	}{
		{"all valid", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 1, 9, 9},
		{"no-data excluded", []float64{-99999, 3, 7, -99999}, 3, 7, 2},
		{"negative elevations", []float64{-12.5, -3, -99999}, -12.5, -3, 2},
		{"flat", []float64{4, 4, -99999, 4}, 4, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raster := &EsriASCIIRaster{Ncols: len(tt.data), Nrows: 1, NoDataValue: -99999, Data: tt.data}

			rng, err := raster.Range()
			if err != nil {
				t.Fatalf("Range() error = %v", err)
			}
			if rng.Min != tt.wantMin || rng.Max != tt.wantMax || rng.Count != tt.wantCount {
				t.Errorf("Range() = %+v, want {Min:%v Max:%v Count:%d}", rng, tt.wantMin, tt.wantMax, tt.wantCount)
			}
		})
	}
}

func TestEsriASCIIRaster_Range_Empty(t *testing.T) {
	raster := &EsriASCIIRaster{Ncols: 2, Nrows: 1, NoDataValue: -1, Data: []float64{-1, -1}}

	_, err := raster.Range()

	var emptyErr *EmptyDataError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("Range() error = %v, want *EmptyDataError", err)
	}
	if emptyErr.Samples != 2 {
		t.Errorf("EmptyDataError.Samples = %d, want 2", emptyErr.Samples)
	}
}

func TestEsriASCIIRaster_Range_EndToEnd(t *testing.T) {
	raster, err := ParseEsriASCIIRaster(strings.NewReader(grid3x3))
	if err != nil {
		t.Fatal(err)
	}

	rng, err := raster.Range()
	if err != nil {
		t.Fatal(err)
	}
	if rng.Min != 1 || rng.Max != 9 {
		t.Errorf("Range() = %+v, want min 1 max 9", rng)
	}
	if rng.Flat() {
		t.Error("Flat() = true, want false")
	}
}
