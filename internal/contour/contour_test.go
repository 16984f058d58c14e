package contour

import (
	"image/color"
	"testing"

	"github.com/ShahidHasib586/dem-viewer/internal/dem"
	"github.com/ShahidHasib586/dem-viewer/internal/relief"
	"github.com/paulmach/orb"
)

func cone(size int) *dem.EsriASCIIRaster {
	data := make([]float64, 0, size*size)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			data = append(data, 100-(dx*dx+dy*dy))
		}
	}
	return &dem.EsriASCIIRaster{Ncols: size, Nrows: size, NoDataValue: -9999, Data: data}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name     string
		rng      dem.Range
		interval float64
		want     []float64
	}{
		{"simple", dem.Range{Min: 3, Max: 31}, 10, []float64{10, 20, 30}},
		{"exact bounds excluded", dem.Range{Min: 10, Max: 30}, 10, []float64{20}},
		{"negative", dem.Range{Min: -25, Max: 5}, 10, []float64{-20, -10, 0}},
		{"off", dem.Range{Min: 0, Max: 100}, 0, nil},
		{"flat", dem.Range{Min: 5, Max: 5}, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Levels(tt.rng, tt.interval)
			if len(got) != len(tt.want) {
				t.Fatalf("Levels() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Levels() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestLevels_Capped(t *testing.T) {
	if got := Levels(dem.Range{Min: 0, Max: 1e9}, 1); len(got) != maxLevels {
		t.Errorf("len(Levels()) = %d, want %d", len(got), maxLevels)
	}
}

func TestMarchingSquares_Ring(t *testing.T) {
	raster := cone(11)

	lines := MarchingSquares(raster, 90)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 closed ring", len(lines))
	}

	ring := lines[0]
	if ring[0] != ring[len(ring)-1] {
		t.Errorf("line isn't closed: starts %v, ends %v", ring[0], ring[len(ring)-1])
	}

	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
	for _, p := range ring {
		if !bound.Contains(p) {
			t.Errorf("point %v outside of the grid", p)
		}
	}
}

func TestMarchingSquares_Straight(t *testing.T) {
	// z = x, level 1.5 is the vertical line x = 1.5
	raster := &dem.EsriASCIIRaster{Ncols: 4, Nrows: 3, NoDataValue: -1, Data: []float64{
		0, 1, 2, 3,
		0, 1, 2, 3,
		0, 1, 2, 3,
	}}

	lines := MarchingSquares(raster, 1.5)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if len(lines[0]) != 3 {
		t.Errorf("line = %v, want 3 points", lines[0])
	}
	for _, p := range lines[0] {
		if p[0] != 1.5 {
			t.Errorf("point %v, want x = 1.5", p)
		}
	}
}

func TestMarchingSquares_SkipsNoData(t *testing.T) {
	raster := &dem.EsriASCIIRaster{Ncols: 2, Nrows: 2, NoDataValue: -1, Data: []float64{
		0, 10,
		-1, 10,
	}}

	if lines := MarchingSquares(raster, 5); len(lines) != 0 {
		t.Errorf("lines = %v, want none", lines)
	}
}

func TestOverlay(t *testing.T) {
	img := &relief.Image{Pix: make([]uint8, 5*5*3), Width: 5, Height: 5, Channels: 3}
	lines := orb.MultiLineString{{{0, 2}, {4, 2}}}

	out := Overlay(img, lines, color.RGBA{R: 255, A: 255})

	for x := 0; x < 5; x++ {
		i := (2*5 + x) * 3
		if out.Pix[i] != 255 || out.Pix[i+1] != 0 || out.Pix[i+2] != 0 {
			t.Errorf("pixel (%d, 2) = %v, want red", x, out.Pix[i:i+3])
		}
	}
	if out.Pix[0] != 0 {
		t.Errorf("pixel (0, 0) = %d, want untouched", out.Pix[0])
	}
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestOverlay_GrayAndClipping(t *testing.T) {
	img := &relief.Image{Pix: make([]uint8, 3*3), Width: 3, Height: 3, Channels: 1}
	lines := orb.MultiLineString{{{-5, 1}, {10, 1}}}

	out := Overlay(img, lines, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	for x := 0; x < 3; x++ {
		if v := out.Pix[3+x]; v != 255 {
			t.Errorf("pixel (%d, 1) = %d, want 255", x, v)
		}
	}
}

func TestSimplify(t *testing.T) {
	lines := orb.MultiLineString{
		{{0, 0}, {1, 0.1}, {2, 0}, {3, 0.1}, {4, 0}},
		{{0, 0}, {2, 2}, {4, 0}},
	}

	got := Simplify(lines, 0.5)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if len(got[0]) != 2 {
		t.Errorf("wiggly line kept %d points, want 2", len(got[0]))
	}
	if len(got[1]) != 3 {
		t.Errorf("corner line kept %d points, want 3", len(got[1]))
	}
}

func TestSimplify_Disabled(t *testing.T) {
	lines := orb.MultiLineString{{{0, 0}, {1, 0.1}, {2, 0}}}
	if got := Simplify(lines, 0); len(got[0]) != 3 {
		t.Errorf("Simplify(0) kept %d points, want 3", len(got[0]))
	}
}
