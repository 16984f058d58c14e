// Package contour traces isolines through elevation rasters and draws them onto
// relief images.
//
// Line coordinates are in grid space: x is the column and y the row of a cell,
// growing right and down like image pixels.
package contour

import (
	"math"

	"github.com/ShahidHasib586/dem-viewer/internal/dem"
	"github.com/paulmach/orb"
)

// upper bound for Levels, a tiny interval on a tall raster would otherwise never finish
const maxLevels = 1000

// Levels returns the multiples of interval strictly between rng.Min and rng.Max,
// ascending. At most 1000 levels are returned.
func Levels(rng dem.Range, interval float64) []float64 {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) || rng.Flat() {
		return nil
	}

	var levels []float64
	for k := math.Floor(rng.Min/interval) + 1; k*interval < rng.Max && len(levels) < maxLevels; k++ {
		levels = append(levels, k*interval)
	}
	return levels
}

// Lines traces the contour lines of raster for every level.
func Lines(raster *dem.EsriASCIIRaster, levels []float64) orb.MultiLineString {
	var lines orb.MultiLineString
	for _, level := range levels {
		lines = append(lines, MarchingSquares(raster, level)...)
	}
	return lines
}

// MarchingSquares calculates the contour lines for given raster and height.
// Squares with a no-data corner are skipped. Segments sharing an end point are
// stitched into one line string.
func MarchingSquares(raster *dem.EsriASCIIRaster, height float64) []orb.LineString {
	s := stitcher{ends: map[orb.Point]int{}}

	for row := 0; row < raster.Nrows-1; row++ {
		for col := 0; col < raster.Ncols-1; col++ {
			for _, segment := range calcLinesForColRow(raster, col, row, height) {
				s.add(segment[0], segment[1])
			}
		}
	}

	return s.result()
}

func calcLinesForColRow(raster *dem.EsriASCIIRaster, col int, row int, height float64) [][2]orb.Point {
	tlHeight := raster.Z(col, row)
	trHeight := raster.Z(col+1, row)
	brHeight := raster.Z(col+1, row+1)
	blHeight := raster.Z(col, row+1)

	if raster.IsNoData(tlHeight) || raster.IsNoData(trHeight) || raster.IsNoData(brHeight) || raster.IsNoData(blHeight) {
		return nil
	}

	leftX := float64(col)
	rightX := float64(col + 1)
	topY := float64(row)
	bottomY := float64(row + 1)

	// find MS "case"
	index := 0
	if tlHeight > height {
		index |= 8
	}
	if trHeight > height {
		index |= 4
	}
	if brHeight > height {
		index |= 2
	}
	if blHeight > height {
		index |= 1
	}

	top := func() orb.Point {
		return orb.Point{interpolate(leftX, tlHeight, rightX, trHeight, height), topY}
	}
	left := func() orb.Point {
		return orb.Point{leftX, interpolate(bottomY, blHeight, topY, tlHeight, height)}
	}
	bottom := func() orb.Point {
		return orb.Point{interpolate(leftX, blHeight, rightX, brHeight, height), bottomY}
	}
	right := func() orb.Point {
		return orb.Point{rightX, interpolate(bottomY, brHeight, topY, trHeight, height)}
	}

	switch index {
	case 1, 14:
		return [][2]orb.Point{{bottom(), left()}}
	case 2, 13:
		return [][2]orb.Point{{right(), bottom()}}
	case 3, 12:
		return [][2]orb.Point{{right(), left()}}
	case 4, 11:
		return [][2]orb.Point{{top(), right()}}
	case 5:
		// saddle
		return [][2]orb.Point{{left(), top()}, {bottom(), right()}}
	case 6, 9:
		return [][2]orb.Point{{top(), bottom()}}
	case 7, 8:
		return [][2]orb.Point{{left(), top()}}
	case 10:
		// saddle
		return [][2]orb.Point{{left(), bottom()}, {top(), right()}}
	}

	// 0 and 15: all corners on one side
	return nil
}

func interpolate(c0, h0, c1, h1, height float64) float64 {
	return (c0*(h1-height) + c1*(height-h0)) / (h1 - h0)
}

// stitcher joins segments into line strings by their open end points.
// Neighbouring squares interpolate shared edges with identical arguments, so
// shared points compare equal exactly.
type stitcher struct {
	lines []orb.LineString
	ends  map[orb.Point]int
}

func (s *stitcher) add(a, b orb.Point) {
	if a == b {
		return
	}

	i, okA := s.ends[a]
	j, okB := s.ends[b]

	switch {
	case !okA && !okB:
		s.lines = append(s.lines, orb.LineString{a, b})
		s.ends[a] = len(s.lines) - 1
		s.ends[b] = len(s.lines) - 1

	case okA && !okB:
		delete(s.ends, a)
		s.lines[i] = attach(s.lines[i], a, b)
		s.ends[b] = i

	case !okA && okB:
		delete(s.ends, b)
		s.lines[j] = attach(s.lines[j], b, a)
		s.ends[a] = j

	case i == j:
		// closes a ring
		delete(s.ends, a)
		delete(s.ends, b)
		s.lines[i] = attach(s.lines[i], a, b)

	default:
		delete(s.ends, a)
		delete(s.ends, b)

		first, second := s.lines[i], s.lines[j]
		if first[0] == a {
			first.Reverse()
		}
		if second[len(second)-1] == b {
			second.Reverse()
		}

		merged := append(first, second...)
		s.lines[i] = merged
		s.lines[j] = nil
		s.ends[merged[0]] = i
		s.ends[merged[len(merged)-1]] = i
	}
}

// attach adds p next to the end point at of line
func attach(line orb.LineString, at, p orb.Point) orb.LineString {
	if line[len(line)-1] == at {
		return append(line, p)
	}
	return append(orb.LineString{p}, line...)
}

func (s *stitcher) result() []orb.LineString {
	lines := make([]orb.LineString, 0, len(s.lines))
	for _, line := range s.lines {
		if line != nil {
			lines = append(lines, line)
		}
	}
	return lines
}
