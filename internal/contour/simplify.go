package contour

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Simplify reduces the vertices of lines with Douglas-Peucker. threshold is the
// allowed deviation in cells. Lines are modified in place and returned.
func Simplify(lines orb.MultiLineString, threshold float64) orb.MultiLineString {
	if threshold <= 0 {
		return lines
	}
	return simplify.DouglasPeucker(threshold).MultiLineString(lines)
}
