package contour

import (
	"image/color"
	"math"

	"github.com/ShahidHasib586/dem-viewer/internal/relief"
	"github.com/paulmach/orb"
)

// Overlay draws lines onto a copy of img and returns the copy, img is left untouched.
// Gray images get the luminance of c.
func Overlay(img *relief.Image, lines orb.MultiLineString, c color.RGBA) *relief.Image {
	out := img.Clone()

	value := []uint8{c.R, c.G, c.B}
	if out.Channels == 1 {
		value = []uint8{color.GrayModel.Convert(c).(color.Gray).Y}
	}

	plot := func(x, y int) {
		if x < 0 || y < 0 || x >= out.Width || y >= out.Height {
			return
		}
		copy(out.Pix[(y*out.Width+x)*out.Channels:], value)
	}

	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			drawSegment(line[i-1], line[i], plot)
		}
	}

	return out
}

// drawSegment walks from a to b in unit steps along the longer axis.
func drawSegment(a, b orb.Point, plot func(x, y int)) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		plot(int(math.Round(a[0])), int(math.Round(a[1])))
		return
	}

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		plot(int(math.Round(a[0]+t*dx)), int(math.Round(a[1]+t*dy)))
	}
}
