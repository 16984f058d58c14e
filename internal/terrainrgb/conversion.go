// Package terrainrgb encodes elevations as Mapbox Terrain-RGB colors.
package terrainrgb

import (
	"image/color"
	"math"
)

/*
	The Mapbox Terrain-RGB encoding decodes heights from rgb with

	height = -10000 + ((R * 256 * 256 + G * 256 + B) * 0.1)

	Writing x for (R * 256 * 256 + G * 256 + B) and solving for x gives
	x = 10 * height + 100000

	x is a three digit number in base 256: digit 2 is r, digit 1 is g and digit 0 is b.
	Heights outside of [-10000, MaxHeight] are clamped to the encodable range.
*/

const maxX = 256*256*256 - 1

// MaxHeight is the highest encodable height.
const MaxHeight = -10000 + maxX*0.1

// HeightToRgb calculates rgb values from height
func HeightToRgb(height float64) color.RGBA {
	x := int64(math.Round(10*height + 100000))
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}

	return color.RGBA{
		R: uint8(x >> 16),
		G: uint8(x >> 8),
		B: uint8(x),
		A: 255,
	}
}

// RgbToHeight calculates height from given rgb values
func RgbToHeight(c color.RGBA) float64 {
	x := int64(c.R)<<16 | int64(c.G)<<8 | int64(c.B)

	return -10000 + float64(x)*0.1
}
