package utils

import (
	"image"
	"math"
)

// TileSize is the edge length of a tile in pixels.
const TileSize = 256

// CalcMaxLodFromImage calculates the LOD at which tiles show the image at its
// native resolution, based on the longer side of img.
func CalcMaxLodFromImage(img image.Image) uint8 {
	side := float64(max(img.Bounds().Dx(), img.Bounds().Dy()))

	tilesPerRowCol := math.Ceil(side / TileSize)
	if tilesPerRowCol <= 1 {
		return 0
	}

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
