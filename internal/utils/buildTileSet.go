package utils

import (
	"context"
	"image"
	"image/draw"
	"math"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// BuildTileSet builds the XYZ tiles of given LOD from img and hands them to w.
//
// The tiles cover a square with the side of the longer image edge, anchored at the
// top left corner. Parts of a tile outside of img stay transparent, tiles entirely
// outside are not written. Rows count from the top. It returns the number of
// tiles written.
func BuildTileSet(ctx context.Context, lod uint8, img image.Image, w TileWriter, log logrus.FieldLogger) (int, error) {
	tilesPerRowCol := int(math.Pow(2, float64(lod)))

	bounds := img.Bounds()
	side := max(bounds.Dx(), bounds.Dy())

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		written  int
	)

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

tiles:
	for col := 0; col < tilesPerRowCol; col++ {
		x0 := bounds.Min.X + col*side/tilesPerRowCol
		x1 := bounds.Min.X + (col+1)*side/tilesPerRowCol

		for row := 0; row < tilesPerRowCol; row++ {
			y0 := bounds.Min.Y + row*side/tilesPerRowCol
			y1 := bounds.Min.Y + (row+1)*side/tilesPerRowCol

			rect := image.Rect(x0, y0, x1, y1)
			if rect.Intersect(bounds).Empty() {
				continue
			}

			if err := ctx.Err(); err != nil {
				fail(err)
				break tiles
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				fail(err)
				break tiles
			}

			wg.Add(1)
			go func(col int, row int, rect image.Rectangle) {
				defer wg.Done()
				defer sem.Release(1)

				if err := w.WriteTile(lod, col, row, createTile(img, rect)); err != nil {
					fail(err)
					return
				}

				mu.Lock()
				written++
				mu.Unlock()

				log.WithFields(logrus.Fields{"lod": lod, "col": col, "row": row}).Debug("wrote tile")
			}(col, row, rect)
		}
	}

	wg.Wait()

	return written, firstErr
}

// createTile scales the part of img inside rect to a TileSize x TileSize tile.
func createTile(img image.Image, rect image.Rectangle) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	visible := rect.Intersect(img.Bounds())
	scale := float64(TileSize) / float64(rect.Dx())

	w := uint(math.Max(1, math.Round(float64(visible.Dx())*scale)))
	h := uint(math.Max(1, math.Round(float64(visible.Dy())*scale)))

	sub := subImage(img, visible)
	scaled := resize.Resize(w, h, sub, resize.MitchellNetravali)

	offset := image.Pt(
		int(math.Round(float64(visible.Min.X-rect.Min.X)*scale)),
		int(math.Round(float64(visible.Min.Y-rect.Min.Y)*scale)),
	)
	draw.Draw(tile, scaled.Bounds().Sub(scaled.Bounds().Min).Add(offset), scaled, scaled.Bounds().Min, draw.Src)

	return tile
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
