package main

import (
	"image/color"
	"time"

	"github.com/ShahidHasib586/dem-viewer/internal/contour"
	"github.com/ShahidHasib586/dem-viewer/internal/dem"
	"github.com/ShahidHasib586/dem-viewer/internal/relief"
	"github.com/ShahidHasib586/dem-viewer/internal/validate"
)

var contourColor = color.RGBA{R: 40, G: 26, B: 13, A: 255}

// deviation in cells a simplified contour line may have from the traced one
const contourTolerance = 0.5

// load validates and reads the DEM at path.
func (a *app) load(path string) (*dem.EsriASCIIRaster, error) {
	if err := validate.InputFile(path); err != nil {
		return nil, err
	}

	timer := time.Now()
	a.log.Info("▶️  Loading DEM")
	raster, err := dem.Read(path)
	if err != nil {
		return nil, err
	}
	a.log.Infof("✔️  Loaded %dx%d DEM in %s", raster.Ncols, raster.Nrows, time.Since(timer))

	return raster, nil
}

// render runs the configured mode and draws contours on top if an interval is set.
func (a *app) render(raster *dem.EsriASCIIRaster) (*relief.Image, error) {
	timer := time.Now()
	a.log.Infof("▶️  Rendering %s", a.cfg.Mode)
	img, err := relief.Render(raster, a.cfg.Mode, a.cfg.Options())
	if err != nil {
		return nil, err
	}
	a.log.Infof("✔️  Rendered %s in %s", a.cfg.Mode, time.Since(timer))

	if a.cfg.Contours <= 0 {
		return img, nil
	}
	if a.cfg.Mode == relief.ModeTerrainRGB {
		// lines would corrupt the encoded heights
		a.log.Warn("⚠️  Contours are not drawn on terrain-rgb output")
		return img, nil
	}

	rng, err := raster.Range()
	if err != nil {
		return nil, err
	}

	timer = time.Now()
	levels := contour.Levels(rng, a.cfg.Contours)
	a.log.Infof("▶️  Tracing %d contour levels", len(levels))
	lines := contour.Simplify(contour.Lines(raster, levels), contourTolerance)
	img = contour.Overlay(img, lines, contourColor)
	a.log.Infof("✔️  Drew %d contour lines in %s", len(lines), time.Since(timer))

	return img, nil
}
