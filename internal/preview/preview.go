// Package preview writes downscaled copies of a rendered image.
package preview

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/ShahidHasib586/dem-viewer/internal/utils"
	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
)

// Sizes are the preview heights in pixels.
var Sizes = []uint{128, 256, 512, 1024}

// Build writes one preview per size next to basePath, named <base>_<size>.png, and
// returns the written paths. Sizes taller than img are skipped, previews are never upscaled.
func Build(img image.Image, basePath string, sizes []uint, log logrus.FieldLogger) ([]string, error) {
	height := img.Bounds().Dy()
	width := img.Bounds().Dx()

	base := strings.TrimSuffix(basePath, filepath.Ext(basePath))

	var written []string
	for _, size := range sizes {
		if int(size) >= height {
			log.WithField("size", size).Debug("skipping preview larger than the image")
			continue
		}

		timer := time.Now()
		log.Infof("▶️  Building x%d preview", size)

		factor := float64(size) / float64(height)
		w := uint(max(1, int(float64(width)*factor)))

		scaled := resize.Resize(w, size, img, resize.MitchellNetravali)

		path := fmt.Sprintf("%s_%d.png", base, size)
		if err := utils.SaveImage(path, scaled); err != nil {
			return written, err
		}
		written = append(written, path)

		log.Infof("✔️  Built x%d in %s", size, time.Since(timer))
	}

	return written, nil
}
