package utils

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
)

// SaveImage encodes img as PNG to path.
func SaveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}

	return errors.Wrapf(out.Close(), "closing %s", path)
}
