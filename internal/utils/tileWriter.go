package utils

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// TileWriter stores finished tiles. Implementations must be safe for concurrent use.
type TileWriter interface {
	WriteTile(lod uint8, col, row int, tile image.Image) error
}

// DirectoryWriter writes tiles as PNG files to {dir}/{lod}/{col}/{row}.png.
type DirectoryWriter string

// WriteTile implements TileWriter.
func (dir DirectoryWriter) WriteTile(lod uint8, col, row int, tile image.Image) error {
	dirPath := filepath.Join(string(dir), fmt.Sprintf("%d", lod), fmt.Sprintf("%d", col))
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return errors.Wrapf(err, "creating %s", dirPath)
	}

	return SaveImage(filepath.Join(dirPath, fmt.Sprintf("%d.png", row)), tile)
}
