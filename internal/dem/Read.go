package dem

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Read digital elevation model from given path. Files ending in .gz are
// decompressed on the fly.
func Read(path string) (*EsriASCIIRaster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
		defer gz.Close()

		reader = gz
	}

	raster, err := ParseEsriASCIIRaster(reader)
	if err != nil {
		if ioErr, ok := err.(*IOError); ok {
			ioErr.Path = path
		}
		return nil, err
	}

	return raster, nil
}
