// Package tilejson writes TileJSON documents describing a relief tile pyramid.
package tilejson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// TileJSON represents a tile.json
type TileJSON struct {
	TileJSON    string   `json:"tilejson"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Scheme      string   `json:"scheme"`
	Tiles       []string `json:"tiles"`
	Minzoom     uint8    `json:"minzoom"`
	Maxzoom     uint8    `json:"maxzoom"`
}

// New describes an xyz pyramid of PNG tiles from LOD 0 to maxLod.
func New(name string, mode string, maxLod uint8) TileJSON {
	return TileJSON{
		TileJSON:    "2.2.0",
		Name:        fmt.Sprintf("%s %s Tiles", name, mode),
		Description: fmt.Sprintf("%s tiles rendered from the elevation model '%s'", mode, name),
		Scheme:      "xyz",
		Tiles:       []string{"{z}/{x}/{y}.png"},
		Minzoom:     0,
		Maxzoom:     maxLod,
	}
}

// Write a tile.json into outputDirectory
func Write(outputDirectory string, obj TileJSON) error {
	bytes, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshalling tile.json")
	}

	path := filepath.Join(outputDirectory, "tile.json")
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}
