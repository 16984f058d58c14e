package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShahidHasib586/dem-viewer/internal/tilejson"
	"github.com/sirupsen/logrus"
)

const grid = `ncols 4
nrows 3
xllcorner 100
yllcorner 200
cellsize 10
nodata_value -9999
1 2 3 4
5 6 -9999 8
9 10 11 12
`

func writeGrid(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hills.asc")
	if err := os.WriteFile(path, []byte(grid), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	root := newRoot(log)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", writeGrid(t))
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}

	for _, want := range []string{
		"size:      4 x 3",
		"extent:    100 200 140 230",
		"nodata:    -9999",
		"valid:     11 of 12",
		"elevation: 1 to 12",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestStats_AllNoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "void.asc")
	content := "ncols 2\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\nnodata_value -9999\n-9999 -9999\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "stats", path)
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	if !strings.Contains(out, "valid:     0 of 2") {
		t.Errorf("output misses the valid count:\n%s", out)
	}
	if strings.Contains(out, "elevation:") {
		t.Errorf("output has an elevation range for an empty DEM:\n%s", out)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		mode  string
		model string
	}{
		{"grayscale", "gray"},
		{"hillshade", "gray"},
		{"color", "rgba"},
		{"color+hillshade", "rgba"},
		{"terrain-rgb", "rgba"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.png")
			if _, err := execute(t, "render", writeGrid(t), "--mode", tt.mode, "--contours", "5", "-o", out); err != nil {
				t.Fatalf("render error = %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
				t.Errorf("bounds = %v, want 4x3", img.Bounds())
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeGrid(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing out", []string{"render", input}},
		{"missing input", []string{"render", filepath.Join(dir, "nope.asc"), "-o", filepath.Join(dir, "out.png")}},
		{"out in missing dir", []string{"render", input, "-o", filepath.Join(dir, "nope", "out.png")}},
		{"unknown mode", []string{"render", input, "--mode", "sepia", "-o", filepath.Join(dir, "out.png")}},
		{"no args", []string{"render"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("error = nil, want error")
			}
		})
	}
}

func TestTiles(t *testing.T) {
	out := t.TempDir()
	if _, err := execute(t, "tiles", writeGrid(t), "--mode", "hillshade", "-o", out); err != nil {
		t.Fatalf("tiles error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "0", "0", "0.png")); err != nil {
		t.Errorf("LOD 0 tile missing: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(out, "tile.json"))
	if err != nil {
		t.Fatal(err)
	}
	var tj tilejson.TileJSON
	if err := json.Unmarshal(raw, &tj); err != nil {
		t.Fatal(err)
	}
	if tj.Name != "hills hillshade Tiles" || tj.Maxzoom != 0 {
		t.Errorf("tile.json = %+v", tj)
	}
}

func TestTiles_MBTiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hills.mbtiles")
	if _, err := execute(t, "tiles", writeGrid(t), "--mbtiles", path); err != nil {
		t.Fatalf("tiles error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("MBTiles file missing or empty: %v", err)
	}
}

func TestTiles_OutputRequired(t *testing.T) {
	input := writeGrid(t)
	dir := t.TempDir()

	if _, err := execute(t, "tiles", input); err == nil {
		t.Error("tiles without output: error = nil, want error")
	}
	if _, err := execute(t, "tiles", input, "-o", dir, "--mbtiles", filepath.Join(dir, "x.mbtiles")); err == nil {
		t.Error("tiles with both outputs: error = nil, want error")
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"alps.asc":         "alps",
		"data/alps.asc.gz": "alps",
		"alps":             "alps",
	}
	for in, want := range tests {
		if got := baseName(in); got != want {
			t.Errorf("baseName(%s) = %s, want %s", in, got, want)
		}
	}
}
