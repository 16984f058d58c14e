package preview

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestBuild(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	base := filepath.Join(t.TempDir(), "relief.png")
	img := image.NewGray(image.Rect(0, 0, 600, 300))

	paths, err := Build(img, base, Sizes, log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want the 128 and 256 previews", paths)
	}

	want := filepath.Join(filepath.Dir(base), "relief_256.png")
	if paths[1] != want {
		t.Errorf("paths[1] = %s, want %s", paths[1], want)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	small, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if small.Bounds().Dx() != 256 || small.Bounds().Dy() != 128 {
		t.Errorf("x128 preview is %v, want 256x128", small.Bounds())
	}
}
