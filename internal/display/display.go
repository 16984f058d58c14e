// Package display shows rendered images in the terminal.
//
// Every terminal cell holds two vertically stacked pixels: the upper half block
// is drawn in the color of the top pixel, the cell background in the color of
// the bottom pixel.
package display

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

const upperHalfBlock = '▀'

// Show opens the terminal screen, displays img with title below it and blocks
// until the user presses q, Esc or Ctrl-C.
func Show(img image.Image, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer screen.Fini()

	return Run(screen, img, title)
}

// Run draws img on an initialized screen and redraws on resize until a quit key arrives.
func Run(screen tcell.Screen, img image.Image, title string) error {
	Draw(screen, img, title)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, img, title)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				return nil
			}
		}
	}
}

// Draw renders one frame: img scaled to fit above a one line status bar showing title.
func Draw(screen tcell.Screen, img image.Image, title string) {
	screen.Clear()

	w, h := screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		screen.Show()
		return
	}

	fitted := Fit(img, w, rows*2)
	b := fitted.Bounds()

	for y := 0; y*2 < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			top := toColor(fitted.At(b.Min.X+x, b.Min.Y+y*2))
			bottom := tcell.ColorBlack
			if y*2+1 < b.Dy() {
				bottom = toColor(fitted.At(b.Min.X+x, b.Min.Y+y*2+1))
			}
			screen.SetContent(x, y, upperHalfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	status := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(title + "  (q to quit)") {
		if x >= w {
			break
		}
		screen.SetContent(x, h-1, r, nil, status)
	}

	screen.Show()
}

// Fit scales img to the largest size within maxW x maxH pixels keeping its aspect ratio.
func Fit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || maxW <= 0 || maxH <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	scale := min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))

	if w == b.Dx() && h == b.Dy() {
		return img
	}

	// nearest neighbour keeps single pixel features, like the contour lines, crisp
	return resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor)
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
