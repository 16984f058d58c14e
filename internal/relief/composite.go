package relief

import "fmt"

// DimensionMismatchError is returned by Composite when its inputs don't line up.
type DimensionMismatchError struct {
	Reason string
}

func (e *DimensionMismatchError) Error() string {
	return "cannot composite: " + e.Reason
}

// Composite multiplies every channel of the 3 channel image color by the matching
// 1 channel intensity of shade scaled to [0, 1]. The result is truncated.
func Composite(color, shade *Image, opts Options) (*Image, error) {
	switch {
	case color.Channels != 3:
		return nil, &DimensionMismatchError{Reason: fmt.Sprintf("color image has %d channels, want 3", color.Channels)}
	case shade.Channels != 1:
		return nil, &DimensionMismatchError{Reason: fmt.Sprintf("shade image has %d channels, want 1", shade.Channels)}
	case !color.consistent():
		return nil, &DimensionMismatchError{Reason: fmt.Sprintf("color image holds %d bytes for %dx%d", len(color.Pix), color.Width, color.Height)}
	case !shade.consistent():
		return nil, &DimensionMismatchError{Reason: fmt.Sprintf("shade image holds %d bytes for %dx%d", len(shade.Pix), shade.Width, shade.Height)}
	case color.Width != shade.Width || color.Height != shade.Height:
		return nil, &DimensionMismatchError{Reason: fmt.Sprintf("color is %dx%d, shade is %dx%d", color.Width, color.Height, shade.Width, shade.Height)}
	}

	opts = opts.withDefaults()
	img := newImage(color.Width, color.Height, 3)

	forEachRow(color.Height, opts.Workers, func(y int) {
		for i := y * color.Width; i < (y+1)*color.Width; i++ {
			factor := float64(shade.Pix[i]) / 255
			for c := i * 3; c < i*3+3; c++ {
				img.Pix[c] = uint8(float64(color.Pix[c]) * factor)
			}
		}
	})

	return img, nil
}
