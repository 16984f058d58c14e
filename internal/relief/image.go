package relief

import (
	"image"
)

// Image is a row-major 8 bit pixel buffer with 1 (gray) or 3 (RGB) channels.
// The caller owns an Image once it is returned, nothing in this package keeps a reference.
type Image struct {
	Pix                     []uint8
	Width, Height, Channels int
}

func newImage(width, height, channels int) *Image {
	return &Image{
		Pix:      make([]uint8, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// consistent reports whether len(Pix) matches the declared dimensions.
func (img *Image) consistent() bool {
	return img.Width >= 0 && img.Height >= 0 && len(img.Pix) == img.Width*img.Height*img.Channels
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Pix: pix, Width: img.Width, Height: img.Height, Channels: img.Channels}
}

// ToImage converts the buffer to an image.Image: *image.Gray for one channel,
// *image.RGBA (opaque) for three. A gray image shares Pix with img.
func (img *Image) ToImage() image.Image {
	rect := image.Rect(0, 0, img.Width, img.Height)

	if img.Channels == 1 {
		return &image.Gray{Pix: img.Pix, Stride: img.Width, Rect: rect}
	}

	rgba := image.NewRGBA(rect)
	for i, j := 0, 0; i+2 < len(img.Pix); i, j = i+3, j+4 {
		rgba.Pix[j] = img.Pix[i]
		rgba.Pix[j+1] = img.Pix[i+1]
		rgba.Pix[j+2] = img.Pix[i+2]
		rgba.Pix[j+3] = 255
	}
	return rgba
}

// clampByte converts v to a byte, truncating the fraction.
func clampByte(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 || v != v {
		return 0
	}
	return uint8(v)
}
