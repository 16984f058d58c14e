package relief

import (
	"fmt"
	"strings"
)

// Mode selects which visualization Render produces.
type Mode int

const (
	// ModeGrayscale maps elevation linearly to gray.
	ModeGrayscale Mode = iota
	// ModeColor maps elevation through a color gradient.
	ModeColor
	// ModeHillshade renders simulated illumination.
	ModeHillshade
	// ModeColorHillshade multiplies the color map by the hillshade.
	ModeColorHillshade
	// ModeTerrainRGB encodes elevation as Mapbox Terrain-RGB.
	ModeTerrainRGB
)

var modeNames = []string{
	ModeGrayscale:      "grayscale",
	ModeColor:          "color",
	ModeHillshade:      "hillshade",
	ModeColorHillshade: "color+hillshade",
	ModeTerrainRGB:     "terrain-rgb",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Channels returns the channel count of images produced in mode m.
func (m Mode) Channels() int {
	if m == ModeGrayscale || m == ModeHillshade {
		return 1
	}
	return 3
}

// ModeNames returns the accepted mode strings.
func ModeNames() []string {
	return append([]string(nil), modeNames...)
}

// UnknownModeError is returned for a mode string that names no mode.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown mode %q, use %s", e.Mode, strings.Join(modeNames, ", "))
}

// ParseMode parses one of grayscale, color, hillshade, color+hillshade or terrain-rgb.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, &UnknownModeError{Mode: s}
}
