package relief

import (
	"runtime"

	"github.com/ShahidHasib586/dem-viewer/internal/gradient"
)

// Light is the position of the virtual sun in degrees. Azimuth is clockwise from
// north, Altitude is the angle above the horizon.
type Light struct {
	Azimuth, Altitude float64
}

// DefaultLight is the usual cartographic light from the north-west, 45° up.
var DefaultLight = Light{Azimuth: 315, Altitude: 45}

// Options tune the mappers. The zero value is usable, DefaultOptions spells it out.
type Options struct {
	// Gradient colors the Color and ColorHillshade modes, nil means turbo.
	Gradient gradient.Gradient
	// Light is used by the hillshade, nil means DefaultLight.
	Light *Light
	// ZFactor scales the cell size in the hillshade kernel, 0 means 1.
	ZFactor float64
	// Workers is the number of goroutines rendering rows, <= 0 means runtime.NumCPU().
	Workers int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Gradient: gradient.Turbo{},
		Light:    &Light{Azimuth: DefaultLight.Azimuth, Altitude: DefaultLight.Altitude},
		ZFactor:  1,
		Workers:  runtime.NumCPU(),
	}
}

func (o Options) withDefaults() Options {
	if o.Gradient == nil {
		o.Gradient = gradient.Turbo{}
	}
	if o.Light == nil {
		light := DefaultLight
		o.Light = &light
	}
	if o.ZFactor == 0 {
		o.ZFactor = 1
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}
