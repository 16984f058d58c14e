// Package gradient provides the color ramps used to color elevation maps.
//
// A Gradient maps a normalized value t in [0, 1] to a color. Values outside
// that interval are clamped to the endpoint colors.
package gradient

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a continuous color ramp over [0, 1].
type Gradient interface {
	At(t float64) colorful.Color
}

// Default is the name of the gradient used when none is configured.
const Default = "turbo"

var registry = map[string]func() Gradient{
	"turbo":     func() Gradient { return Turbo{} },
	"terrain":   func() Gradient { return Terrain() },
	"blackbody": func() Gradient { return BlackBody() },
}

// UnknownGradientError is returned by Lookup for names without a gradient.
type UnknownGradientError struct {
	Name string
}

func (e *UnknownGradientError) Error() string {
	return fmt.Sprintf("unknown gradient %q, use one of %s", e.Name, strings.Join(Names(), ", "))
}

// Lookup returns the gradient registered under name.
func Lookup(name string) (Gradient, error) {
	g, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownGradientError{Name: name}
	}
	return g(), nil
}

// Names returns the sorted names of all known gradients.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp01(t float64) float64 {
	if t < 0 || t != t {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
