// Package config merges command line flags, DEMVIEW_* environment variables and
// an optional configuration file into the render settings.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/ShahidHasib586/dem-viewer/internal/gradient"
	"github.com/ShahidHasib586/dem-viewer/internal/relief"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of configuration environment variables, e.g. DEMVIEW_MODE.
const EnvPrefix = "DEMVIEW"

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
}

var options = []option{
	{
		name:       "config",
		usage:      "configuration file (TOML, YAML or JSON)",
		defaultVal: "",
	},
	{
		name:       "mode",
		usage:      "visualization: " + strings.Join(relief.ModeNames(), ", "),
		shorthand:  "m",
		defaultVal: relief.ModeColorHillshade.String(),
	},
	{
		name:       "gradient",
		usage:      "color gradient: " + strings.Join(gradient.Names(), ", "),
		shorthand:  "g",
		defaultVal: gradient.Default,
	},
	{
		name:       "azimuth",
		usage:      "light azimuth in degrees clockwise from north",
		defaultVal: relief.DefaultLight.Azimuth,
	},
	{
		name:       "altitude",
		usage:      "light altitude in degrees above the horizon (0-90)",
		defaultVal: relief.DefaultLight.Altitude,
	},
	{
		name:       "zfactor",
		usage:      "cell size used by the hillshade kernel, larger values flatten the relief",
		defaultVal: 1.0,
	},
	{
		name:       "workers",
		usage:      "goroutines rendering rows, 0 uses every CPU",
		shorthand:  "w",
		defaultVal: 0,
	},
	{
		name:       "contours",
		usage:      "contour line interval in elevation units, 0 disables contours",
		defaultVal: 0.0,
	},
	{
		name:       "verbose",
		usage:      "log debug messages",
		shorthand:  "v",
		defaultVal: false,
	},
}

// Config holds validated render settings.
type Config struct {
	Mode         relief.Mode
	GradientName string
	Gradient     gradient.Gradient
	Light        relief.Light
	ZFactor      float64
	Workers      int
	// Contours is the contour interval, 0 means no contours.
	Contours float64
	Verbose  bool
}

// New returns a viper instance which reads DEMVIEW_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Flags defines every option on set and binds it to v.
func Flags(v *viper.Viper, set *pflag.FlagSet) error {
	for _, option := range options {
		switch val := option.defaultVal.(type) {
		case string:
			set.StringP(option.name, option.shorthand, val, option.usage)
		case bool:
			set.BoolP(option.name, option.shorthand, val, option.usage)
		case int:
			set.IntP(option.name, option.shorthand, val, option.usage)
		case float64:
			set.Float64P(option.name, option.shorthand, val, option.usage)
		default:
			panic("invalid option type")
		}
		if err := v.BindPFlag(option.name, set.Lookup(option.name)); err != nil {
			return errors.Wrapf(err, "binding flag %s", option.name)
		}
	}
	return nil
}

// ReadFile reads the configuration file named by the config option, if there is one.
func ReadFile(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration file %s", path)
		}
	}
	return nil
}

// Load reads the configuration file and validates the merged settings.
func Load(v *viper.Viper) (Config, error) {
	if err := ReadFile(v); err != nil {
		return Config{}, err
	}

	mode, err := relief.ParseMode(v.GetString("mode"))
	if err != nil {
		return Config{}, err
	}

	name := v.GetString("gradient")
	g, err := gradient.Lookup(name)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Mode:         mode,
		GradientName: name,
		Gradient:     g,
		Light: relief.Light{
			Azimuth:  v.GetFloat64("azimuth"),
			Altitude: v.GetFloat64("altitude"),
		},
		ZFactor:  v.GetFloat64("zfactor"),
		Workers:  v.GetInt("workers"),
		Contours: v.GetFloat64("contours"),
		Verbose:  v.GetBool("verbose"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if !finite(cfg.Light.Azimuth) {
		return fmt.Errorf("azimuth must be a finite number, got %v", cfg.Light.Azimuth)
	}
	if !(cfg.Light.Altitude >= 0 && cfg.Light.Altitude <= 90) {
		return fmt.Errorf("altitude must be between 0 and 90 degrees, got %v", cfg.Light.Altitude)
	}
	if !finite(cfg.ZFactor) || cfg.ZFactor <= 0 {
		return fmt.Errorf("zfactor must be greater than 0, got %v", cfg.ZFactor)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if !finite(cfg.Contours) || cfg.Contours < 0 {
		return fmt.Errorf("contours must not be negative, got %v", cfg.Contours)
	}
	return nil
}

// Options converts cfg to the options of the relief mappers.
func (cfg Config) Options() relief.Options {
	opts := relief.DefaultOptions()
	opts.Gradient = cfg.Gradient
	light := cfg.Light
	opts.Light = &light
	opts.ZFactor = cfg.ZFactor
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	return opts
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
