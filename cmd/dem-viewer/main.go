package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ShahidHasib586/dem-viewer/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	cfg config.Config
}

func newRoot(log *logrus.Logger) *cobra.Command {
	a := &app{v: config.New(), log: log}

	root := &cobra.Command{
		Use:   "dem-viewer",
		Short: "Visualize ESRI ASCII elevation grids.",
		Long: `dem-viewer renders ESRI ASCII Grid digital elevation models as grayscale
or color elevation maps, hillshades, their composite or Terrain-RGB.

Settings can be given as flags, as environment variables in the format
'DEMVIEW_var' (e.g. DEMVIEW_MODE=hillshade) or in a configuration file passed
with --config. Flags win over environment variables, which win over the file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setConfig() },
	}

	if err := config.Flags(a.v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.renderCmd(),
		a.viewCmd(),
		a.tilesCmd(),
		a.statsCmd(),
	)

	return root
}

func (a *app) setConfig() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	a.log.WithFields(logrus.Fields{
		"mode":     cfg.Mode,
		"gradient": cfg.GradientName,
		"azimuth":  cfg.Light.Azimuth,
		"altitude": cfg.Light.Altitude,
		"zfactor":  cfg.ZFactor,
		"workers":  cfg.Options().Workers,
	}).Debug("configuration loaded")

	return nil
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableSorting:   true,
	})
	return log
}

func main() {
	log := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRoot(log).ExecuteContext(ctx); err != nil {
		stop()
		log.Error(err)
		fmt.Fprintln(os.Stderr, "Run 'dem-viewer --help' for usage.")
		os.Exit(1)
	}
}
