package main

import (
	"fmt"
	"path/filepath"

	"github.com/ShahidHasib586/dem-viewer/internal/display"
	"github.com/spf13/cobra"
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Show a DEM in the terminal.",
		Long: `view renders the DEM and shows it in the terminal, two pixels per cell.
The image is scaled to the terminal and redrawn when it is resized.
Press q, Esc or Ctrl-C to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raster, err := a.load(args[0])
			if err != nil {
				return err
			}
			img, err := a.render(raster)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s  %dx%d  %s", filepath.Base(args[0]), raster.Ncols, raster.Nrows, a.cfg.Mode)
			return display.Show(img.ToImage(), title)
		},
	}
}
