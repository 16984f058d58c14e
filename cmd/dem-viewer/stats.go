package main

import (
	"fmt"

	"github.com/ShahidHasib586/dem-viewer/internal/dem"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print header and elevation statistics of a DEM.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raster, err := a.load(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			extent := raster.Extent()

			fmt.Fprintf(w, "size:      %d x %d\n", raster.Ncols, raster.Nrows)
			fmt.Fprintf(w, "cellsize:  %g\n", raster.CellSize)
			fmt.Fprintf(w, "extent:    %g %g %g %g\n", extent.Min[0], extent.Min[1], extent.Max[0], extent.Max[1])
			fmt.Fprintf(w, "nodata:    %g\n", raster.NoDataValue)

			rng, err := raster.Range()
			var empty *dem.EmptyDataError
			if errors.As(err, &empty) {
				fmt.Fprintf(w, "valid:     0 of %d\n", len(raster.Data))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "valid:     %d of %d\n", rng.Count, len(raster.Data))
			fmt.Fprintf(w, "elevation: %g to %g\n", rng.Min, rng.Max)
			return nil
		},
	}
}
