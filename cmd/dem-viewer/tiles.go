package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/ShahidHasib586/dem-viewer/internal/mbtiles"
	"github.com/ShahidHasib586/dem-viewer/internal/tilejson"
	"github.com/ShahidHasib586/dem-viewer/internal/utils"
	"github.com/ShahidHasib586/dem-viewer/internal/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) tilesCmd() *cobra.Command {
	var out, mbTilesPath string

	cmd := &cobra.Command{
		Use:   "tiles FILE",
		Short: "Build an XYZ tile pyramid from a DEM.",
		Long: `tiles renders the DEM and cuts it into 256 px PNG tiles down to the level
at which the image is shown at native resolution.

With --out the tiles are written to DIR/{z}/{x}/{y}.png next to a tile.json.
With --mbtiles they are stored in an MBTiles file instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (out == "") == (mbTilesPath == "") {
				return errors.New("exactly one of --out or --mbtiles is required")
			}
			if out != "" {
				if err := validate.OutputDirectory(out); err != nil {
					return err
				}
			} else if err := validate.OutputFile(mbTilesPath); err != nil {
				return err
			}

			start := time.Now()
			name := baseName(args[0])

			raster, err := a.load(args[0])
			if err != nil {
				return err
			}
			rendered, err := a.render(raster)
			if err != nil {
				return err
			}
			img := rendered.ToImage()

			maxLod := utils.CalcMaxLodFromImage(img)
			a.log.Info("ℹ️  Calculated max lod: ", maxLod)

			var writer utils.TileWriter = utils.DirectoryWriter(out)
			if mbTilesPath != "" {
				mbTiles, err := mbtiles.Open(mbTilesPath, name, "png")
				if err != nil {
					return err
				}
				defer mbTiles.Close()
				if err := mbTiles.SetZoomRange(0, maxLod); err != nil {
					return err
				}
				writer = mbTiles
			}

			timer := time.Now()
			a.log.Info("▶️  Building tiles")
			for lod := uint8(0); lod <= maxLod; lod++ {
				lodTimer := time.Now()
				n, err := utils.BuildTileSet(cmd.Context(), lod, img, writer, a.log)
				if err != nil {
					return err
				}
				a.log.Infof("    ✔️  Finished %d tiles for LOD %d in %s", n, lod, time.Since(lodTimer))
			}
			a.log.Infof("✔️  Built tiles in %s", time.Since(timer))

			if out != "" {
				timer = time.Now()
				a.log.Info("▶️  Creating tile.json")
				if err := tilejson.Write(out, tilejson.New(name, a.cfg.Mode.String(), maxLod)); err != nil {
					return err
				}
				a.log.Infof("✔️  Created tile.json in %s", time.Since(timer))
			}

			a.log.Infof("🎉  Finished in %s", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "existing directory the tiles are written to")
	cmd.Flags().StringVar(&mbTilesPath, "mbtiles", "", "MBTiles file the tiles are stored in")

	return cmd
}

// baseName strips directory and extensions, "data/alps.asc.gz" becomes "alps".
func baseName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}
