package main

import (
	"time"

	"github.com/ShahidHasib586/dem-viewer/internal/preview"
	"github.com/ShahidHasib586/dem-viewer/internal/utils"
	"github.com/ShahidHasib586/dem-viewer/internal/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		out      string
		previews bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a DEM to a PNG image.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			if err := validate.OutputFile(out); err != nil {
				return err
			}

			start := time.Now()

			raster, err := a.load(args[0])
			if err != nil {
				return err
			}
			img, err := a.render(raster)
			if err != nil {
				return err
			}

			encoded := img.ToImage()

			timer := time.Now()
			a.log.Info("▶️  Writing ", out)
			if err := utils.SaveImage(out, encoded); err != nil {
				return err
			}
			a.log.Infof("✔️  Wrote %s in %s", out, time.Since(timer))

			if previews {
				if _, err := preview.Build(encoded, out, preview.Sizes, a.log); err != nil {
					return err
				}
			}

			a.log.Infof("🎉  Finished in %s", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "path of the PNG to write")
	cmd.Flags().BoolVar(&previews, "previews", false, "also write downscaled previews (128, 256, 512 and 1024 px high)")

	return cmd
}
