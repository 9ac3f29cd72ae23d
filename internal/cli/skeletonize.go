package cli

import (
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/spf13/cobra"

	"github.com/ironsheep/floorplan-geometry/internal/config"
	"github.com/ironsheep/floorplan-geometry/internal/pipeline"
)

func newSkeletonizeCmd(configPath *string) *cobra.Command {
	var (
		threshVal int
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "skeletonize <image>",
		Short: "Skeletonize a floorplan image without running detection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			pipe, err := pipeline.New(cfg)
			if err != nil {
				return err
			}

			img, err := imgio.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}

			p := newProgress(logger)

			skel, err := pipe.ExtractFeatures(img, threshVal)
			if err != nil {
				return err
			}

			dir := cfg.OutputDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}
			outPath := filepath.Join(dir, "skeletonized.png")
			if err := imgio.Save(outPath, skel, imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			bounds := skel.Bounds()
			p.done(fmt.Sprintf("Skeletonized %dx%d image to %s", bounds.Dx(), bounds.Dy(), outPath))
			return nil
		},
	}

	cmd.Flags().IntVar(&threshVal, "thresh-val", 0, "binarization threshold, 0 uses the configured default")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for output images, defaults to the input's directory")

	return cmd
}
