package cli

import (
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/spf13/cobra"

	"github.com/ironsheep/floorplan-geometry/internal/config"
	"github.com/ironsheep/floorplan-geometry/internal/detection"
	"github.com/ironsheep/floorplan-geometry/internal/pipeline"
)

func newDetectCmd(configPath *string) *cobra.Command {
	var (
		threshVal int
		clusters  int
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "detect <image>",
		Short: "Run the full geometry pipeline over a floorplan image",
		Long: "detect skeletonizes the input image, classifies structural feature points, " +
			"clusters them, extracts wall segments, and writes skeletonized.png and " +
			"clustered_points.png next to the input (or into --out-dir).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			if clusters > 0 {
				cfg.Pipeline.Clusters = clusters
			}

			pipe, err := pipeline.New(cfg)
			if err != nil {
				return err
			}
			logger.Debug("pipeline ready", "thinning", pipe.ThinnerName())

			img, err := imgio.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}

			p := newProgress(logger)

			skel, err := pipe.ExtractFeatures(img, threshVal)
			if err != nil {
				return err
			}
			bounds := skel.Bounds()
			logger.Info("skeletonized", "width", bounds.Dx(), "height", bounds.Dy())

			points, err := pipe.DetectPoints(skel, detection.PointParams{})
			if err != nil {
				return err
			}
			logger.Info("detected feature points", "count", len(points))

			centers, err := pipe.ClusterPoints(points, cfg.Pipeline.Clusters)
			if err != nil {
				return err
			}
			logger.Info("clustered points", "clusters", len(centers))

			segments, err := pipe.DetectLines(skel, detection.LineParams{})
			if err != nil {
				return err
			}
			logger.Info("detected wall segments", "count", len(segments))

			annotated, err := pipe.Render(skel, centers, segments)
			if err != nil {
				return err
			}

			dir := cfg.OutputDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}
			skelPath := filepath.Join(dir, "skeletonized.png")
			if err := imgio.Save(skelPath, skel, imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("writing %s: %w", skelPath, err)
			}
			annotatedPath := filepath.Join(dir, "clustered_points.png")
			if err := imgio.Save(annotatedPath, annotated, imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("writing %s: %w", annotatedPath, err)
			}
			logger.Info("wrote artifacts", "skeleton", skelPath, "annotated", annotatedPath)

			p.done(fmt.Sprintf("Extracted %d points, %d clusters, %d segments", len(points), len(centers), len(segments)))
			return nil
		},
	}

	cmd.Flags().IntVar(&threshVal, "thresh-val", 0, "binarization threshold, 0 uses the configured default")
	cmd.Flags().IntVar(&clusters, "clusters", 0, "number of point clusters, 0 uses the configured default")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for output images, defaults to the input's directory")

	return cmd
}
