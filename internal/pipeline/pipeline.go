// Package pipeline wires the raster and detection stages into the callable
// surface consumed by the MCP server and the CLI.
package pipeline

import (
	"fmt"
	"image"

	"github.com/ironsheep/floorplan-geometry/internal/config"
	"github.com/ironsheep/floorplan-geometry/internal/detection"
	apperrors "github.com/ironsheep/floorplan-geometry/internal/errors"
	"github.com/ironsheep/floorplan-geometry/internal/imaging"
	"github.com/ironsheep/floorplan-geometry/internal/render"
)

// Pipeline binds a thinning strategy and parameter defaults resolved once
// at startup. A Pipeline is stateless across invocations: every call
// allocates fresh intermediate grids, so one Pipeline may serve concurrent
// invocations, one image each, with no coordination.
type Pipeline struct {
	thinner  imaging.Thinner
	defaults config.Pipeline
}

// New resolves the configured thinning strategy and returns a ready
// pipeline. A configuration naming an unknown strategy fails here, at
// startup, with an unavailable_algorithm error.
func New(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	thinner, err := imaging.ResolveThinner(cfg.Thinning)
	if err != nil {
		return nil, err
	}
	defaults := cfg.Pipeline
	fillDefaults(&defaults)
	return &Pipeline{thinner: thinner, defaults: defaults}, nil
}

func fillDefaults(p *config.Pipeline) {
	base := config.Default().Pipeline
	if p.Threshold == 0 {
		p.Threshold = base.Threshold
	}
	if p.MaxPoints == 0 {
		p.MaxPoints = base.MaxPoints
	}
	if p.MinQuality == 0 {
		p.MinQuality = base.MinQuality
	}
	if p.MinDistance == 0 {
		p.MinDistance = base.MinDistance
	}
	if p.Clusters == 0 {
		p.Clusters = base.Clusters
	}
	if p.VoteThreshold == 0 {
		p.VoteThreshold = base.VoteThreshold
	}
	if p.MinLineLength == 0 {
		p.MinLineLength = base.MinLineLength
	}
	if p.MaxLineGap == 0 {
		p.MaxLineGap = base.MaxLineGap
	}
}

// Defaults returns the resolved stage defaults.
func (p *Pipeline) Defaults() config.Pipeline {
	return p.defaults
}

// ThinnerName reports the resolved thinning strategy.
func (p *Pipeline) ThinnerName() string {
	return p.thinner.Name()
}

// ExtractFeatures binarizes, cleans, and thins a raster into a skeleton
// with the raster's exact dimensions and strict {0, 255} values. A
// threshold of 0 or below selects the configured default.
func (p *Pipeline) ExtractFeatures(src image.Image, threshold int) (*image.Gray, error) {
	if threshold <= 0 {
		threshold = p.defaults.Threshold
	}
	return imaging.Skeletonize(src, threshold, p.thinner)
}

// DetectPoints runs the two-pass feature point detector over a skeleton.
// Zero-valued parameters select the configured defaults.
func (p *Pipeline) DetectPoints(skel *image.Gray, params detection.PointParams) ([]detection.FeaturePoint, error) {
	if err := checkSkeleton(skel); err != nil {
		return nil, err
	}
	if params.MaxPoints == 0 {
		params.MaxPoints = p.defaults.MaxPoints
	}
	if params.MinQuality == 0 {
		params.MinQuality = p.defaults.MinQuality
	}
	if params.MinDistance == 0 {
		params.MinDistance = p.defaults.MinDistance
	}
	return detection.DetectFeaturePoints(skel, params), nil
}

// ClusterPoints partitions feature points into at most k cluster centers;
// k of 0 or below selects the configured default. Empty input yields an
// empty result.
func (p *Pipeline) ClusterPoints(points []detection.FeaturePoint, k int) ([]detection.ClusterCenter, error) {
	if k <= 0 {
		k = p.defaults.Clusters
	}
	centers, err := detection.ClusterPoints(points, k)
	if err != nil {
		return nil, apperrors.NewComputation(
			fmt.Sprintf("clustering %d points into %d partitions failed", len(points), k), err)
	}
	return centers, nil
}

// DetectLines recovers straight wall segments from a skeleton. Zero-valued
// parameters select the configured defaults.
func (p *Pipeline) DetectLines(skel *image.Gray, params detection.LineParams) ([]detection.Segment, error) {
	if err := checkSkeleton(skel); err != nil {
		return nil, err
	}
	if params.VoteThreshold == 0 {
		params.VoteThreshold = p.defaults.VoteThreshold
	}
	if params.MinLength == 0 {
		params.MinLength = p.defaults.MinLineLength
	}
	if params.MaxGap == 0 {
		params.MaxGap = p.defaults.MaxLineGap
	}
	return detection.DetectSegments(skel, params), nil
}

// Render draws cluster centers and segments over the skeleton on a fresh
// color buffer.
func (p *Pipeline) Render(skel *image.Gray, centers []detection.ClusterCenter, segments []detection.Segment) (*image.RGBA, error) {
	return render.Annotate(skel, centers, segments)
}

func checkSkeleton(skel *image.Gray) error {
	if skel == nil {
		return apperrors.NewInvalidInput("nil skeleton", nil)
	}
	b := skel.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return apperrors.NewInvalidInput("skeleton has zero dimensions", nil)
	}
	return nil
}
