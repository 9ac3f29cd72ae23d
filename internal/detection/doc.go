// Package detection extracts structural geometry from floorplan skeletons.
//
// The package implements the feature side of the pipeline: crossing-number
// classification of skeleton pixels, the two-pass feature point detector,
// deterministic k-means clustering of detected points, and straight wall
// segment recovery via edge extraction plus a probabilistic linear Hough
// transform.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Inputs
//
// Every entry point takes a skeleton image: a grayscale bitmap holding only
// the values 0 (background) and 255 (foreground), one pixel wide along its
// strokes, as produced by the imaging package. Inputs are never mutated;
// each function allocates its own working grids.
//
// # Classification
//
// Classify is the single source of truth for labeling a pixel as endpoint,
// corner, or t-junction. The detector and any rendering layer that needs a
// label must call it rather than reimplementing the rule, so a given 3x3
// pattern always maps to the same tag everywhere.
//
// # Empty Results
//
// An image with no qualifying features yields empty slices from
// DetectFeaturePoints, ClusterPoints, and DetectSegments. These are valid
// outputs, not errors.
//
// # Performance Considerations
//
// The Hough transform iterates all edge pixels across 180 angle steps and
// may be expensive on large images. The detector's exhaustive pass is a
// full scan of the skeleton. Both are linear in image area otherwise.
package detection
