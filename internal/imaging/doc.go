// Package imaging implements the raster half of the floorplan pipeline.
//
// The stages in order are binarization (inverted fixed threshold, dark ink
// becomes foreground), morphological cleanup (3x3 opening then closing),
// and topological thinning to a 1-pixel-wide skeleton. Skeletonize chains
// them and guarantees the output matches the source dimensions with
// strictly binary {0, 255} values.
//
// # Bitmaps
//
// Binary bitmaps are represented as *image.Gray holding only 0 and 255.
// Every stage allocates a fresh bitmap; no grid is shared or mutated across
// stages, so one source raster can be pushed through concurrent pipeline
// invocations safely.
//
// # Thinning Strategies
//
// Two interchangeable thinning implementations are provided (Zhang-Suen and
// Guo-Hall). The strategy is resolved once at process start from
// configuration via ResolveThinner; an unknown strategy name is a startup
// error, never a per-call branch.
//
// # Loading
//
// ImageCache provides thread-safe, path-keyed caching of decoded rasters
// for callers that run several stages against the same file.
package imaging
