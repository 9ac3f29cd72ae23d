// Package server implements the MCP (Model Context Protocol) surface of the
// floorplan geometry pipeline.
//
// This package provides a JSON-RPC 2.0 server that exposes the pipeline
// stages as tools for MCP-compatible clients. It replaces an external HTTP
// upload layer: clients hand the server image paths and form-style
// parameters, and the server maps them onto pipeline calls.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - floorplan_load: Load a floorplan raster and get metadata
//   - floorplan_skeletonize: Binarize, clean, and thin to a skeleton
//   - floorplan_detect_points: Find classified structural points
//   - floorplan_cluster_points: Group points into cluster centers
//   - floorplan_detect_lines: Recover straight wall segments
//   - floorplan_render: Full pipeline with annotated PNG output
//
// # Error Mapping
//
// Pipeline failures carry JSON-RPC codes: invalid input maps to -32602,
// a missing algorithm to -32001, and computation failures to -32000.
// Empty detection results are valid tool outputs, not errors.
//
// # Logging
//
// All logging goes to stderr; stdout is reserved for protocol frames.
package server
