package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/floorplan-geometry/internal/detection"
	apperrors "github.com/ironsheep/floorplan-geometry/internal/errors"
	"github.com/ironsheep/floorplan-geometry/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "floorplan_skeletonize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution failures return a JSON-RPC error carrying the pipeline's
// error code (invalid input, unavailable algorithm, computation).
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, apperrors.RPCCode(err), "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "floorplan_load":
		return s.handleLoad(args)
	case "floorplan_skeletonize":
		return s.handleSkeletonize(args)
	case "floorplan_detect_points":
		return s.handleDetectPoints(args)
	case "floorplan_cluster_points":
		return s.handleClusterPoints(args)
	case "floorplan_detect_lines":
		return s.handleDetectLines(args)
	case "floorplan_render":
		return s.handleRender(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// imageResult carries a rendered bitmap across the MCP boundary.
type imageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func encodePNGBase64(img image.Image) (*imageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &imageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// === Tool argument types ===

type loadArgs struct {
	Path string `json:"path"`
}

type skeletonizeArgs struct {
	Path      string `json:"path"`
	ThreshVal int    `json:"thresh_val"`
}

type detectPointsArgs struct {
	Path        string  `json:"path"`
	ThreshVal   int     `json:"thresh_val"`
	MaxPoints   int     `json:"max_points"`
	MinQuality  float64 `json:"min_quality"`
	MinDistance int     `json:"min_distance"`
}

type clusterPointsArgs struct {
	Path      string `json:"path"`
	ThreshVal int    `json:"thresh_val"`
	Clusters  int    `json:"clusters"`
}

type detectLinesArgs struct {
	Path          string `json:"path"`
	ThreshVal     int    `json:"thresh_val"`
	VoteThreshold int    `json:"vote_threshold"`
	MinLength     int    `json:"min_length"`
	MaxGap        int    `json:"max_gap"`
}

// === Handlers ===

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// skeletonFor loads and skeletonizes the image at path with the given
// threshold (0 selects the configured default).
func (s *Server) skeletonFor(path string, threshVal int) (*image.Gray, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return s.pipe.ExtractFeatures(img, threshVal)
}

func (s *Server) handleSkeletonize(args json.RawMessage) (interface{}, error) {
	var a skeletonizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	skel, err := s.skeletonFor(a.Path, a.ThreshVal)
	if err != nil {
		return nil, err
	}
	return encodePNGBase64(skel)
}

type pointsResult struct {
	Points []detection.FeaturePoint `json:"points"`
	Count  int                      `json:"count"`
}

func (s *Server) handleDetectPoints(args json.RawMessage) (interface{}, error) {
	var a detectPointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	skel, err := s.skeletonFor(a.Path, a.ThreshVal)
	if err != nil {
		return nil, err
	}
	points, err := s.pipe.DetectPoints(skel, detection.PointParams{
		MaxPoints:   a.MaxPoints,
		MinQuality:  a.MinQuality,
		MinDistance: a.MinDistance,
	})
	if err != nil {
		return nil, err
	}
	return &pointsResult{Points: points, Count: len(points)}, nil
}

type clustersResult struct {
	Centers    []detection.ClusterCenter `json:"centers"`
	Count      int                       `json:"count"`
	PointCount int                       `json:"point_count"`
}

func (s *Server) handleClusterPoints(args json.RawMessage) (interface{}, error) {
	var a clusterPointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	skel, err := s.skeletonFor(a.Path, a.ThreshVal)
	if err != nil {
		return nil, err
	}
	points, err := s.pipe.DetectPoints(skel, detection.PointParams{})
	if err != nil {
		return nil, err
	}
	centers, err := s.pipe.ClusterPoints(points, a.Clusters)
	if err != nil {
		return nil, err
	}
	return &clustersResult{Centers: centers, Count: len(centers), PointCount: len(points)}, nil
}

type linesResult struct {
	Segments []detection.Segment `json:"segments"`
	Count    int                 `json:"count"`
}

func (s *Server) handleDetectLines(args json.RawMessage) (interface{}, error) {
	var a detectLinesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	skel, err := s.skeletonFor(a.Path, a.ThreshVal)
	if err != nil {
		return nil, err
	}
	segments, err := s.pipe.DetectLines(skel, detection.LineParams{
		VoteThreshold: a.VoteThreshold,
		MinLength:     a.MinLength,
		MaxGap:        a.MaxGap,
	})
	if err != nil {
		return nil, err
	}
	return &linesResult{Segments: segments, Count: len(segments)}, nil
}

type renderResult struct {
	imageResult
	PointCount   int `json:"point_count"`
	ClusterCount int `json:"cluster_count"`
	SegmentCount int `json:"segment_count"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a clusterPointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	skel, err := s.skeletonFor(a.Path, a.ThreshVal)
	if err != nil {
		return nil, err
	}
	points, err := s.pipe.DetectPoints(skel, detection.PointParams{})
	if err != nil {
		return nil, err
	}
	centers, err := s.pipe.ClusterPoints(points, a.Clusters)
	if err != nil {
		return nil, err
	}
	segments, err := s.pipe.DetectLines(skel, detection.LineParams{})
	if err != nil {
		return nil, err
	}
	annotated, err := s.pipe.Render(skel, centers, segments)
	if err != nil {
		return nil, err
	}
	enc, err := encodePNGBase64(annotated)
	if err != nil {
		return nil, err
	}
	return &renderResult{
		imageResult:  *enc,
		PointCount:   len(points),
		ClusterCount: len(centers),
		SegmentCount: len(segments),
	}, nil
}
