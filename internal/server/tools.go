package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the floorplan image file",
	}
}

func threshProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Binarization threshold; intensities below it become foreground. Default 100",
		"default":     100,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "floorplan_load",
			Description: "Load a floorplan image and return its dimensions, format, and file size. Caches the image for subsequent pipeline calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "floorplan_skeletonize",
			Description: "Binarize, denoise, and thin a floorplan to a 1-pixel-wide skeleton. Returns the skeleton as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"thresh_val": threshProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "floorplan_detect_points",
			Description: "Detect and classify structural feature points (endpoints, corners, t-junctions) on the floorplan's skeleton.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"thresh_val": threshProperty(),
					"max_points": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum candidates kept by the sparse corner pass. Default 500",
						"default":     500,
					},
					"min_quality": map[string]interface{}{
						"type":        "number",
						"description": "Corner-strength cutoff as a fraction of the strongest response. Default 0.001",
						"default":     0.001,
					},
					"min_distance": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum pixel distance between detected points. Default 10",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "floorplan_cluster_points",
			Description: "Group detected feature points into representative cluster centers using deterministic k-means.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"thresh_val": threshProperty(),
					"clusters": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of cluster centers. Default 20",
						"default":     20,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "floorplan_detect_lines",
			Description: "Recover straight wall segments from the floorplan's skeleton using edge extraction and a probabilistic Hough transform.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"thresh_val": threshProperty(),
					"vote_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum Hough accumulator support for a line. Default 50",
						"default":     50,
					},
					"min_length": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum segment length in pixels. Default 50",
						"default":     50,
					},
					"max_gap": map[string]interface{}{
						"type":        "integer",
						"description": "Largest pixel gap tolerated inside one segment. Default 10",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "floorplan_render",
			Description: "Run the full pipeline and return an annotated visualization: cluster centers drawn as classified colored circles, wall segments as lines. Base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"thresh_val": threshProperty(),
					"clusters": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of cluster centers. Default 20",
						"default":     20,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
