package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	wantNames := []string{
		"floorplan_load",
		"floorplan_skeletonize",
		"floorplan_detect_points",
		"floorplan_cluster_points",
		"floorplan_detect_lines",
		"floorplan_render",
	}
	if len(tools) != len(wantNames) {
		t.Fatalf("got %d tools, want %d", len(tools), len(wantNames))
	}

	byName := make(map[string]Tool)
	for _, tool := range tools {
		byName[tool.Name] = tool
	}
	for _, name := range wantNames {
		if _, ok := byName[name]; !ok {
			t.Errorf("tool %s not defined", name)
		}
	}
}

func TestToolDefinitions_Schema(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Description == "" {
			t.Errorf("%s: empty description", tool.Name)
		}
		if tool.InputSchema == nil {
			t.Fatalf("%s: nil input schema", tool.Name)
		}
		if typ, ok := tool.InputSchema["type"].(string); !ok || typ != "object" {
			t.Errorf("%s: schema type = %v, want object", tool.Name, tool.InputSchema["type"])
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Fatalf("%s: schema has no properties map", tool.Name)
		}
		if _, ok := props["path"]; !ok {
			t.Errorf("%s: schema does not declare the path property", tool.Name)
		}

		required, ok := tool.InputSchema["required"].([]string)
		if !ok || len(required) == 0 || required[0] != "path" {
			t.Errorf("%s: path should be required, got %v", tool.Name, tool.InputSchema["required"])
		}
	}
}
