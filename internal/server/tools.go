package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// boundaryListSchema describes a boundary argument. Hosts marshal these from
// many languages, so scalars, numeric strings and nested lists are accepted.
func boundaryListSchema(axis string) map[string]interface{} {
	return map[string]interface{}{
		"description": "Pixel coordinates of the " + axis + " cell edges, including 0 and the image extent. " +
			"Values are flattened one level, parsed as numbers, truncated, sorted and deduplicated.",
	}
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Grid Operations
		{
			Name: "grid_detect",
			Description: "Detect the row layout of a scanned sheet of postcards. Returns complete and internal row/column " +
				"boundaries and the detected grid size. Columns are always reported as the sheet edges.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the sheet image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "grid_crop",
			Description: "Crop a sheet into grid cells along the given boundaries and write each cell as " +
				"crop_row{row}_col{col}.jpg. Returns the written paths in row-major order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         stringProp("Absolute path to the sheet image"),
					"h_boundaries": boundaryListSchema("row"),
					"v_boundaries": boundaryListSchema("column"),
					"output_dir":   stringProp("Directory receiving the cell images (created if absent)"),
				},
				"required": []string{"path", "h_boundaries", "v_boundaries", "output_dir"},
			},
		},
		{
			Name: "grid_combine",
			Description: "Pair face and verso cells that share a position. Writes combined_row{row}_col{col}.jpg " +
				"side-by-side composites and lot_column_{n}.jpg per-column stacks.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"face_dir":   stringProp("Directory of face cell images"),
					"verso_dir":  stringProp("Directory of verso cell images"),
					"output_dir": stringProp("Directory receiving the composites (created if absent)"),
					"num_rows": map[string]interface{}{
						"type":        "integer",
						"description": "Expected row count. Informational; the grid is derived from the face cells",
					},
					"num_cols": map[string]interface{}{
						"type":        "integer",
						"description": "Expected column count. Informational; the grid is derived from the face cells",
					},
				},
				"required": []string{"face_dir", "verso_dir", "output_dir"},
			},
		},
		{
			Name: "grid_preview",
			Description: "Draw row and column boundaries over a sheet and write preview.jpg for visual checking. " +
				"An empty boundary list draws the image edges for that axis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         stringProp("Absolute path to the sheet image"),
					"h_boundaries": boundaryListSchema("row"),
					"v_boundaries": boundaryListSchema("column"),
					"output_dir":   stringProp("Directory receiving preview.jpg (created if absent)"),
					"line_color": map[string]interface{}{
						"type":        "string",
						"description": "Line color as hex (#RRGGBB or #RRGGBBAA). Default #FF0000",
						"default":     "#FF0000",
					},
				},
				"required": []string{"path", "output_dir"},
			},
		},

		// Image Information
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
	}
}
