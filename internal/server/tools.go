package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var regionProperty = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
		"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
		"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
		"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
	},
	"required":    []string{"x1", "y1", "x2", "y2"},
	"description": "Optional rectangle to process instead of the whole image",
}

var namedRegionProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
	"description": "Optional named part of the image to process. Cannot be combined with region.",
}

var variantProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"standard", "table"},
	"description": "Thinning engine: 'standard' (classic two-sub-iteration rule) or 'table' (extended rule via precomputed lookup tables). Default 'standard'",
	"default":     "standard",
}

var rowsProperty = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "string"},
	"description": "Grid rows, top to bottom; '1' is ink, '0' is paper, other characters are ignored. All rows must have the same number of cells.",
}

// binarizeProperties are shared by every tool that reads an image file.
func binarizeProperties(props map[string]interface{}) map[string]interface{} {
	props["method"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"rgb", "luma", "lightness"},
		"description": "Ink test: 'rgb' (every channel below level), 'luma' (luminance below level) or 'lightness' (CIE L* below level/255). Default 'rgb'",
		"default":     "rgb",
	}
	props["level"] = map[string]interface{}{
		"type":        "integer",
		"description": "Threshold 1-255 (default 200)",
		"default":     200,
	}
	props["invert"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Treat light pixels as ink (for light-on-dark images)",
		"default":     false,
	}
	props["region"] = regionProperty
	props["named_region"] = namedRegionProperty
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and color model. The decoded image is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Binarization
		{
			Name:        "image_binarize",
			Description: "Preview which pixels count as ink. Returns the ink mask as a base64 PNG together with the ink coverage, so thresholds can be tuned before thinning.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": binarizeProperties(map[string]interface{}{
					"path": pathProperty,
				}),
				"required": []string{"path"},
			},
		},

		// Thinning
		{
			Name:        "image_thin",
			Description: "Thin the ink of an image to a one-pixel-wide skeleton. Returns pass statistics, skeleton features (endpoints, junctions, components) and the skeleton as a base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": binarizeProperties(map[string]interface{}{
					"path":    pathProperty,
					"variant": variantProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied before binarization (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"overlay": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the skeleton over the source image instead of on white",
						"default":     false,
					},
					"overlay_color": map[string]interface{}{
						"type":        "string",
						"description": "Skeleton color for overlays as hex (default #FF0000)",
						"default":     "#FF0000",
					},
					"magnify": map[string]interface{}{
						"type":        "integer",
						"description": "Enlarge the returned image by this integer factor (default 1)",
						"default":     1,
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Draw a labeled coordinate grid every N source pixels (default 0, no grid)",
						"default":     0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the returned image; the format follows the extension",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "grid_thin",
			Description: "Thin a small binary grid given as text rows and return the thinned rows. Useful for checking the rules on hand-made patterns.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"rows":    rowsProperty,
					"variant": variantProperty,
				},
				"required": []string{"rows"},
			},
		},
		{
			Name:        "skeleton_analyze",
			Description: "Thin an image file or a text grid and report the skeleton structure: endpoints, junctions, isolated pixels and 8-connected components. Give either path or rows.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": binarizeProperties(map[string]interface{}{
					"path":    pathProperty,
					"rows":    rowsProperty,
					"variant": variantProperty,
				}),
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
