package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/imgthin/internal/imaging"
	"github.com/ironsheep/imgthin/internal/pipeline"
	"github.com/ironsheep/imgthin/internal/skeleton"
	"github.com/ironsheep/imgthin/internal/thinning"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_thin").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_binarize":
		return s.handleImageBinarize(args)
	case "image_thin":
		return s.handleImageThin(args)
	case "grid_thin":
		return s.handleGridThin(args)
	case "skeleton_analyze":
		return s.handleSkeletonAnalyze(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Shared Arguments ===

// sourceArgs selects the image and the part of it to binarize.
type sourceArgs struct {
	Path        string          `json:"path"`
	Method      string          `json:"method"`
	Level       int             `json:"level"`
	Invert      bool            `json:"invert"`
	Region      *imaging.Region `json:"region"`
	NamedRegion string          `json:"named_region"`
}

func (a sourceArgs) binarizeOptions() (imaging.Options, error) {
	method, err := imaging.ParseMethod(a.Method)
	if err != nil {
		return imaging.Options{}, err
	}
	if a.Level < 0 || a.Level > 255 {
		return imaging.Options{}, fmt.Errorf("level must be between 0 and 255 (0 selects the default), got %d", a.Level)
	}
	return imaging.Options{Method: method, Level: uint8(a.Level), Invert: a.Invert}, nil
}

// region resolves the optional explicit or named region against img.
func (a sourceArgs) region(img image.Image) (*imaging.Region, error) {
	switch {
	case a.Region != nil && a.NamedRegion != "":
		return nil, errors.New("region and named_region cannot be combined")
	case a.Region != nil:
		return a.Region, nil
	case a.NamedRegion != "":
		r, err := imaging.NamedRegion(img.Bounds(), a.NamedRegion)
		if err != nil {
			return nil, err
		}
		return &r, nil
	}
	return nil, nil
}

// load returns the cached image at a.Path together with pipeline options
// for it.
func (s *Server) load(a sourceArgs) (image.Image, pipeline.Options, error) {
	if a.Path == "" {
		return nil, pipeline.Options{}, errors.New("path is required")
	}
	opts, err := a.binarizeOptions()
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	region, err := a.region(img)
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	return img, pipeline.Options{Binarize: opts, Region: region, Observe: s.observer(a.Path)}, nil
}

// === Binarization Handler ===

// BinarizeResult previews the ink mask of an image.
type BinarizeResult struct {
	imaging.EncodedImage
	InkPixels   int     `json:"ink_pixels"`
	InkCoverage float64 `json:"ink_coverage"`
}

func (s *Server) handleImageBinarize(args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, opts, err := s.load(a)
	if err != nil {
		return nil, err
	}
	if opts.Region != nil {
		if img, err = imaging.Crop(img, *opts.Region); err != nil {
			return nil, err
		}
	}

	ink, err := imaging.Binarize(img, opts.Binarize)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(imaging.RenderGrid(ink, imaging.InkColor, imaging.PaperColor))
	if err != nil {
		return nil, err
	}

	count := 0
	for _, row := range ink {
		for _, v := range row {
			if v {
				count++
			}
		}
	}
	return &BinarizeResult{
		EncodedImage: *encoded,
		InkPixels:    count,
		InkCoverage:  imaging.InkCoverage(ink),
	}, nil
}

// === Thinning Handlers ===

type imageThinArgs struct {
	sourceArgs
	Variant      string  `json:"variant"`
	Scale        float64 `json:"scale"`
	Overlay      bool    `json:"overlay"`
	OverlayColor string  `json:"overlay_color"`
	Magnify      int     `json:"magnify"`
	GridSpacing  int     `json:"grid_spacing"`
	OutputPath   string  `json:"output_path"`
}

// ThinResult is returned by image_thin.
type ThinResult struct {
	Variant    thinning.Variant      `json:"variant"`
	Stats      thinning.Stats        `json:"stats"`
	Features   skeleton.Features     `json:"features"`
	Image      *imaging.EncodedImage `json:"image"`
	OutputPath string                `json:"output_path,omitempty"`
}

func (s *Server) handleImageThin(args json.RawMessage) (interface{}, error) {
	var a imageThinArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	variant, err := thinning.ParseVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	if a.Magnify < 0 || a.GridSpacing < 0 {
		return nil, errors.New("magnify and grid_spacing must not be negative")
	}
	if a.GridSpacing > imaging.MaxGridSpacing {
		return nil, fmt.Errorf("grid_spacing must be at most %d, got %d", imaging.MaxGridSpacing, a.GridSpacing)
	}

	img, opts, err := s.load(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	opts.Variant = variant
	opts.Scale = a.Scale

	res, err := pipeline.Run(img, opts)
	if err != nil {
		return nil, err
	}

	var out *image.NRGBA
	if a.Overlay {
		c := imaging.OverlayColor
		if a.OverlayColor != "" {
			if c, err = imaging.ParseColor(a.OverlayColor); err != nil {
				return nil, err
			}
		}
		out = res.RenderOverlay(c)
	} else {
		out = res.Render()
	}

	magnify := max(a.Magnify, 1)
	if err := imaging.CheckMagnify(out.Bounds().Size(), magnify); err != nil {
		return nil, err
	}
	out = imaging.Magnify(out, magnify)
	if a.GridSpacing > 0 {
		if err := imaging.DrawGrid(out, a.GridSpacing*magnify, magnify, true, nil); err != nil {
			return nil, err
		}
	}

	if a.OutputPath != "" {
		if err := imaging.Save(out, a.OutputPath); err != nil {
			return nil, err
		}
	}

	encoded, err := imaging.EncodePNG(out)
	if err != nil {
		return nil, err
	}
	return &ThinResult{
		Variant:    res.Variant,
		Stats:      res.Stats,
		Features:   res.Features,
		Image:      encoded,
		OutputPath: a.OutputPath,
	}, nil
}

type gridThinArgs struct {
	Rows    []string `json:"rows"`
	Variant string   `json:"variant"`
}

// GridThinResult is returned by grid_thin.
type GridThinResult struct {
	Variant thinning.Variant `json:"variant"`
	Stats   thinning.Stats   `json:"stats"`
	Rows    []string         `json:"rows"`
}

func (s *Server) thinRows(rows []string, name string) (*pipeline.Result, error) {
	variant, err := thinning.ParseVariant(name)
	if err != nil {
		return nil, err
	}
	grid, err := imaging.ParseTextRows(rows)
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, errors.New("rows must contain at least one '0' or '1' cell")
	}
	return pipeline.ThinGrid(grid, variant, s.observer("grid"))
}

func (s *Server) handleGridThin(args json.RawMessage) (interface{}, error) {
	var a gridThinArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, err := s.thinRows(a.Rows, a.Variant)
	if err != nil {
		return nil, err
	}
	return &GridThinResult{
		Variant: res.Variant,
		Stats:   res.Stats,
		Rows:    imaging.FormatTextGrid(res.Skeleton),
	}, nil
}

type skeletonAnalyzeArgs struct {
	sourceArgs
	Rows    []string `json:"rows"`
	Variant string   `json:"variant"`
}

func (s *Server) handleSkeletonAnalyze(args json.RawMessage) (interface{}, error) {
	var a skeletonAnalyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	switch {
	case a.Path != "" && len(a.Rows) > 0:
		return nil, errors.New("give either path or rows, not both")
	case len(a.Rows) > 0:
		return s.thinRows(a.Rows, a.Variant)
	}

	variant, err := thinning.ParseVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	img, opts, err := s.load(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	opts.Variant = variant
	return pipeline.Run(img, opts)
}
