package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ironsheep/postcard-grid/internal/grid"
	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_detect", "grid_crop").
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
// Every call is logged with a random call_id. Tool execution errors return
// a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	log := s.logger.With("call_id", uuid.NewString(), "tool", params.Name)
	start := time.Now()
	log.Debug("tool call started")

	result, err := s.executeTool(log, params.Name, params.Arguments)
	if err != nil {
		log.Warn("tool call failed", "error", err, "elapsed", time.Since(start))
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}
	log.Info("tool call finished", "elapsed", time.Since(start))

	return &MCPResponse{
		JSONRPC: jsonRPCVersion,
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

// argumentError marks malformed or missing tool arguments.
type argumentError struct {
	err error
}

func (e *argumentError) Error() string { return e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

func invalidArgs(format string, args ...interface{}) error {
	return &argumentError{err: fmt.Errorf(format, args...)}
}

// decodeArgs unmarshals tool arguments, treating absent arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &argumentError{err: err}
	}
	return nil
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Checks required arguments and applies defaults
//  3. Calls the detection/imaging/compose operation with a call-scoped logger
//  4. Returns the result record
func (s *Server) executeTool(log *slog.Logger, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "grid_detect":
		return s.handleGridDetect(log, args)
	case "grid_crop":
		return s.handleGridCrop(log, args)
	case "grid_combine":
		return s.handleGridCombine(log, args)
	case "grid_preview":
		return s.handleGridPreview(log, args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Grid Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleGridDetect(log *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidArgs("path is required")
	}
	d := *s.detector
	d.Logger = log
	return d.DetectFile(a.Path), nil
}

type gridCropArgs struct {
	Path        string          `json:"path"`
	HBoundaries json.RawMessage `json:"h_boundaries"`
	VBoundaries json.RawMessage `json:"v_boundaries"`
	OutputDir   string          `json:"output_dir"`
}

func (s *Server) handleGridCrop(log *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a gridCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" || a.OutputDir == "" {
		return nil, invalidArgs("path and output_dir are required")
	}
	c := *s.cropper
	c.Logger = log
	h := grid.ParseBoundaryJSON(a.HBoundaries)
	v := grid.ParseBoundaryJSON(a.VBoundaries)
	log.Debug("boundaries normalized", "h", h, "v", v)
	return c.CropFile(a.Path, h, v, a.OutputDir), nil
}

type gridCombineArgs struct {
	FaceDir   string  `json:"face_dir"`
	VersoDir  string  `json:"verso_dir"`
	OutputDir string  `json:"output_dir"`
	NumRows   float64 `json:"num_rows"`
	NumCols   float64 `json:"num_cols"`
}

func (s *Server) handleGridCombine(log *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a gridCombineArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.FaceDir == "" || a.VersoDir == "" || a.OutputDir == "" {
		return nil, invalidArgs("face_dir, verso_dir and output_dir are required")
	}
	c := *s.compositor
	c.Logger = log
	return c.Combine(a.FaceDir, a.VersoDir, a.OutputDir, int(a.NumRows), int(a.NumCols)), nil
}

type gridPreviewArgs struct {
	Path        string          `json:"path"`
	HBoundaries json.RawMessage `json:"h_boundaries"`
	VBoundaries json.RawMessage `json:"v_boundaries"`
	OutputDir   string          `json:"output_dir"`
	LineColor   string          `json:"line_color"`
}

func (s *Server) handleGridPreview(log *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a gridPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" || a.OutputDir == "" {
		return nil, invalidArgs("path and output_dir are required")
	}

	var lineColor color.Color = imaging.DefaultOverlayColor
	if a.LineColor != "" {
		c, err := imaging.ParseHexColor(a.LineColor)
		if err != nil {
			return nil, invalidArgs("invalid line_color %q: %v", a.LineColor, err)
		}
		lineColor = c
	}

	h := grid.ParseBoundaryJSON(a.HBoundaries)
	v := grid.ParseBoundaryJSON(a.VBoundaries)
	return imaging.WritePreview(a.Path, h, v, a.OutputDir, lineColor, s.cfg.Output.JPEGQuality, log), nil
}

// === Image Information Handlers ===

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidArgs("path is required")
	}
	return imaging.GetDimensions(a.Path)
}
