// Package server implements the MCP (Model Context Protocol) server for
// binary image thinning.
//
// This package provides a JSON-RPC 2.0 server that exposes the thinning
// engines through the MCP protocol, so an MCP client can reduce glyphs and
// line art to one-pixel-wide skeletons and inspect the result.
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
// A line that is not valid JSON gets a -32700 parse error response.
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Binarization:
//   - image_binarize: Preview the ink mask and ink coverage
//
// Thinning:
//   - image_thin: Thin an image file; returns stats, skeleton features and
//     the rendered skeleton (optionally overlaid, magnified and gridded)
//   - grid_thin: Thin a '1'/'0' text grid and return the thinned rows
//   - skeleton_analyze: Thin an image or text grid and report endpoints,
//     junctions and connected components
//
// Every tool that reads a file accepts the same binarization arguments
// (method, level, invert) and an optional region or named_region.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across tool calls, so trying several variants or
// thresholds on one file decodes it once. The cache persists for the
// lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is started by the imgthin command's serve subcommand:
//
//	srv := server.New(server.Config{Version: Version})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
