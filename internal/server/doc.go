// Package server implements an MCP (Model Context Protocol) server exposing
// the postcard grid operations as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//   - Logs: slog records on stderr
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Client acknowledgment (no response)
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - grid_detect: Detect row boundaries of a scanned sheet
//   - grid_crop: Slice a sheet into crop_row{r}_col{c}.jpg cells
//   - grid_combine: Pair face and verso cells into composites and lots
//   - grid_preview: Draw boundaries over a sheet for checking
//   - image_dimensions: Get width and height
//
// # Error Handling
//
// Domain failures such as an unreadable sheet or a missing directory are
// successful calls whose result carries an empty record or an error field.
// JSON-RPC errors are reserved for protocol problems:
//   - -32602: malformed params or missing required arguments
//   - -32601: unknown method
//   - -32000: unknown tool or an operation that cannot produce a record
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
