// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color engine
// (conversions, blend operators, color bands and gradients) and its image
// operations through the MCP protocol.
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
// Image Information:
//   - image_load: Load image and get metadata
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//
// Color Operations:
//   - color_convert: Describe a color in every representation
//   - color_blend: Blend two colors with an operator
//   - color_to_alpha: Remove a reference color from a color
//
// Color Bands:
//   - colorband_sample: Evaluate a band at evenly spaced positions
//   - colorband_render: Render a band as a strip
//   - gradient_render: Render a linear, radial or sweep gradient from a band
//
// Image Operations:
//   - image_composite: Blend one image onto another
//   - image_luminize: Transfer luminance between images
//   - image_color_to_alpha: Remove a color from an image
//   - image_colorize: Map brightness through a band
//   - image_set_channel: Replace a channel with a channel of another image
//   - image_mask: Multiply alpha by a channel of another image
//   - image_color_difference: Render the distance of each pixel from a color
//   - image_channel: Extract one channel as a grayscale image
//
// Colors are given as hex strings ("#rrggbbaa" and shorter forms) or names
// such as "red" and "gray50". Bands are given as a preset name or a list of
// stops. Image results are base64 PNG and may also be written to
// output_path.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// Writing to output_path evicts that path from the cache.
//
// # Error Handling
//
// Tools are looked up in a registry built from GetToolDefinitions. Errors
// are returned as JSON-RPC error responses with:
//   - code: -32700 for a line that is not JSON, -32601 for an unknown
//     method, -32602 for an unknown tool or arguments that are not an
//     object or lack a required property, -32000 when the tool itself fails
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Notifications (methods under "notifications/") get no response.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
