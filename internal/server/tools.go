package server

import (
	"encoding/json"

	"github.com/ironsheep/color-tools-mcp/internal/band"
	"github.com/ironsheep/color-tools-mcp/internal/blend"
	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Tool represents an MCP tool definition together with the handler that
// executes it.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`

	run toolFunc
}

// toolFunc executes a tool on decoded-later JSON arguments.
type toolFunc func(s *Server, args json.RawMessage) (interface{}, error)

// required lists the top-level properties the input schema marks required.
func (t Tool) required() []string {
	keys, _ := t.InputSchema["required"].([]string)
	return keys
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var outputPathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Optional file to write the result to (.png, .jpg or .bmp). The result is always returned as base64 PNG as well.",
}

var colorProperty = func(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": desc + ". Hex (#rgba as #rr, #rrgg, #rrggbb or #rrggbbaa) or a color name such as 'red' or 'gray50'.",
	}
}

// bandProperties describe a color band: a preset, or explicit stops.
func bandProperties() map[string]interface{} {
	return map[string]interface{}{
		"preset": map[string]interface{}{
			"type":        "string",
			"enum":        append(band.PresetNames(), "glow"),
			"description": "Named color band (default rainbow). Ignored when stops are given.",
		},
		"stops": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{"type": "string", "description": "Hex or named color"},
					"param": map[string]interface{}{"type": "number", "description": "Position in [0,1]; non-decreasing"},
				},
				"required": []string{"color", "param"},
			},
			"description": "Explicit color stops in order",
		},
		"glow_color": colorProperty("Base color for the glow preset (default white)"),
		"max_luminance": map[string]interface{}{
			"type":        "number",
			"description": "HSL luminance at the end of the glow preset (default 1.0)",
			"default":     1.0,
		},
	}
}

// blendProperties describe a blend operator and its optional channel
// settings.
func blendProperties() map[string]interface{} {
	channels := channelNames()
	return map[string]interface{}{
		"operator": map[string]interface{}{
			"type":        "string",
			"enum":        blend.Names,
			"description": "Blend operator (default srcover)",
		},
		"source_opacity": map[string]interface{}{
			"type":        "number",
			"description": "Opacity applied to the source, 0-1 (default 1)",
		},
		"target_opacity": map[string]interface{}{
			"type":        "number",
			"description": "Opacity applied to the destination, 0-1 (default 1; 0 for channel)",
		},
		"src_channel": map[string]interface{}{
			"type":        "string",
			"enum":        channels,
			"description": "channel operator: channel read from the source (default value)",
		},
		"dest_channel": map[string]interface{}{
			"type":        "string",
			"enum":        channels,
			"description": "channel operator: channel written in the destination (default value)",
		},
		"src_space": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"hsv", "hsl"},
			"description": "channel operator: space used for a source hue or saturation",
		},
		"dest_space": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"hsv", "hsl"},
			"description": "channel operator: space used for a destination hue or saturation",
		},
		"src_func": map[string]interface{}{
			"type":        "string",
			"enum":        mappingNames,
			"description": "channel operator: function applied to the source channel value",
		},
		"dest_func": map[string]interface{}{
			"type":        "string",
			"enum":        mappingNames,
			"description": "channel operator: function applied to the destination channel value",
		},
	}
}

func channelNames() []string {
	var names []string
	for ch := color.ChannelRed; ch <= color.ChannelLuminance; ch++ {
		names = append(names, ch.String())
	}
	return names
}

// placementProperties describe a source image placed onto a destination.
func placementProperties() map[string]interface{} {
	return map[string]interface{}{
		"dest_path":   map[string]interface{}{"type": "string", "description": "Absolute path to the destination image"},
		"source_path": map[string]interface{}{"type": "string", "description": "Absolute path to the source image"},
		"x":           map[string]interface{}{"type": "integer", "description": "Destination X of the source's top-left corner (default 0)"},
		"y":           map[string]interface{}{"type": "integer", "description": "Destination Y of the source's top-left corner (default 0)"},
		"region": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"description": "Optional part of the source to use. If omitted, the whole source.",
		},
		"fit": map[string]interface{}{
			"type":        "boolean",
			"description": "Resize the source to the destination size first (default false)",
		},
		"output_path": outputPathProperty,
	}
}

func spaceProperty(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"hsv", "hsl"},
		"description": desc,
	}
}

var mappingNames = []string{"linear", "smoothstep", "square", "sqrt", "invert"}

// withProps returns a copy of base with extra merged in.
func withProps(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			run:         (*Server).handleImageLoad,
			Description: "Load an image file and return its dimensions, format, channel count and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			run:         (*Server).handleImageSampleColor,
			Description: "Get the exact color at a pixel as hex, RGBA, HSL, HSV and CIE Lab.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			run:         (*Server).handleImageSampleColorsMulti,
			Description: "Get the colors at several pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			run:         (*Server).handleImageDominantColors,
			Description: "Return the N most common colors of an image (quantized to 16 levels per channel), usable as color band stops.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "color_convert",
			run:         (*Server).handleColorConvert,
			Description: "Describe a color in hex, RGBA, HSL, HSV, CIE Lab and HCL, plus the raw 0-1 components in RGB, HSV and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to convert"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_blend",
			run:         (*Server).handleColorBlend,
			Description: "Blend a source color onto a destination color with a compositing operator (srcover, multiply, darken, lighten, plus) or a channel transfer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(blendProperties(), map[string]interface{}{
					"source":      colorProperty("Source color (default black)"),
					"destination": colorProperty("Destination color (default white)"),
				}),
			},
		},
		{
			Name:        "color_to_alpha",
			run:         (*Server).handleColorToAlpha,
			Description: "Remove a reference color from a color, turning it into transparency the way GIMP's color-to-alpha filter does.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":     colorProperty("Color to process"),
					"reference": colorProperty("Color to remove (default white)"),
				},
				"required": []string{"color"},
			},
		},

		// Color Bands
		{
			Name:        "colorband_sample",
			run:         (*Server).handleColorBandSample,
			Description: "Sample a color band at evenly spaced positions from 0 to 1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(bandProperties(), map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of samples (default 10)",
						"default":     10,
					},
				}),
			},
		},
		{
			Name:        "colorband_render",
			run:         (*Server).handleColorBandRender,
			Description: "Render a color band as a horizontal strip image, 0 at the left edge and 1 at the right.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(bandProperties(), map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width (default 256)",
						"default":     256,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height (default 32)",
						"default":     32,
					},
					"output_path": outputPathProperty,
				}),
			},
		},
		{
			Name:        "gradient_render",
			run:         (*Server).handleGradientRender,
			Description: "Build a linear, radial or sweep gradient from a color band and render it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(bandProperties(), map[string]interface{}{
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"linear", "radial", "sweep"},
						"description": "Gradient geometry (default linear)",
					},
					"sample_func": map[string]interface{}{
						"type":        "string",
						"enum":        mappingNames,
						"description": "When set, the band is sampled through this function instead of copying its stops",
					},
					"samples": map[string]interface{}{
						"type":        "integer",
						"description": "Number of samples taken when sample_func is set (default 20)",
						"default":     20,
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width (default 256)",
						"default":     256,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height (default 64)",
						"default":     64,
					},
					"output_path": outputPathProperty,
				}),
			},
		},

		// Image Operations
		{
			Name:        "image_composite",
			run:         (*Server).handleImageComposite,
			Description: "Blend a source image onto a destination image pixel by pixel and return the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(blendProperties(), placementProperties()),
				"required": []string{"dest_path", "source_path"},
			},
		},
		{
			Name:        "image_luminize",
			run:         (*Server).handleImageLuminize,
			Description: "Move the luminance of a destination image towards a source image while keeping the destination's hues.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dest_path":   map[string]interface{}{"type": "string", "description": "Absolute path to the image to recolor"},
					"source_path": map[string]interface{}{"type": "string", "description": "Absolute path to the luminance source; resized to the destination"},
					"amount": map[string]interface{}{
						"type":        "number",
						"description": "How far to move, 0-1 (default 1)",
						"default":     1.0,
					},
					"output_path": outputPathProperty,
				},
				"required": []string{"dest_path", "source_path"},
			},
		},
		{
			Name:        "image_color_to_alpha",
			run:         (*Server).handleImageColorToAlpha,
			Description: "Remove a color from every pixel of an image, turning it into transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"color":       colorProperty("Color to remove (default white)"),
					"output_path": outputPathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_colorize",
			run:         (*Server).handleImageColorize,
			Description: "Map every pixel's brightness (HSV value) through a color band.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(bandProperties(), map[string]interface{}{
					"path":        pathProperty,
					"output_path": outputPathProperty,
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_set_channel",
			run:         (*Server).handleImageSetChannel,
			Description: "Replace one channel of a destination image with a channel of a source image, optionally through a function.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(placementProperties(), map[string]interface{}{
					"src_channel": map[string]interface{}{
						"type":        "string",
						"enum":        channelNames(),
						"description": "Channel read from the source (default value)",
					},
					"dest_channel": map[string]interface{}{
						"type":        "string",
						"enum":        channelNames(),
						"description": "Channel replaced in the destination (default value)",
					},
					"src_space":  spaceProperty("Space used for a source hue or saturation"),
					"dest_space": spaceProperty("Space used for a destination hue or saturation"),
					"func": map[string]interface{}{
						"type":        "string",
						"enum":        mappingNames,
						"description": "Function applied to the channel value (default linear)",
					},
				}),
				"required": []string{"dest_path", "source_path"},
			},
		},
		{
			Name:        "image_mask",
			run:         (*Server).handleImageMask,
			Description: "Multiply the alpha of a destination image by a channel of a source image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProps(placementProperties(), map[string]interface{}{
					"src_channel": map[string]interface{}{
						"type":        "string",
						"enum":        channelNames(),
						"description": "Channel of the source used as the mask (default value)",
					},
					"src_space": spaceProperty("Space used for a source hue or saturation"),
					"func": map[string]interface{}{
						"type":        "string",
						"enum":        mappingNames,
						"description": "Function applied to the mask value (default linear)",
					},
				}),
				"required": []string{"dest_path", "source_path"},
			},
		},
		{
			Name:        "image_color_difference",
			run:         (*Server).handleImageColorDifference,
			Description: "Render the mean squared RGB difference of every pixel from a reference color as a grayscale image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty,
					"color": colorProperty("Reference color"),
					"func": map[string]interface{}{
						"type":        "string",
						"enum":        mappingNames,
						"description": "Function applied to each difference before clamping to [0,1]",
					},
					"output_path": outputPathProperty,
				},
				"required": []string{"path", "color"},
			},
		},
		{
			Name:        "image_channel",
			run:         (*Server).handleImageChannel,
			Description: "Extract one channel of an image as a grayscale image, with its minimum, maximum and mean.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        channelNames(),
						"description": "Channel to extract",
					},
					"space":       spaceProperty("Space used for hue or saturation (default hsv)"),
					"output_path": outputPathProperty,
				},
				"required": []string{"path", "channel"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return result(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
