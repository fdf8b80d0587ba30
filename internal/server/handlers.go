package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/band"
	"github.com/ironsheep/color-tools-mcp/internal/blend"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/gradient"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "color_blend").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// Sentinel errors that tools/call reports as invalid params rather than as
// tool failures.
var (
	errUnknownTool = errors.New("unknown tool")
	errInvalidArgs = errors.New("invalid arguments")
)

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// An unknown tool or malformed arguments return -32602; errors raised by the
// tool itself return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	out, err := s.executeTool(params.Name, params.Arguments)
	switch {
	case errors.Is(err, errUnknownTool), errors.Is(err, errInvalidArgs):
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	case err != nil:
		return errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return result(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(out),
			},
		},
	})
}

// executeTool looks name up in the registry, checks that args is a JSON
// object carrying every required property, and runs the tool.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	t, ok := s.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(args, &fields); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", errInvalidArgs, name, err)
	}
	for _, key := range t.required() {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w for %s: missing %q", errInvalidArgs, name, key)
		}
	}
	return t.run(s, args)
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared argument helpers ===

// parseColor parses s, or returns def when s is empty.
func parseColor(s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	return color.Parse(s)
}

type stopArg struct {
	Color string  `json:"color"`
	Param float64 `json:"param"`
}

// bandArgs select a color band: explicit stops win over a preset.
type bandArgs struct {
	Preset       string    `json:"preset"`
	Stops        []stopArg `json:"stops"`
	GlowColor    string    `json:"glow_color"`
	MaxLuminance *float64  `json:"max_luminance"`
}

func (a bandArgs) build() (*band.ColorBand, error) {
	if len(a.Stops) > 0 {
		stops := make([]band.ColorStop, len(a.Stops))
		for i, st := range a.Stops {
			c, err := color.Parse(st.Color)
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", i, err)
			}
			stops[i] = band.ColorStop{Color: c, Param: st.Param}
		}
		return band.New(stops...)
	}

	switch a.Preset {
	case "":
		return band.Rainbow(), nil
	case "glow":
		c, err := parseColor(a.GlowColor, color.White)
		if err != nil {
			return nil, fmt.Errorf("glow_color: %w", err)
		}
		maxL := 1.0
		if a.MaxLuminance != nil {
			maxL = *a.MaxLuminance
		}
		return band.Glow(c, maxL), nil
	}
	return band.Preset(a.Preset)
}

// blendArgs select a blend operator and its settings.
type blendArgs struct {
	Operator      string   `json:"operator"`
	SourceOpacity *float64 `json:"source_opacity"`
	TargetOpacity *float64 `json:"target_opacity"`
	SrcChannel    string   `json:"src_channel"`
	DestChannel   string   `json:"dest_channel"`
	SrcSpace      string   `json:"src_space"`
	DestSpace     string   `json:"dest_space"`
	SrcFunc       string   `json:"src_func"`
	DestFunc      string   `json:"dest_func"`
}

// build returns the operator with the requested opacities stored in its
// config, so that image compositing sees them too.
func (a blendArgs) build() (blend.Blender, error) {
	b, err := blend.ByName(a.Operator)
	if err != nil {
		return nil, err
	}

	if ch, ok := b.(blend.Channel); ok {
		if ch, err = a.configureChannel(ch); err != nil {
			return nil, err
		}
		b = ch
	}

	cfg := b.Defaults()
	if a.SourceOpacity != nil {
		cfg.SourceOpacity = *a.SourceOpacity
	}
	if a.TargetOpacity != nil {
		cfg.TargetOpacity = *a.TargetOpacity
	}
	return blend.WithConfig(b, cfg), nil
}

func (a blendArgs) configureChannel(ch blend.Channel) (blend.Channel, error) {
	var err error
	if a.SrcChannel != "" {
		if ch.SrcChannel, err = color.ParseChannel(a.SrcChannel); err != nil {
			return ch, fmt.Errorf("src_channel: %w", err)
		}
	}
	if a.DestChannel != "" {
		if ch.DestChannel, err = color.ParseChannel(a.DestChannel); err != nil {
			return ch, fmt.Errorf("dest_channel: %w", err)
		}
	}
	if ch.SrcSpace, err = color.ParseColorSpace(a.SrcSpace); err != nil {
		return ch, fmt.Errorf("src_space: %w", err)
	}
	if ch.DestSpace, err = color.ParseColorSpace(a.DestSpace); err != nil {
		return ch, fmt.Errorf("dest_space: %w", err)
	}
	if a.SrcFunc != "" {
		if ch.SrcFunc, err = mapping.ByName(a.SrcFunc); err != nil {
			return ch, fmt.Errorf("src_func: %w", err)
		}
	}
	if a.DestFunc != "" {
		if ch.DestFunc, err = mapping.ByName(a.DestFunc); err != nil {
			return ch, fmt.Errorf("dest_func: %w", err)
		}
	}
	return ch, nil
}

type regionArg struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// loadBitmap loads path through the cache and returns an editable copy.
func (s *Server) loadBitmap(path string) (*imaging.Bitmap, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return imaging.FromImage(img), nil
}

// encode returns img as a tool result. A file written to outputPath is
// evicted from the cache so later loads see the new contents.
func (s *Server) encode(img image.Image, outputPath string) (*imaging.ImageResult, error) {
	result, err := imaging.Encode(img, outputPath)
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		s.cache.Evict(outputPath)
	}
	return result, nil
}

// === Image Information Handlers ===

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

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, a.Points)
}

type imageDominantColorsArgs struct {
	Path   string     `json:"path"`
	Count  int        `json:"count"`
	Region *regionArg `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

// === Color Operation Handlers ===

type colorConvertArgs struct {
	Color string `json:"color"`
}

// colorConvertResult extends the standard color description with the
// engine's raw 0-1 components.
type colorConvertResult struct {
	imaging.ColorResult
	RGBFloat [4]float64 `json:"rgb_float"`
	HSVFloat [4]float64 `json:"hsv_float"`
	HSLFloat [4]float64 `json:"hsl_float"`
	HCL      [3]float64 `json:"hcl"`
}

func components(f color.FloatColor) [4]float64 {
	return [4]float64{round6(f.C0), round6(f.C1), round6(f.C2), round6(f.Alpha)}
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	h, chroma, l := c.HCL()
	return &colorConvertResult{
		ColorResult: imaging.Describe(c),
		RGBFloat:    components(c.FloatColor(color.SpaceRGB)),
		HSVFloat:    components(c.FloatColor(color.SpaceHSV)),
		HSLFloat:    components(c.FloatColor(color.SpaceHSL)),
		HCL:         [3]float64{round6(h), round6(chroma), round6(l)},
	}, nil
}

type colorBlendArgs struct {
	blendArgs
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type colorBlendResult struct {
	Operator string              `json:"operator"`
	Result   imaging.ColorResult `json:"result"`
}

func (s *Server) handleColorBlend(args json.RawMessage) (interface{}, error) {
	var a colorBlendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := a.build()
	if err != nil {
		return nil, err
	}

	var ba blend.Args
	if a.Source != "" {
		c, err := color.Parse(a.Source)
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		ba.Color0 = &c
	}
	if a.Destination != "" {
		c, err := color.Parse(a.Destination)
		if err != nil {
			return nil, fmt.Errorf("destination: %w", err)
		}
		ba.Color1 = &c
	}
	return &colorBlendResult{
		Operator: blend.Name(b),
		Result:   imaging.Describe(blend.Apply(b, ba)),
	}, nil
}

type colorToAlphaArgs struct {
	Color     string `json:"color"`
	Reference string `json:"reference"`
}

func (s *Server) handleColorToAlpha(args json.RawMessage) (interface{}, error) {
	var a colorToAlphaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	ref, err := parseColor(a.Reference, color.White)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	f := c.FloatColor(color.SpaceRGB)
	f.ColorToAlpha(ref.FloatColor(color.SpaceRGB))
	return imaging.Describe(color.FromFloatColor(f)), nil
}

// === Color Band Handlers ===

type colorBandSampleArgs struct {
	bandArgs
	Count int `json:"count"`
}

type colorBandSampleResult struct {
	Stops   []string `json:"stops"`
	Samples []string `json:"samples"`
}

func (s *Server) handleColorBandSample(args json.RawMessage) (interface{}, error) {
	var a colorBandSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 10
	}
	b, err := a.build()
	if err != nil {
		return nil, err
	}

	set := color.NewColorSet()
	b.Sample(a.Count, set)

	stops := make([]string, 0, b.NumColorStops())
	for _, st := range b.ColorStops() {
		stops = append(stops, st.String())
	}
	return &colorBandSampleResult{Stops: stops, Samples: set.Hex()}, nil
}

type colorBandRenderArgs struct {
	bandArgs
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleColorBandRender(args json.RawMessage) (interface{}, error) {
	var a colorBandRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 256
	}
	if a.Height == 0 {
		a.Height = 32
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", a.Width, a.Height)
	}
	b, err := a.build()
	if err != nil {
		return nil, err
	}

	set := color.NewColorSet()
	b.Sample(a.Width, set)
	bm := imaging.NewBitmap(a.Width, a.Height)
	for x := 0; x < a.Width; x++ {
		c, _ := set.Color(x)
		bc := c.ByteColor(color.SpaceRGB)
		for y := 0; y < a.Height; y++ {
			bm.SetPixel(x, y, bc)
		}
	}
	return s.encode(bm.Image(), a.OutputPath)
}

type gradientRenderArgs struct {
	bandArgs
	Kind       string `json:"kind"`
	SampleFunc string `json:"sample_func"`
	Samples    int    `json:"samples"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	OutputPath string `json:"output_path"`
}

type gradientRenderResult struct {
	*imaging.ImageResult
	Gradient string `json:"gradient"`
}

func (s *Server) handleGradientRender(args json.RawMessage) (interface{}, error) {
	var a gradientRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 256
	}
	if a.Height == 0 {
		a.Height = 64
	}
	if a.Samples == 0 {
		a.Samples = gradient.DefaultSamples
	}
	b, err := a.build()
	if err != nil {
		return nil, err
	}

	w, h := float64(a.Width), float64(a.Height)
	var g *gradient.Gradient
	switch gradient.Kind(a.Kind) {
	case "", gradient.KindLinear:
		g = gradient.NewLinear(0, 0, w, 0)
	case gradient.KindRadial:
		g = gradient.NewRadial(w/2, h/2, 0, math.Min(w, h)/2)
	case gradient.KindSweep:
		g = gradient.NewSweep(w/2, h/2, 0)
	default:
		return nil, fmt.Errorf("unknown gradient kind %q (valid: linear, radial, sweep)", a.Kind)
	}

	var f mapping.Mapping
	if a.SampleFunc != "" {
		if f, err = mapping.ByName(a.SampleFunc); err != nil {
			return nil, err
		}
	}
	if err := g.SetFromColorBand(b, f, a.Samples); err != nil {
		return nil, err
	}

	img, err := g.Render(a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	result, err := s.encode(img, a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &gradientRenderResult{ImageResult: result, Gradient: g.String()}, nil
}

// === Image Operation Handlers ===

// placementArgs position a source image, or part of it, on a destination.
type placementArgs struct {
	DestPath   string     `json:"dest_path"`
	SourcePath string     `json:"source_path"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Region     *regionArg `json:"region,omitempty"`
	Fit        bool       `json:"fit"`
	OutputPath string     `json:"output_path"`
}

// load returns an editable destination, the source (resized to the
// destination when Fit is set) and the source rectangle to use.
func (a placementArgs) load(s *Server) (dst, src *imaging.Bitmap, srcRect image.Rectangle, err error) {
	if dst, err = s.loadBitmap(a.DestPath); err != nil {
		return nil, nil, srcRect, fmt.Errorf("destination: %w", err)
	}
	srcImg, err := s.cache.Load(a.SourcePath)
	if err != nil {
		return nil, nil, srcRect, fmt.Errorf("source: %w", err)
	}
	if a.Fit {
		srcImg = imaging.Fit(srcImg, dst.Width(), dst.Height())
	}
	if a.Region != nil {
		srcRect = image.Rect(a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2)
	}
	return dst, imaging.FromImage(srcImg), srcRect, nil
}

type imageCompositeArgs struct {
	blendArgs
	placementArgs
}

type imageCompositeResult struct {
	*imaging.ImageResult
	Operator      string `json:"operator"`
	PixelsBlended int    `json:"pixels_blended"`
}

func (s *Server) handleImageComposite(args json.RawMessage) (interface{}, error) {
	var a imageCompositeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := a.build()
	if err != nil {
		return nil, err
	}

	dst, src, srcRect, err := a.load(s)
	if err != nil {
		return nil, err
	}
	n, err := imaging.Composite(dst, src, b, srcRect, image.Pt(a.X, a.Y))
	if err != nil {
		return nil, err
	}

	result, err := s.encode(dst.Image(), a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &imageCompositeResult{ImageResult: result, Operator: blend.Name(b), PixelsBlended: n}, nil
}

// transferArgs select the channels and function of a channel transfer.
// Unset channels default to value.
type transferArgs struct {
	SrcChannel  string `json:"src_channel"`
	DestChannel string `json:"dest_channel"`
	SrcSpace    string `json:"src_space"`
	DestSpace   string `json:"dest_space"`
	Func        string `json:"func"`
}

func (a transferArgs) build(p placementArgs) (imaging.ChannelTransfer, error) {
	t := imaging.ChannelTransfer{
		Source: color.ChannelValue,
		Target: color.ChannelValue,
		Offset: image.Pt(p.X, p.Y),
	}
	var err error
	if a.SrcChannel != "" {
		if t.Source, err = color.ParseChannel(a.SrcChannel); err != nil {
			return t, fmt.Errorf("src_channel: %w", err)
		}
	}
	if a.DestChannel != "" {
		if t.Target, err = color.ParseChannel(a.DestChannel); err != nil {
			return t, fmt.Errorf("dest_channel: %w", err)
		}
	}
	if t.SourceSpace, err = color.ParseColorSpace(a.SrcSpace); err != nil {
		return t, fmt.Errorf("src_space: %w", err)
	}
	if t.TargetSpace, err = color.ParseColorSpace(a.DestSpace); err != nil {
		return t, fmt.Errorf("dest_space: %w", err)
	}
	if a.Func != "" {
		if t.Func, err = mapping.ByName(a.Func); err != nil {
			return t, fmt.Errorf("func: %w", err)
		}
	}
	return t, nil
}

type channelTransferResult struct {
	*imaging.ImageResult
	PixelsWritten int `json:"pixels_written"`
}

type imageSetChannelArgs struct {
	placementArgs
	transferArgs
}

func (s *Server) handleImageSetChannel(args json.RawMessage) (interface{}, error) {
	var a imageSetChannelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	t, err := a.transferArgs.build(a.placementArgs)
	if err != nil {
		return nil, err
	}
	dst, src, srcRect, err := a.load(s)
	if err != nil {
		return nil, err
	}
	t.SourceRect = srcRect

	n, err := imaging.SetChannel(dst, src, t)
	if err != nil {
		return nil, err
	}
	result, err := s.encode(dst.Image(), a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &channelTransferResult{ImageResult: result, PixelsWritten: n}, nil
}

type imageMaskArgs struct {
	placementArgs
	SrcChannel string `json:"src_channel"`
	SrcSpace   string `json:"src_space"`
	Func       string `json:"func"`
}

func (s *Server) handleImageMask(args json.RawMessage) (interface{}, error) {
	var a imageMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ta := transferArgs{SrcChannel: a.SrcChannel, SrcSpace: a.SrcSpace, Func: a.Func}
	t, err := ta.build(a.placementArgs)
	if err != nil {
		return nil, err
	}
	dst, src, srcRect, err := a.load(s)
	if err != nil {
		return nil, err
	}
	t.SourceRect = srcRect
	if dst, err = withAlpha(dst); err != nil {
		return nil, err
	}

	n, err := imaging.Mask(dst, src, t)
	if err != nil {
		return nil, err
	}
	result, err := s.encode(dst.Image(), a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &channelTransferResult{ImageResult: result, PixelsWritten: n}, nil
}

// withAlpha returns bm, or an opaque four-channel copy of it when it has
// no alpha channel.
func withAlpha(bm *imaging.Bitmap) (*imaging.Bitmap, error) {
	if bm.NumChannels() >= 4 {
		return bm, nil
	}
	rgba := imaging.NewBitmap(bm.Width(), bm.Height())
	if _, err := imaging.Composite(rgba, bm, nil, image.Rectangle{}, image.Point{}); err != nil {
		return nil, err
	}
	return rgba, nil
}

type imageColorDifferenceArgs struct {
	Path       string `json:"path"`
	Color      string `json:"color"`
	Func       string `json:"func"`
	OutputPath string `json:"output_path"`
}

type imageColorDifferenceResult struct {
	*imaging.ImageResult
	Mean float64 `json:"mean"`
}

func (s *Server) handleImageColorDifference(args json.RawMessage) (interface{}, error) {
	var a imageColorDifferenceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ref, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	var f mapping.Mapping
	if a.Func != "" {
		if f, err = mapping.ByName(a.Func); err != nil {
			return nil, err
		}
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	diff := imaging.ColorDifference(imaging.FromImage(img), ref, f)
	result, err := s.encode(diff.Image(), a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &imageColorDifferenceResult{ImageResult: result, Mean: round6(grayMean(diff))}, nil
}

// grayMean returns the mean of the red channel of bm in [0,1].
func grayMean(bm *imaging.Bitmap) float64 {
	n := bm.Width() * bm.Height()
	if n == 0 {
		return 0
	}
	sum := 0
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			p, _ := bm.Pixel(x, y)
			sum += int(p.C0)
		}
	}
	return float64(sum) / float64(n) / 255
}

type imageChannelArgs struct {
	Path       string `json:"path"`
	Channel    string `json:"channel"`
	Space      string `json:"space"`
	OutputPath string `json:"output_path"`
}

type imageChannelResult struct {
	*imaging.ImageResult
	Channel string  `json:"channel"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
}

func (s *Server) handleImageChannel(args json.RawMessage) (interface{}, error) {
	var a imageChannelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ch, err := color.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	space, err := color.ParseColorSpace(a.Space)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rows := imaging.ExtractChannel(imaging.FromImage(img), ch, space)
	out := imaging.NewBitmap(img.Bounds().Dx(), img.Bounds().Dy())
	lo, hi, sum, n := math.Inf(1), math.Inf(-1), 0.0, 0
	for y, row := range rows {
		for x, v := range row {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			sum += v
			n++
			g := color.FloatToByte(v)
			out.SetPixel(x, y, color.ByteColor{C0: g, C1: g, C2: g, Alpha: 255, Space: color.SpaceRGB})
		}
	}
	if n == 0 {
		lo, hi = 0, 0
	} else {
		sum /= float64(n)
	}

	result, err := s.encode(out.Image(), a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &imageChannelResult{
		ImageResult: result,
		Channel:     ch.String(),
		Min:         round6(lo),
		Max:         round6(hi),
		Mean:        round6(sum),
	}, nil
}

type imageLuminizeArgs struct {
	DestPath   string   `json:"dest_path"`
	SourcePath string   `json:"source_path"`
	Amount     *float64 `json:"amount"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handleImageLuminize(args json.RawMessage) (interface{}, error) {
	var a imageLuminizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	amount := 1.0
	if a.Amount != nil {
		amount = *a.Amount
	}
	if amount < 0 || amount > 1 {
		return nil, fmt.Errorf("amount %v outside [0,1]", amount)
	}

	dst, err := s.loadBitmap(a.DestPath)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	srcImg, err := s.cache.Load(a.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	src := imaging.FromImage(imaging.Fit(srcImg, dst.Width(), dst.Height()))

	if err := imaging.Luminize(dst, src, amount); err != nil {
		return nil, err
	}
	return s.encode(dst.Image(), a.OutputPath)
}

type imageColorToAlphaArgs struct {
	Path       string `json:"path"`
	Color      string `json:"color"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageColorToAlpha(args json.RawMessage) (interface{}, error) {
	var a imageColorToAlphaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColor(a.Color, color.White)
	if err != nil {
		return nil, err
	}
	bm, err := s.loadBitmap(a.Path)
	if err != nil {
		return nil, err
	}
	// The result needs an alpha channel even if the input had none.
	if bm, err = withAlpha(bm); err != nil {
		return nil, err
	}
	imaging.ColorToAlpha(bm, c)
	return s.encode(bm.Image(), a.OutputPath)
}

type imageColorizeArgs struct {
	bandArgs
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageColorize(args json.RawMessage) (interface{}, error) {
	var a imageColorizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := a.build()
	if err != nil {
		return nil, err
	}
	bm, err := s.loadBitmap(a.Path)
	if err != nil {
		return nil, err
	}
	imaging.Colorize(bm, b)
	return s.encode(bm.Image(), a.OutputPath)
}
