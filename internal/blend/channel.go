package blend

import (
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// Channel blends a single channel of the source into a single channel of
// the destination:
//
//	dst[DestChannel] = so*SrcFunc(src[SrcChannel]) + to*DestFunc(dst[DestChannel])
//
// Every other channel of the destination passes through. SrcSpace and
// DestSpace pick between HSV and HSL for the hue and saturation channels;
// see color.SpaceForChannel. A nil SrcFunc or DestFunc leaves the value
// as is.
//
// Unlike the other operators, the opacities weight the channel values
// directly and alpha is not premultiplied.
type Channel struct {
	Config
	SrcChannel  color.ChannelID
	DestChannel color.ChannelID
	SrcSpace    color.ColorSpace
	DestSpace   color.ColorSpace
	SrcFunc     mapping.Mapping
	DestFunc    mapping.Mapping
}

// NewChannel returns a Channel that replaces the destination's HSV value
// with the source's.
func NewChannel() Channel {
	cfg := DefaultConfig()
	cfg.TargetOpacity = 0
	return Channel{
		Config:      cfg,
		SrcChannel:  color.ChannelValue,
		DestChannel: color.ChannelValue,
	}
}

// BlendFloat returns dst with the blended channel, clamped to [0,1] and in
// dst's original color space.
func (b Channel) BlendFloat(src, dst color.FloatColor, so, to float64) color.FloatColor {
	space := dst.Space
	sc := src.In(color.SpaceForChannel(b.SrcChannel, b.SrcSpace))
	dc := dst.In(color.SpaceForChannel(b.DestChannel, b.DestSpace))

	sv := sc.Component(b.SrcChannel)
	dv := dc.Component(b.DestChannel)
	if b.SrcFunc != nil {
		sv = b.SrcFunc.Call(sv)
	}
	if b.DestFunc != nil {
		dv = b.DestFunc.Call(dv)
	}

	dc.SetComponent(b.DestChannel, so*sv+to*dv)
	dc.Clamp(mapping.DefaultRange)
	dc.ToColorSpace(space)
	return dc
}
