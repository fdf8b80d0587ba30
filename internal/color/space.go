package color

import (
	"fmt"
	"strings"
)

// ColorSpace tells how the three component slots of a color are interpreted.
type ColorSpace int

const (
	// SpaceUndefined means no particular interpretation. Converting to it is
	// a no-op.
	SpaceUndefined ColorSpace = iota
	// SpaceRGB stores red, green, blue.
	SpaceRGB
	// SpaceHSV stores hue, saturation, value.
	SpaceHSV
	// SpaceHSL stores hue, saturation, luminance.
	SpaceHSL
)

func (s ColorSpace) String() string {
	switch s {
	case SpaceUndefined:
		return "undefined"
	case SpaceRGB:
		return "RGB"
	case SpaceHSV:
		return "HSV"
	case SpaceHSL:
		return "HSL"
	}
	return "<unknown>"
}

// ParseColorSpace accepts "rgb", "hsv", "hsl" and "" (undefined), in any case.
func ParseColorSpace(name string) (ColorSpace, error) {
	switch strings.ToLower(name) {
	case "", "undefined":
		return SpaceUndefined, nil
	case "rgb":
		return SpaceRGB, nil
	case "hsv":
		return SpaceHSV, nil
	case "hsl":
		return SpaceHSL, nil
	}
	return SpaceUndefined, fmt.Errorf("unknown color space: %s", name)
}

// ChannelID addresses one slot of a color symbolically.
//
// The slot a channel maps to does not depend on the color's current space:
// Red and Hue are both slot 0, Green and Saturation slot 1, Blue, Value and
// Luminance slot 2. Convert the color first if the slot should carry a
// particular meaning.
type ChannelID int

const (
	ChannelRed ChannelID = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
	ChannelHue
	ChannelSaturation
	ChannelValue
	ChannelLuminance
)

var channelNames = map[ChannelID]string{
	ChannelRed:        "red",
	ChannelGreen:      "green",
	ChannelBlue:       "blue",
	ChannelAlpha:      "alpha",
	ChannelHue:        "hue",
	ChannelSaturation: "saturation",
	ChannelValue:      "value",
	ChannelLuminance:  "luminance",
}

func (ch ChannelID) String() string {
	if n, ok := channelNames[ch]; ok {
		return n
	}
	return fmt.Sprintf("channel(%d)", int(ch))
}

// ParseChannel converts a channel name such as "luminance" to its ID.
func ParseChannel(name string) (ChannelID, error) {
	name = strings.ToLower(name)
	for id, n := range channelNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown channel: %s", name)
}

// SpaceForChannel resolves the color space a channel belongs to.
//
// Red, green and blue belong to RGB, value to HSV and luminance to HSL. Hue
// and saturation exist in both HSV and HSL; they resolve to HSL when hint is
// HSL and to HSV otherwise. Alpha and unknown channels take the hint, or RGB
// when the hint is undefined.
func SpaceForChannel(ch ChannelID, hint ColorSpace) ColorSpace {
	switch ch {
	case ChannelRed, ChannelGreen, ChannelBlue:
		return SpaceRGB
	case ChannelValue:
		return SpaceHSV
	case ChannelLuminance:
		return SpaceHSL
	case ChannelHue, ChannelSaturation:
		if hint == SpaceHSL {
			return SpaceHSL
		}
		return SpaceHSV
	}
	if hint == SpaceUndefined {
		return SpaceRGB
	}
	return hint
}
