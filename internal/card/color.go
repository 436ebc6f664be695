package card

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHex decodes a #RRGGBB (or #RGB) color string.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// MixWithWhite blends c toward white: mixed = base + (255-base)*weight per
// channel, rounded and clamped. weight 0 reproduces the base, weight 1
// reproduces white.
func MixWithWhite(c color.NRGBA, weight float64) color.NRGBA {
	return color.NRGBA{
		R: mixChannel(c.R, weight),
		G: mixChannel(c.G, weight),
		B: mixChannel(c.B, weight),
		A: 0xff,
	}
}

func mixChannel(base uint8, weight float64) uint8 {
	v := math.Round(float64(base) + (255-float64(base))*weight)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// accentGradientWeights are the three white-blend stops used for the card
// backdrop gradient, top to bottom.
var accentGradientWeights = [3]float64{0.72, 0.56, 0.34}

// AccentStops derives the three-stop backdrop gradient for an accent color.
func AccentStops(accent color.NRGBA) [3]color.NRGBA {
	var stops [3]color.NRGBA
	for i, w := range accentGradientWeights {
		stops[i] = MixWithWhite(accent, w)
	}
	return stops
}
