package tooltip

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Shade lightens (positive percent) or darkens (negative percent) a 3
// or 6 digit hex color. Each 8-bit channel is shifted by
// round(2.55 * percent) and clamped independently to [0,255]. The
// result is always a 6-digit lowercase hex string.
func Shade(hexColor string, percent int) (string, error) {
	r, g, b, err := parseHexChannels(hexColor)
	if err != nil {
		return "", err
	}
	amt := int(math.Round(2.55 * float64(percent)))
	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(r+amt), clampChannel(g+amt), clampChannel(b+amt)), nil
}

// ParseHex converts a 3 or 6 digit hex color to an opaque RGBA.
func ParseHex(hexColor string) (color.RGBA, error) {
	r, g, b, err := parseHexChannels(hexColor)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

func parseHexChannels(s string) (r, g, b int, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		// shorthand expands by digit doubling, abc -> aabbcc
		s = strings.Repeat(string(s[0]), 2) +
			strings.Repeat(string(s[1]), 2) +
			strings.Repeat(string(s[2]), 2)
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("tooltip: %q is not a 3 or 6 digit hex color", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("tooltip: %q is not a hex color: %w", s, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
