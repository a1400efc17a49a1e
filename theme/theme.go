// Package theme provides the color math and the fixed choice sets the
// editor offers for accent colors and SEO categories.
package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for anything that is not a 6-digit hex color.
var ErrInvalidColor = errors.New("invalid hex color")

// DefaultColor is the accent of a fresh page and the fallback for colors
// that cannot be rendered.
const DefaultColor = "#4F46E5"

// BackgroundTint is how far the page background is blended toward white.
const BackgroundTint = 0.9

// Palette lists the swatches offered by the editor.
var Palette = []string{"#4F46E5", "#2563EB", "#059669", "#D97706", "#DC2626", "#7C3AED"}

// SeoTopics lists the SEO categories offered by the editor.
var SeoTopics = []string{"Portfolio", "Product", "Blog", "Service", "Event", "Personal"}

// Lighten adds round(255*fraction) to every channel of hex, clamping at
// 0 and 255. The leading '#' is optional on input and always present on
// output; the result is lowercase.
func Lighten(hex string, fraction float64) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	// Same operation order as the browser builder, so results match it
	// bit for bit at the .5 boundaries.
	amt := int(math.Round(2.55 * fraction * 100))
	return fmt.Sprintf("#%02x%02x%02x", clamp(r+amt), clamp(g+amt), clamp(b+amt)), nil
}

// IsHex reports whether s is a well-formed #RRGGBB color.
func IsHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	_, _, _, err := parseHex(s)
	return err == nil
}

// InPalette reports whether color is one of the offered swatches, ignoring
// case.
func InPalette(color string) bool {
	for _, p := range Palette {
		if strings.EqualFold(p, color) {
			return true
		}
	}
	return false
}

// IsSeoTopic reports whether topic is one of the offered SEO categories.
func IsSeoTopic(topic string) bool {
	for _, t := range SeoTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// Accent returns color when it is a well-formed hex color and DefaultColor
// otherwise.
func Accent(color string) string {
	if IsHex(color) {
		return color
	}
	return DefaultColor
}

func parseHex(s string) (r, g, b int, err error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	n, perr := strconv.ParseUint(s, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return int(n >> 16), int(n >> 8 & 0xff), int(n & 0xff), nil
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}
