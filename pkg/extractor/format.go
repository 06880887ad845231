package extractor

import (
	"fmt"
	"math"
	"strconv"
)

// DimensionUnit is appended to every dimension token.
const DimensionUnit = "px"

// FormatColor converts a Figma color, whose channels are fractions in [0, 1],
// into its token string.
//
// R, G and B are scaled to [0, 255] and rounded half to even; alpha keeps one
// decimal. With useRGBA the result is "rgba(R, G, B, A)", otherwise it is a
// lowercase "#rrggbb" and the alpha channel is dropped.
func FormatColor(r, g, b, a float64, useRGBA bool) (string, error) {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}} {
		if math.IsNaN(ch.value) || ch.value < 0 || ch.value > 1 {
			return "", fmt.Errorf("%w: channel %s=%v outside [0, 1]", ErrInvalidColorData, ch.name, ch.value)
		}
	}

	red, green, blue := scaleChannel(r), scaleChannel(g), scaleChannel(b)
	if useRGBA {
		alpha := strconv.FormatFloat(a, 'f', 1, 64)
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", red, green, blue, alpha), nil
	}

	return fmt.Sprintf("#%02x%02x%02x", red, green, blue), nil
}

func scaleChannel(v float64) int {
	return int(math.RoundToEven(v * 255))
}

// FormatDimension truncates v toward zero and appends the pixel unit:
// 12.9 becomes "12px".
func FormatDimension(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxInt64 {
		return "", fmt.Errorf("%w: %v", ErrInvalidDimension, v)
	}

	return strconv.FormatInt(int64(v), 10) + DimensionUnit, nil
}
